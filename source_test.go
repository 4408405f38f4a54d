package alpplot

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go-hep.org/x/hep/lhef"
)

func TestOpenUnknownFormat(t *testing.T) {
	_, err := Open("ALP_M1.csv")

	assert.True(t, errors.Is(err, ErrUnknownFormat))
	var srcErr *SourceError
	require.True(t, errors.As(err, &srcErr))
	assert.Equal(t, "ALP_M1.csv", srcErr.Path)
}

func TestOpenMissingFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"ALP_M1.root", "ALP_M1.lhe", "ALP_M1.lhe.gz"} {
		_, err := Open(filepath.Join(dir, name))
		var srcErr *SourceError
		assert.True(t, errors.As(err, &srcErr), name)
	}
}

func TestOpenRejectsNonROOTContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ALP_M1.root")
	require.NoError(t, os.WriteFile(path, []byte("not a root file"), 0o644))

	_, err := Open(path)
	var srcErr *SourceError
	assert.True(t, errors.As(err, &srcErr))
}

func TestSliceSource(t *testing.T) {
	stop := errors.New("stop")
	src := &SliceSource{Events: []Event{testEvent(1), testEvent(2), testEvent(3)}}

	var seen []int
	err := src.ScanEvents(func(i int, ev Event) error {
		seen = append(seen, i)
		if i == 1 {
			return stop
		}
		return nil
	})
	assert.Equal(t, stop, err)
	assert.Equal(t, []int{0, 1}, seen)
	assert.NoError(t, src.Close())
}

func TestMapOpener(t *testing.T) {
	opener := MapOpener{"a.root": &SliceSource{}}
	_, err := opener.Open("a.root")
	assert.NoError(t, err)
	_, err = opener.Open("b.root")
	assert.Error(t, err)
}

func TestToFloat64s(t *testing.T) {
	f64 := []float64{1, 2}
	out, err := toFloat64s(&f64)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, out)
	f64[0] = 7
	assert.Equal(t, 1.0, out[0], "values are copied")

	f32 := []float32{0.5, 1.5}
	out, err = toFloat64s(&f32)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 1.5}, out)

	scalar := float32(3)
	out, err = toFloat64s(&scalar)
	require.NoError(t, err)
	assert.Equal(t, []float64{3}, out)

	var empty []float64
	out, err = toFloat64s(&empty)
	require.NoError(t, err)
	assert.NotNil(t, out, "an empty branch is still present")

	ints := []int32{1}
	_, err = toFloat64s(&ints)
	assert.Error(t, err)
}

func TestEventFromHEPEUP(t *testing.T) {
	evt := &lhef.HEPEUP{
		NUP: 2,
		PUP: [][5]float64{
			{1, 2, 3, 130, 125},
			{0.5, -0.5, 10, 10.1, 0.10566},
		},
	}

	ev := eventFromHEPEUP(evt)
	assert.Equal(t, []float64{125, 0.10566}, ev.Mass)
	assert.Equal(t, []float64{1, 0.5}, ev.Px)
	assert.Equal(t, []float64{2, -0.5}, ev.Py)
	assert.Equal(t, []float64{3, 10}, ev.Pz)
	assert.Equal(t, []float64{130, 10.1}, ev.Energy)
}

func TestEnergyFromMass(t *testing.T) {
	assert.InDelta(t, 5.0, energyFromMass(0, 3, 0, 4), 1e-12)
}
