package alpplot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAggregates() []FileAggregate {
	withPhotons := accumulate(
		fullEvent(eMass, eMass), fullEvent(muMass, muMass), degradedEvent(tauMass, eMass), fullEvent(eMass, eMass),
	)
	withPhotons.Label = "M1"

	onlyDegraded := accumulate(degradedEvent(eMass, muMass))
	onlyDegraded.Label = "M2"

	failed := FileAggregate{Path: "ALP_M3.root", Label: "M3"}
	return []FileAggregate{withPhotons, onlyDegraded, failed}
}

func requireFile(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	require.NoError(t, err, path)
	assert.NotZero(t, info.Size(), path)
}

func TestPanelValues(t *testing.T) {
	aggs := testAggregates()
	agg := &aggs[0]

	assert.Equal(t, agg.Mass[CategoryHiggs], MassPanels([2]float64{0, 1})[0].Values(agg))
	assert.Equal(t, agg.PT[CategoryPhoton], PTPanels()[6].Values(agg))
	assert.Len(t, DeltaRPanels()[0].Values(agg), 3)
	assert.Len(t, DeltaRPanels()[1].Values(agg), 2)
	assert.Len(t, DeltaRPanels()[2].Values(agg), 1)
	assert.Equal(t, "gamma_dr", PhotonDeltaRZoom.Name())
}

func TestDrawPanelSkipsEmptySequences(t *testing.T) {
	store := NewHistStore()
	r := &Renderer{Group: Group{Name: "g"}, Aggs: testAggregates(), Store: store}

	r.DrawPanel(newPlot(), DeltaRPanels()[0])
	r.DrawPanel(newPlot(), MassPanels([2]float64{0, 35})[4])

	assert.Equal(t, []string{"g_M1_gamma_dr", "g_M1_muon_mass", "g_M2_muon_mass"}, store.Names())

	h, ok := store.Get("g_M1_gamma_dr")
	require.True(t, ok)
	assert.Equal(t, int64(3), h.Entries())
}

func TestRendererSavesPlots(t *testing.T) {
	dir := t.TempDir()
	r := &Renderer{Group: Group{Name: "g", ALPMassRange: [2]float64{0, 35}}, Aggs: testAggregates()}

	mass := filepath.Join(dir, "mass.png")
	require.NoError(t, r.SaveGrid(MassPanels(r.Group.ALPMassRange), 3, 3, mass))
	requireFile(t, mass)

	dr := filepath.Join(dir, "dr.png")
	require.NoError(t, r.SaveGrid(DeltaRPanels(), 1, 3, dr))
	requireFile(t, dr)

	zoom := filepath.Join(dir, "zoom.png")
	require.NoError(t, r.SavePanel(PhotonDeltaRZoom, zoom))
	requireFile(t, zoom)

	effi := filepath.Join(dir, "effi.png")
	require.NoError(t, r.SaveEfficiency(1, effi))
	requireFile(t, effi)

	bins := filepath.Join(dir, "bins.png")
	require.NoError(t, r.SaveProportions(DefaultProportionCuts, bins))
	requireFile(t, bins)
}

func TestSaveGridRejectsTooManyPanels(t *testing.T) {
	r := &Renderer{Aggs: testAggregates()}
	err := r.SaveGrid(MassPanels([2]float64{0, 1}), 2, 3, filepath.Join(t.TempDir(), "x.png"))
	assert.Error(t, err)
}

func TestFileColorWraps(t *testing.T) {
	assert.Equal(t, FileColor(0), FileColor(len(Palette)))
	assert.Len(t, Palette, 14)
}
