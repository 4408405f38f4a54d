package alpplot

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyEventFullLayout(t *testing.T) {
	ev := testEvent(0, 0, 125.0, 2.0, 91.0, 0.0105, muMass, 0.001, 0.002)

	c, err := ClassifyEvent(ev)
	require.NoError(t, err)

	assert.False(t, c.Degraded)
	assert.Equal(t, 125.0, c.Higgs.Mass)
	assert.Equal(t, 2.0, c.ALP.Mass)
	assert.Equal(t, 91.0, c.Z.Mass)
	assert.InDelta(t, math.Sqrt(3*3+6*6), c.Higgs.PT, 1e-12)

	assert.Equal(t, Unknown, c.Leptons[0].Species)
	assert.Equal(t, 0.0105, c.Leptons[0].GeV)
	assert.Equal(t, Muon, c.Leptons[1].Species)
	assert.InDelta(t, 105.66, c.Leptons[1].Mass, 1e-9)
	assert.InDelta(t, math.Sqrt(7*7+14*14), c.Leptons[1].PT, 1e-12)

	assert.Equal(t, 0.001, c.Photons[0].Mass)
	assert.Equal(t, 0.002, c.Photons[1].Mass)
	assert.True(t, c.PhotonDR.Defined)
	assert.InDelta(t, slotDeltaR(ev, 7, 8), c.PhotonDR.Value, 1e-12)

	assert.False(t, c.LeptonDR.Defined, "mixed pair has no lepton separation")
	assert.Equal(t, Unknown, c.LeptonPair)
}

func TestClassifyEventDegradedLayout(t *testing.T) {
	c, err := ClassifyEvent(degradedEvent(eMass, eMass))
	require.NoError(t, err)

	assert.True(t, c.Degraded)
	assert.Equal(t, Particle{}, c.Photons[1])
	assert.Equal(t, 0.0, c.Photons[1].Mass)
	assert.Equal(t, 0.0, c.Photons[1].PT)
	assert.Equal(t, Undefined, c.PhotonDR)

	// the lepton pair does not depend on the photons
	assert.Equal(t, Electron, c.LeptonPair)
	assert.True(t, c.LeptonDR.Defined)
}

func TestClassifyEventLeptonPairs(t *testing.T) {
	tests := []struct {
		name    string
		l5, l6  float64
		pair    Species
		defined bool
	}{
		{"electrons", eMass, eMass, Electron, true},
		{"muons", muMass, muMass, Muon, true},
		{"taus", tauMass, tauMass, Unknown, false},
		{"electron muon", eMass, muMass, Unknown, false},
		{"unknowns", 0.0105, 0.0105, Unknown, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, err := ClassifyEvent(fullEvent(tc.l5, tc.l6))
			require.NoError(t, err)
			assert.Equal(t, tc.pair, c.LeptonPair)
			assert.Equal(t, tc.defined, c.LeptonDR.Defined)
		})
	}
}

func TestClassifyEventRejectsOtherCounts(t *testing.T) {
	for _, n := range []int{0, 3, 7, 10} {
		masses := make([]float64, n)
		_, err := ClassifyEvent(testEvent(masses...))

		var malformed *MalformedEventError
		require.True(t, errors.As(err, &malformed), "n=%d", n)
		assert.False(t, malformed.Mismatched)
		assert.Equal(t, n, malformed.Lengths[0])
	}
}

func TestClassifyEventRejectsMismatchedLengths(t *testing.T) {
	ev := fullEvent(eMass, eMass)
	ev.Py = ev.Py[:8]

	_, err := ClassifyEvent(ev)

	var malformed *MalformedEventError
	require.True(t, errors.As(err, &malformed))
	assert.True(t, malformed.Mismatched)
	assert.Equal(t, []int{9, 9, 8, 9, 9}, malformed.Lengths)
	assert.Contains(t, err.Error(), "py=8")
}

func transverseOnly(ev Event) Event {
	ev.Pz, ev.Energy = nil, nil
	return ev
}

func TestClassifyEventWithoutLongitudinalMomentum(t *testing.T) {
	c, err := ClassifyEvent(transverseOnly(fullEvent(eMass, eMass)))
	require.NoError(t, err)

	assert.Equal(t, 125.0, c.Higgs.Mass)
	assert.InDelta(t, math.Sqrt(9+36), c.Higgs.PT, 1e-12)
	assert.Equal(t, Electron, c.LeptonPair)
	assert.False(t, c.LeptonDR.Defined)
	assert.False(t, c.PhotonDR.Defined)
}

func TestValidateChecksPzAndEnergyOnlyWhenPresent(t *testing.T) {
	ev := transverseOnly(fullEvent(eMass, eMass))
	ev.Mass = ev.Mass[:8]

	var malformed *MalformedEventError
	require.True(t, errors.As(ev.Validate(), &malformed))
	assert.Equal(t, []int{8, 9, 9}, malformed.Lengths)
	assert.Equal(t, "mismatched lengths: masses=8, px=9, py=9", malformed.Error())

	ev = fullEvent(eMass, eMass)
	ev.Energy = nil
	require.True(t, errors.As(ev.Validate(), &malformed))
	assert.Equal(t, []int{9, 9, 9, 9, 0}, malformed.Lengths)
}

func TestSlotTable(t *testing.T) {
	assert.Equal(t, []int{2}, SlotsOf(RoleHiggs))
	assert.Equal(t, []int{3}, SlotsOf(RoleALP))
	assert.Equal(t, []int{4}, SlotsOf(RoleZ))
	assert.Equal(t, []int{5, 6}, SlotsOf(RoleLepton))
	assert.Equal(t, []int{7, 8}, SlotsOf(RolePhoton))
	assert.Equal(t, []int{0, 1}, SlotsOf(RoleIgnored))
	assert.Equal(t, "photon", RolePhoton.String())
}
