package alpplot

import (
	"math"

	"go-hep.org/x/hep/fmom"
)

// Event holds one generated collision as parallel per-particle slices.
// Slice i of every field describes the same particle instance. Pz and Energy
// are nil when the source only carries mass and transverse momentum.
type Event struct {
	Mass   []float64
	Px     []float64
	Py     []float64
	Pz     []float64
	Energy []float64
}

// Len is the particle count taken from the mass slice.
func (ev Event) Len() int {
	return len(ev.Mass)
}

// HasLongitudinal reports whether the event carries pz and energy, which
// angular separations need.
func (ev Event) HasLongitudinal() bool {
	return ev.Pz != nil || ev.Energy != nil
}

func (ev Event) lengths() []int {
	lens := []int{len(ev.Mass), len(ev.Px), len(ev.Py)}
	if ev.HasLongitudinal() {
		lens = append(lens, len(ev.Pz), len(ev.Energy))
	}
	return lens
}

// Validate reports a *MalformedEventError when the slices differ in length
// or the particle count is not one of the known layouts. Pz and Energy are
// only checked when present.
func (ev Event) Validate() error {
	lens := ev.lengths()
	for _, n := range lens[1:] {
		if n != lens[0] {
			return &MalformedEventError{Lengths: lens, Mismatched: true}
		}
	}

	switch lens[0] {
	case fullLayout, degradedLayout:
		return nil
	}
	return &MalformedEventError{Lengths: lens}
}

func (ev Event) pT(slot int) float64 {
	return PT(ev.Px[slot], ev.Py[slot])
}

func (ev Event) p4(slot int) fmom.PxPyPzE {
	return fmom.NewPxPyPzE(ev.Px[slot], ev.Py[slot], ev.Pz[slot], ev.Energy[slot])
}

// energyFromMass is used by readers whose format stores the mass instead of
// the energy.
func energyFromMass(px, py, pz, m float64) float64 {
	return math.Sqrt(px*px + py*py + pz*pz + m*m)
}

// onShellEnergies fills in the energies of an event read without them. A
// length mismatch gives an empty slice, left for Validate to report.
func onShellEnergies(ev Event) []float64 {
	n := len(ev.Mass)
	if len(ev.Px) != n || len(ev.Py) != n || len(ev.Pz) != n {
		return []float64{}
	}
	es := make([]float64, n)
	for i := range es {
		es[i] = energyFromMass(ev.Px[i], ev.Py[i], ev.Pz[i], ev.Mass[i])
	}
	return es
}
