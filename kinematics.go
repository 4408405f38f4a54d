package alpplot

import (
	"math"

	"go-hep.org/x/hep/fmom"
)

// PT is the transverse momentum of (px, py).
func PT(px, py float64) float64 {
	return math.Sqrt(math.Pow(px, 2) + math.Pow(py, 2))
}

// DeltaR is an angular separation that may be absent, for instance when an
// event lacks its second photon. The zero value is Undefined.
type DeltaR struct {
	Value   float64
	Defined bool
}

var Undefined DeltaR

func Defined(v float64) DeltaR {
	return DeltaR{Value: v, Defined: true}
}

// Get returns the value and whether it is defined.
func (d DeltaR) Get() (float64, bool) {
	return d.Value, d.Defined
}

// AngularSeparation is sqrt(dEta^2 + dPhi^2) between two four-momenta, with
// dPhi folded into [-pi, pi].
func AngularSeparation(p1, p2 fmom.PxPyPzE) float64 {
	return fmom.DeltaR(&p1, &p2)
}

func slotDeltaR(ev Event, i, j int) float64 {
	return AngularSeparation(ev.p4(i), ev.p4(j))
}

// DefinedValues drops the undefined entries, keeping order.
func DefinedValues(drs []DeltaR) []float64 {
	vs := make([]float64, 0, len(drs))
	for _, dr := range drs {
		if v, ok := dr.Get(); ok {
			vs = append(vs, v)
		}
	}
	return vs
}
