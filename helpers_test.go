package alpplot

import "math"

// testEvent builds an event with the given masses (GeV). Particle i gets
// momentum (i+1, 2(i+1), i-3) and an on-shell energy.
func testEvent(masses ...float64) Event {
	var ev Event
	for i, m := range masses {
		px, py, pz := float64(i+1), float64(2*(i+1)), float64(i-3)
		ev.Mass = append(ev.Mass, m)
		ev.Px = append(ev.Px, px)
		ev.Py = append(ev.Py, py)
		ev.Pz = append(ev.Pz, pz)
		ev.Energy = append(ev.Energy, math.Sqrt(px*px+py*py+pz*pz+m*m))
	}
	return ev
}

const (
	eMass   = 0.000511
	muMass  = 0.10566
	tauMass = 1.77686
)

// fullEvent is a nine particle event with the given lepton masses.
func fullEvent(l5, l6 float64) Event {
	return testEvent(0, 0, 125.0, 2.0, 91.0, l5, l6, 0, 0)
}

func degradedEvent(l5, l6 float64) Event {
	return testEvent(0, 0, 125.0, 2.0, 91.0, l5, l6, 0)
}
