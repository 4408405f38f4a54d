package alpplot

// Particle is the mass and transverse momentum of one slot.
type Particle struct {
	Mass float64
	PT   float64
}

// Lepton is a classified lepton slot. Mass is in GeV for taus and in MeV for
// electrons and muons; GeV always holds the stored value.
type Lepton struct {
	Species Species
	Mass    float64
	GeV     float64
	PT      float64
}

// Classification is the outcome of classifying one valid event.
type Classification struct {
	Degraded bool

	Higgs   Particle
	ALP     Particle
	Z       Particle
	Leptons [2]Lepton

	// Photons[1] is a zero-valued placeholder for degraded events.
	Photons [2]Particle

	PhotonDR DeltaR
	// LeptonDR is defined only when both leptons are electrons or both
	// are muons; LeptonPair tells which. Both separations stay undefined
	// for events without pz and energy.
	LeptonDR   DeltaR
	LeptonPair Species
}

// ClassifyEvent maps the slots of ev to their physics roles. It returns a
// *MalformedEventError for events that fail Validate.
func ClassifyEvent(ev Event) (Classification, error) {
	var c Classification
	if err := ev.Validate(); err != nil {
		return c, err
	}
	c.Degraded = ev.Len() == degradedLayout

	c.Higgs = slotParticle(ev, higgsSlot)
	c.ALP = slotParticle(ev, alpSlot)
	c.Z = slotParticle(ev, zSlot)

	for i, slot := range leptonSlot {
		species, m := ClassifyLepton(ev.Mass[slot])
		c.Leptons[i] = Lepton{
			Species: species,
			Mass:    m,
			GeV:     ev.Mass[slot],
			PT:      ev.pT(slot),
		}
	}

	c.Photons[0] = slotParticle(ev, photonSlot[0])
	if !c.Degraded {
		c.Photons[1] = slotParticle(ev, photonSlot[1])
		if ev.HasLongitudinal() {
			c.PhotonDR = Defined(slotDeltaR(ev, photonSlot[0], photonSlot[1]))
		}
	}

	s0, s1 := c.Leptons[0].Species, c.Leptons[1].Species
	if s0 == s1 && (s0 == Electron || s0 == Muon) {
		c.LeptonPair = s0
		if ev.HasLongitudinal() {
			c.LeptonDR = Defined(slotDeltaR(ev, leptonSlot[0], leptonSlot[1]))
		}
	}
	return c, nil
}

func slotParticle(ev Event, slot int) Particle {
	return Particle{Mass: ev.Mass[slot], PT: ev.pT(slot)}
}
