package alpplot

// Species of a lepton slot, decided from its mass alone.
type Species int

const (
	Unknown Species = iota
	Electron
	Muon
	Tau
)

func (s Species) String() string {
	switch s {
	case Electron:
		return "electron"
	case Muon:
		return "muon"
	case Tau:
		return "tau"
	}
	return "unknown"
}

// MassWindow is a closed interval [Low, High].
type MassWindow struct {
	Low, High float64
}

func (w MassWindow) Contains(m float64) bool {
	return w.Low <= m && m <= w.High
}

// Tau is matched in GeV, electrons and muons in MeV.
var (
	TauWindow      = MassWindow{1.7, 1.9}
	ElectronWindow = MassWindow{0.4, 0.6}
	MuonWindow     = MassWindow{90, 120}
)

const mevPerGeV = 1000

// ClassifyLepton returns the species of a lepton with mass m (GeV) and the
// mass in the unit its window is expressed in: GeV for taus, MeV otherwise.
// Unknown leptons return the MeV value for diagnostics only.
func ClassifyLepton(m float64) (Species, float64) {
	if TauWindow.Contains(m) {
		return Tau, m
	}

	mev := m * mevPerGeV
	switch {
	case ElectronWindow.Contains(mev):
		return Electron, mev
	case MuonWindow.Contains(mev):
		return Muon, mev
	}
	return Unknown, mev
}
