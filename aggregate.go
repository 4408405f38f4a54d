package alpplot

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Category is a physics category a per-file sequence is kept for.
type Category int

const (
	CategoryHiggs Category = iota
	CategoryALP
	CategoryZ
	CategoryElectron
	CategoryMuon
	CategoryTau
	CategoryPhoton
	NumCategories
)

var categoryNames = [NumCategories]string{"higgs", "alp", "z", "electron", "muon", "tau", "gamma"}

func (c Category) String() string {
	if c < 0 || c >= NumCategories {
		return "invalid"
	}
	return categoryNames[c]
}

func speciesCategory(s Species) (Category, bool) {
	switch s {
	case Electron:
		return CategoryElectron, true
	case Muon:
		return CategoryMuon, true
	case Tau:
		return CategoryTau, true
	}
	return 0, false
}

// Counts are the anomaly counters of a file or a run.
type Counts struct {
	Events         int
	Skipped        int
	UnknownLeptons int
	Degraded       int
}

func (c *Counts) add(o Counts) {
	c.Events += o.Events
	c.Skipped += o.Skipped
	c.UnknownLeptons += o.UnknownLeptons
	c.Degraded += o.Degraded
}

// FileAggregate holds every sequence extracted from one event file.
// Sequences are in event order and read-only once the file is done.
type FileAggregate struct {
	Path  string
	Label string

	Mass [NumCategories][]float64
	PT   [NumCategories][]float64

	// One entry per valid event.
	PhotonDR   []DeltaR
	ElectronDR []float64
	MuonDR     []float64

	Counts Counts
}

// DeltaRValues returns the defined angular separations kept for category c.
// Only photons, electrons and muons have one.
func (a *FileAggregate) DeltaRValues(c Category) []float64 {
	switch c {
	case CategoryPhoton:
		return DefinedValues(a.PhotonDR)
	case CategoryElectron:
		return a.ElectronDR
	case CategoryMuon:
		return a.MuonDR
	}
	return nil
}

// LabelFor turns "dir/ALP_M0p1.root" into "M0p1".
func LabelFor(path string) string {
	name := filepath.Base(path)
	for _, ext := range []string{".lhe.gz", ".root", ".lhe", ".proio", ".slcio"} {
		if strings.HasSuffix(name, ext) {
			name = strings.TrimSuffix(name, ext)
			break
		}
	}
	return strings.TrimPrefix(name, "ALP_")
}

// Accumulator builds the FileAggregate of one file. It is owned by a single
// ProcessFile call.
type Accumulator struct {
	agg    FileAggregate
	logger Logger
}

func NewAccumulator(path string, logger Logger) *Accumulator {
	return &Accumulator{
		agg:    FileAggregate{Path: path, Label: LabelFor(path)},
		logger: logger,
	}
}

func (a *Accumulator) appendParticle(c Category, p Particle) {
	a.agg.Mass[c] = append(a.agg.Mass[c], p.Mass)
	a.agg.PT[c] = append(a.agg.PT[c], p.PT)
}

// Add classifies event number index and appends its values.
func (a *Accumulator) Add(index int, ev Event) {
	name := filepath.Base(a.agg.Path)
	a.agg.Counts.Events++

	c, err := ClassifyEvent(ev)
	if err != nil {
		a.agg.Counts.Skipped++
		a.logger.Warn(fmt.Sprintf("Event %d in %s skipped: %v", index, name, err), "aggregate")
		return
	}
	if c.Degraded {
		a.agg.Counts.Degraded++
		a.logger.Debug(fmt.Sprintf("Event %d in %s has %d masses: %v", index, name, ev.Len(), ev.Mass), "aggregate")
	}

	a.appendParticle(CategoryHiggs, c.Higgs)
	a.appendParticle(CategoryALP, c.ALP)
	a.appendParticle(CategoryZ, c.Z)

	for _, l := range c.Leptons {
		cat, ok := speciesCategory(l.Species)
		if !ok {
			a.agg.Counts.UnknownLeptons++
			a.logger.Warn(fmt.Sprintf("Event %d in %s has unknown lepton mass %g GeV/c² (%g MeV/c²)", index, name, l.GeV, l.Mass), "aggregate")
			continue
		}
		a.appendParticle(cat, Particle{Mass: l.Mass, PT: l.PT})
	}

	a.appendParticle(CategoryPhoton, c.Photons[0])
	a.appendParticle(CategoryPhoton, c.Photons[1])
	a.agg.PhotonDR = append(a.agg.PhotonDR, c.PhotonDR)

	if dr, ok := c.LeptonDR.Get(); ok {
		switch c.LeptonPair {
		case Electron:
			a.agg.ElectronDR = append(a.agg.ElectronDR, dr)
		case Muon:
			a.agg.MuonDR = append(a.agg.MuonDR, dr)
		}
	}
}

// Finish hands the aggregate over. The accumulator must not be used after.
func (a *Accumulator) Finish() FileAggregate {
	agg := a.agg
	a.agg = FileAggregate{}
	return agg
}

// Opener opens an event file. Open is the default.
type Opener func(path string) (EventSource, error)

// ProcessFile reads every event of path. On a read failure the returned
// aggregate is empty apart from its path and label.
func ProcessFile(path string, open Opener, logger Logger) (FileAggregate, error) {
	empty := FileAggregate{Path: path, Label: LabelFor(path)}

	src, err := open(path)
	if err != nil {
		return empty, err
	}
	defer src.Close()

	acc := NewAccumulator(path, logger)
	if err := src.ScanEvents(func(i int, ev Event) error {
		acc.Add(i, ev)
		return nil
	}); err != nil {
		return empty, err
	}
	return acc.Finish(), nil
}

// RunSummary is accumulated over all files of one group.
type RunSummary struct {
	Counts
	Files       int
	FailedFiles int
}

func (s RunSummary) Report(logger Logger) {
	logger.Info(fmt.Sprintf("Total events processed: %d", s.Events), "summary")
	logger.Info(fmt.Sprintf("Total skipped events: %d", s.Skipped), "summary")
	logger.Info(fmt.Sprintf("Total unknown lepton masses: %d", s.UnknownLeptons), "summary")
	if s.FailedFiles > 0 {
		logger.Info(fmt.Sprintf("Files that could not be read: %d of %d", s.FailedFiles, s.Files), "summary")
	}
}

// ProcessGroup processes paths in order and returns one aggregate per path,
// in the same order, so that labels and colours line up across plots.
// Unreadable files yield empty aggregates and do not stop the run.
func ProcessGroup(paths []string, open Opener, logger Logger) ([]FileAggregate, RunSummary) {
	var summary RunSummary
	aggs := make([]FileAggregate, 0, len(paths))
	for _, path := range paths {
		summary.Files++
		agg, err := ProcessFile(path, open, logger)
		if err != nil {
			summary.FailedFiles++
			logger.Error(fmt.Sprintf("Error processing %s: %v", filepath.Base(path), err))
		} else {
			summary.add(agg.Counts)
			logger.Info(fmt.Sprintf("Processing %s: %d events", filepath.Base(path), agg.Counts.Events), "aggregate")
		}
		aggs = append(aggs, agg)
	}
	summary.Report(logger)
	return aggs, summary
}
