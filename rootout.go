package alpplot

import (
	"fmt"

	"go-hep.org/x/hep/groot"
	"go-hep.org/x/hep/groot/rhist"
	"go-hep.org/x/hep/hbook"
)

// HistStore keeps drawn histograms, in drawing order, for export to ROOT.
// A nil store drops everything.
type HistStore struct {
	names []string
	hists map[string]*hbook.H1D
}

func NewHistStore() *HistStore {
	return &HistStore{hists: make(map[string]*hbook.H1D)}
}

// Keep records h under name. A later histogram with the same name replaces
// the earlier one.
func (s *HistStore) Keep(name string, h *hbook.H1D) {
	if s == nil {
		return
	}
	if _, dup := s.hists[name]; !dup {
		s.names = append(s.names, name)
	}
	s.hists[name] = h
}

func (s *HistStore) Names() []string {
	if s == nil {
		return nil
	}
	return s.names
}

func (s *HistStore) Get(name string) (*hbook.H1D, bool) {
	if s == nil {
		return nil, false
	}
	h, ok := s.hists[name]
	return h, ok
}

// WriteROOT writes every histogram as a TH1D keyed by its name.
func (s *HistStore) WriteROOT(path string) error {
	f, err := groot.Create(path)
	if err != nil {
		return &SourceError{Path: path, Op: "creating", Err: err}
	}

	for _, name := range s.Names() {
		if err := f.Put(name, rhist.NewH1DFrom(s.hists[name])); err != nil {
			f.Close()
			return fmt.Errorf("writing %q to %q: %w", name, path, err)
		}
	}
	return f.Close()
}
