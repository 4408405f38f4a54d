package alpplot

import (
	"compress/gzip"
	"errors"
	"io"
	"os"
	"strings"

	"go-hep.org/x/hep/lhef"
)

type lheSource struct {
	path string
	f    *os.File
	r    io.Reader
}

func openLHE(path string) (*lheSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &SourceError{Path: path, Op: "opening", Err: err}
	}

	var r io.Reader = f
	if strings.HasSuffix(strings.ToLower(path), ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, &SourceError{Path: path, Op: "opening", Err: err}
		}
		r = gz
	}
	return &lheSource{path: path, f: f, r: r}, nil
}

func (s *lheSource) ScanEvents(fn func(int, Event) error) error {
	dec, err := lhef.NewDecoder(s.r)
	if err != nil {
		return &SourceError{Path: s.path, Op: "reading", Err: err}
	}

	for i := 0; ; i++ {
		evt, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return &SourceError{Path: s.path, Op: "reading", Err: err}
		}
		if err := fn(i, eventFromHEPEUP(evt)); err != nil {
			return err
		}
	}
}

func (s *lheSource) Close() error {
	if gz, ok := s.r.(*gzip.Reader); ok {
		gz.Close()
	}
	return s.f.Close()
}

// eventFromHEPEUP keeps the particle order of the event block.
// PUP is (px, py, pz, E, m).
func eventFromHEPEUP(evt *lhef.HEPEUP) Event {
	n := len(evt.PUP)
	ev := Event{
		Mass:   make([]float64, n),
		Px:     make([]float64, n),
		Py:     make([]float64, n),
		Pz:     make([]float64, n),
		Energy: make([]float64, n),
	}
	for i, p := range evt.PUP {
		ev.Px[i] = p[0]
		ev.Py[i] = p[1]
		ev.Pz[i] = p[2]
		ev.Energy[i] = p[3]
		ev.Mass[i] = p[4]
	}
	return ev
}
