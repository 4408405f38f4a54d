package alpplot

import (
	"errors"
	"io"

	"go-hep.org/x/hep/lcio"
)

const lcioParticleCollection = "MCParticle"

type lcioSource struct {
	path   string
	reader *lcio.Reader
}

func openLCIO(path string) (*lcioSource, error) {
	reader, err := lcio.Open(path)
	if err != nil {
		return nil, &SourceError{Path: path, Op: "opening", Err: err}
	}
	return &lcioSource{path: path, reader: reader}, nil
}

func (s *lcioSource) ScanEvents(fn func(int, Event) error) error {
	for i := 0; s.reader.Next(); i++ {
		event := s.reader.Event()

		var ev Event
		if coll, ok := event.Get(lcioParticleCollection).(*lcio.McParticleContainer); ok {
			for _, part := range coll.Particles {
				px, py, pz := part.P[0], part.P[1], part.P[2]
				ev.Mass = append(ev.Mass, part.Mass)
				ev.Px = append(ev.Px, px)
				ev.Py = append(ev.Py, py)
				ev.Pz = append(ev.Pz, pz)
				ev.Energy = append(ev.Energy, energyFromMass(px, py, pz, part.Mass))
			}
		}

		if err := fn(i, ev); err != nil {
			return err
		}
	}

	// the reader reports io.EOF once the file is exhausted
	if err := s.reader.Err(); err != nil && !errors.Is(err, io.EOF) {
		return &SourceError{Path: s.path, Op: "reading", Err: err}
	}
	return nil
}

func (s *lcioSource) Close() error {
	s.reader.Close()
	return nil
}
