package alpplot

import (
	"errors"
	"io"

	"github.com/proio-org/go-proio"
	"github.com/proio-org/go-proio-pb/model/eic"
)

const proioParticleTag = "GenStable"

type proioSource struct {
	path   string
	reader *proio.Reader
}

func openProio(path string) (*proioSource, error) {
	reader, err := proio.Open(path)
	if err != nil {
		return nil, &SourceError{Path: path, Op: "opening", Err: err}
	}
	return &proioSource{path: path, reader: reader}, nil
}

func (s *proioSource) ScanEvents(fn func(int, Event) error) error {
	i := 0
	events := s.reader.ScanEvents()
	for event := range events {
		var ev Event
		for _, id := range event.TaggedEntries(proioParticleTag) {
			part, ok := event.GetEntry(id).(*eic.Particle)
			if !ok {
				continue
			}

			px := float64(part.GetP().GetX())
			py := float64(part.GetP().GetY())
			pz := float64(part.GetP().GetZ())
			m := float64(part.GetMass())
			ev.Mass = append(ev.Mass, m)
			ev.Px = append(ev.Px, px)
			ev.Py = append(ev.Py, py)
			ev.Pz = append(ev.Pz, pz)
			ev.Energy = append(ev.Energy, energyFromMass(px, py, pz, m))
		}

		if err := fn(i, ev); err != nil {
			// wait for the scanning goroutine, Close shuts the Err channel
			// it may still push to
			s.reader.StopScan()
			for range events {
			}
			return err
		}
		i++
	}

	if err := firstScanError(s.reader.Err); err != nil {
		return &SourceError{Path: s.path, Op: "reading", Err: err}
	}
	return nil
}

// firstScanError returns the first error the scanning goroutine pushed,
// other than the io.EOF ending every file. The goroutine is done once the
// event channel is closed, so it never blocks.
func firstScanError(errs <-chan error) error {
	for {
		select {
		case err, ok := <-errs:
			if !ok {
				return nil
			}
			if err != nil && !errors.Is(err, io.EOF) {
				return err
			}
		default:
			return nil
		}
	}
}

func (s *proioSource) Close() error {
	s.reader.Close()
	return nil
}
