package alpplot

import (
	"fmt"
	"path/filepath"
	"strings"
)

// EventSource yields the events of one file in file order.
type EventSource interface {
	// ScanEvents calls fn for every event. A non-nil error from fn stops
	// the scan and is returned.
	ScanEvents(fn func(index int, ev Event) error) error
	Close() error
}

// Open picks a reader from the file extension.
func Open(path string) (EventSource, error) {
	return OpenTree(path, DefaultTreeName)
}

// OpenTree is Open with the name of the ROOT tree holding the events.
func OpenTree(path, treeName string) (EventSource, error) {
	name := strings.ToLower(filepath.Base(path))
	switch {
	case strings.HasSuffix(name, ".root"):
		return openRoot(path, treeName)
	case strings.HasSuffix(name, ".lhe"), strings.HasSuffix(name, ".lhe.gz"):
		return openLHE(path)
	case strings.HasSuffix(name, ".proio"):
		return openProio(path)
	case strings.HasSuffix(name, ".slcio"):
		return openLCIO(path)
	}
	return nil, &SourceError{Path: path, Op: "opening", Err: ErrUnknownFormat}
}

// TreeOpener returns an Opener reading ROOT events from treeName.
func TreeOpener(treeName string) Opener {
	return func(path string) (EventSource, error) {
		return OpenTree(path, treeName)
	}
}

// SliceSource serves events already in memory. Err, when set, is returned
// by ScanEvents after the events have been served.
type SliceSource struct {
	Events []Event
	Err    error
}

func (s *SliceSource) ScanEvents(fn func(int, Event) error) error {
	for i, ev := range s.Events {
		if err := fn(i, ev); err != nil {
			return err
		}
	}
	return s.Err
}

func (s *SliceSource) Close() error {
	return nil
}

// MapOpener serves SliceSources by path; unknown paths fail to open.
type MapOpener map[string]*SliceSource

func (m MapOpener) Open(path string) (EventSource, error) {
	src, ok := m[path]
	if !ok {
		return nil, &SourceError{Path: path, Op: "opening", Err: fmt.Errorf("no such source")}
	}
	return src, nil
}
