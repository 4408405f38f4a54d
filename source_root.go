package alpplot

import (
	"fmt"

	"go-hep.org/x/hep/groot"
	"go-hep.org/x/hep/groot/riofs"
	"go-hep.org/x/hep/groot/rtree"
)

const DefaultTreeName = "events"

var (
	requiredBranches = [...]string{"mass", "px", "py"}
	// Only angular separations need these. Without energy, it is computed
	// from the mass.
	optionalBranches = [...]string{"pz", "energy"}
)

type rootSource struct {
	path  string
	file  *riofs.File
	tree  rtree.Tree
	rvars []rtree.ReadVar

	// positions of pz and energy in rvars, -1 when absent
	pz, energy int
}

func openRoot(path, treeName string) (*rootSource, error) {
	f, err := groot.Open(path)
	if err != nil {
		return nil, &SourceError{Path: path, Op: "opening", Err: err}
	}

	obj, err := f.Get(treeName)
	if err != nil {
		f.Close()
		return nil, &SourceError{Path: path, Op: "opening", Err: err}
	}
	tree, ok := obj.(rtree.Tree)
	if !ok {
		f.Close()
		return nil, &SourceError{Path: path, Op: "opening", Err: fmt.Errorf("%q is a %T, not a tree", treeName, obj)}
	}

	// Let groot pick the Go type of every branch, float or double, fixed
	// or variable length, then keep only the ones needed.
	byName := make(map[string]rtree.ReadVar)
	for _, rv := range rtree.NewReadVars(tree) {
		byName[rv.Name] = rv
	}
	src := &rootSource{path: path, file: f, tree: tree, pz: -1, energy: -1}
	for _, name := range requiredBranches {
		rv, ok := byName[name]
		if !ok {
			f.Close()
			return nil, &SourceError{Path: path, Op: "opening", Err: fmt.Errorf("%w %q", ErrMissingBranch, name)}
		}
		src.rvars = append(src.rvars, rv)
	}
	for _, name := range optionalBranches {
		rv, ok := byName[name]
		if !ok {
			continue
		}
		switch name {
		case "pz":
			src.pz = len(src.rvars)
		case "energy":
			src.energy = len(src.rvars)
		}
		src.rvars = append(src.rvars, rv)
	}
	return src, nil
}

func (s *rootSource) ScanEvents(fn func(int, Event) error) error {
	r, err := rtree.NewReader(s.tree, s.rvars)
	if err != nil {
		return &SourceError{Path: s.path, Op: "reading", Err: err}
	}
	defer r.Close()

	err = r.Read(func(ctx rtree.RCtx) error {
		cols := make([][]float64, len(s.rvars))
		for i, rv := range s.rvars {
			v, err := toFloat64s(rv.Value)
			if err != nil {
				return fmt.Errorf("branch %q: %w", rv.Name, err)
			}
			cols[i] = v
		}

		ev := Event{Mass: cols[0], Px: cols[1], Py: cols[2]}
		if s.pz >= 0 {
			ev.Pz = cols[s.pz]
			if s.energy >= 0 {
				ev.Energy = cols[s.energy]
			} else {
				ev.Energy = onShellEnergies(ev)
			}
		}
		return fn(int(ctx.Entry), ev)
	})
	if err != nil {
		return &SourceError{Path: s.path, Op: "reading", Err: err}
	}
	return nil
}

func (s *rootSource) Close() error {
	return s.file.Close()
}

// toFloat64s copies the value bound to a read variable. The copy matters:
// groot reuses the bound slices for the next entry. The result is never nil,
// so an empty branch still counts as present.
func toFloat64s(ptr any) ([]float64, error) {
	switch v := ptr.(type) {
	case *[]float64:
		return append(make([]float64, 0, len(*v)), (*v)...), nil
	case *[]float32:
		out := make([]float64, len(*v))
		for i, x := range *v {
			out[i] = float64(x)
		}
		return out, nil
	case *float64:
		return []float64{*v}, nil
	case *float32:
		return []float64{float64(*v)}, nil
	}
	return nil, fmt.Errorf("unsupported branch type %T", ptr)
}
