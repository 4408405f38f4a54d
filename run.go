package alpplot

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// CommonFlags are the options shared by the plot programs.
type CommonFlags struct {
	Config    *string
	Base      *string
	OutDir    *string
	Format    *string
	Root      *string
	Tree      *string
	Verbosity *int
	Profile   *bool
}

func RegisterCommonFlags(fs *flag.FlagSet) *CommonFlags {
	return &CommonFlags{
		Config:    fs.String("config", "", "JSON configuration file"),
		Base:      fs.String("base", "", "directory holding the input files (overrides the configuration)"),
		OutDir:    fs.String("outdir", "", "output directory (default pic)"),
		Format:    fs.String("format", "", "output format: pdf, png, svg, eps (default pdf)"),
		Root:      fs.String("root", "", "also write the drawn histograms to this ROOT file"),
		Tree:      fs.String("tree", "", "name of the ROOT tree holding the events (default events)"),
		Verbosity: fs.Int("v", -1, "verbosity; 1 prints per-event diagnostics"),
		Profile:   fs.Bool("profile", false, "write a CPU profile into the output directory"),
	}
}

// Configuration loads the configuration file, applies flag overrides and, when
// files are named on the command line, replaces the groups with one group of
// those files.
func (f *CommonFlags) Configuration(args []string) (Configuration, error) {
	config, err := LoadConfiguration(*f.Config)
	if err != nil {
		return config, fmt.Errorf("reading configuration file: %w", err)
	}

	if *f.Base != "" {
		config.BaseDir = *f.Base
	}
	if *f.OutDir != "" {
		config.OutputDir = *f.OutDir
	}
	if *f.Format != "" {
		config.Format = strings.TrimPrefix(*f.Format, ".")
	}
	if *f.Root != "" {
		config.RootOut = *f.Root
	}
	if *f.Tree != "" {
		config.TreeName = *f.Tree
	}
	if *f.Verbosity >= 0 {
		config.Verbosity = *f.Verbosity
	}
	if len(args) > 0 {
		config.Groups = []Group{CustomGroup(args)}
	}
	return config, config.Validate()
}

// ForEachGroup processes the files of every group and hands the result to
// draw. Unreadable files are reported and left empty; an error from draw
// stops the run. The collected histograms are written to config.RootOut at
// the end when it is set.
func ForEachGroup(config Configuration, open Opener, logger Logger, draw func(Group, *Renderer) error) error {
	if err := os.MkdirAll(config.OutputDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	var store *HistStore
	if config.RootOut != "" {
		store = NewHistStore()
	}

	for _, g := range config.Groups {
		logger.Info(fmt.Sprintf("Group %s (ma %s)", g.Name, g.Label), "run")
		aggs, _ := ProcessGroup(config.Paths(g), open, logger)
		if err := draw(g, &Renderer{Group: g, Aggs: aggs, Store: store}); err != nil {
			return fmt.Errorf("group %s: %w", g.Name, err)
		}
	}

	if store != nil {
		if err := store.WriteROOT(config.RootOut); err != nil {
			return err
		}
		logger.Info(fmt.Sprintf("Wrote %d histograms to %s", len(store.Names()), config.RootOut), "run")
	}
	return nil
}

// WithSuffix inserts suffix before the extension: a/b.pdf -> a/b_zoom.pdf.
func WithSuffix(path, suffix string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + suffix + ext
}
