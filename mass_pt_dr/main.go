package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/pkg/profile"

	"github.com/hza-alp/alpplot"
)

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage: `+os.Args[0]+` [options] [event-files]...

Draws the mass, transverse momentum and angular separation distributions of
every file group, plus a zoom on the photon pair separation.
Files named on the command line form a single group.

options:
`,
	)
	flag.PrintDefaults()
}

func main() {
	common := alpplot.RegisterCommonFlags(flag.CommandLine)
	flag.Usage = printUsage
	flag.Parse()

	config, err := common.Configuration(flag.Args())
	if err != nil {
		printUsage()
		log.Fatal(err)
	}

	logger := alpplot.NewLogger(os.Stdout, os.Stderr, config.Verbosity)
	if config.Verbosity > 0 {
		alpplot.PrintConfiguration(config, logger)
	}
	if err := run(config, logger, *common.Profile); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

// run draws every group. The profile is written when it returns.
func run(config alpplot.Configuration, logger alpplot.Logger, prof bool) error {
	if prof {
		defer profile.Start(profile.ProfilePath(config.OutputDir)).Stop()
	}

	return alpplot.ForEachGroup(config, alpplot.TreeOpener(config.TreeName), logger, func(g alpplot.Group, r *alpplot.Renderer) error {
		if err := r.SaveGrid(alpplot.MassPanels(g.ALPMassRange), 3, 3, config.Output("mass_distributions", g)); err != nil {
			return err
		}
		if err := r.SaveGrid(alpplot.PTPanels(), 3, 3, config.Output("pt_distributions", g)); err != nil {
			return err
		}

		drOutput := config.Output("dr_distributions", g)
		if err := r.SaveGrid(alpplot.DeltaRPanels(), 1, 3, drOutput); err != nil {
			return err
		}
		return r.SavePanel(alpplot.PhotonDeltaRZoom, alpplot.WithSuffix(drOutput, "_gamma_zoom"))
	})
}
