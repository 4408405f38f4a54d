package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/pkg/profile"

	"github.com/hza-alp/alpplot"
)

const (
	effiMax         = 1.0
	effiExtendedMax = 3.0
)

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage: `+os.Args[0]+` [options] [event-files]...

Draws the efficiency of a cut on the photon pair separation and the share of
events per separation range, for every file group.
Files named on the command line form a single group.

options:
`,
	)
	flag.PrintDefaults()
}

func main() {
	common := alpplot.RegisterCommonFlags(flag.CommandLine)
	cuts := &alpplot.FloatArrayFlags{Array: alpplot.DefaultProportionCuts}
	flag.Var(cuts, "cut", "upper edge of a separation range in the proportion plot (repeatable)")
	flag.Usage = printUsage
	flag.Parse()

	config, err := common.Configuration(flag.Args())
	if err != nil {
		printUsage()
		log.Fatal(err)
	}
	if err := cuts.CheckCuts(); err != nil {
		printUsage()
		log.Fatal(err)
	}

	logger := alpplot.NewLogger(os.Stdout, os.Stderr, config.Verbosity)
	if config.Verbosity > 0 {
		alpplot.PrintConfiguration(config, logger)
	}
	if err := run(config, logger, *common.Profile, cuts.Array); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

// run draws every group. The profile is written when it returns.
func run(config alpplot.Configuration, logger alpplot.Logger, prof bool, cuts []float64) error {
	if prof {
		defer profile.Start(profile.ProfilePath(config.OutputDir)).Stop()
	}

	return alpplot.ForEachGroup(config, alpplot.TreeOpener(config.TreeName), logger, func(g alpplot.Group, r *alpplot.Renderer) error {
		for _, agg := range r.Aggs {
			valid := len(alpplot.DefinedValues(agg.PhotonDR))
			logger.Info(fmt.Sprintf("Valid events with gamma_dr in %s: %d", agg.Label, valid), "dr_effi")
		}

		if err := r.SaveEfficiency(effiMax, config.Output("gamma_dr_efficiency", g)); err != nil {
			return err
		}
		if err := r.SaveEfficiency(effiExtendedMax, config.Output("gamma_dr_efficiency_extended", g)); err != nil {
			return err
		}
		return r.SaveProportions(cuts, config.Output("gamma_dr_bins", g))
	})
}
