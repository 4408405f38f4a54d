package alpplot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Group is a set of mass-point files plotted together.
type Group struct {
	Name  string   `json:"name"`
	Label string   `json:"label"`
	Files []string `json:"files"`
	// x range of the ALP mass panel, GeV
	ALPMassRange [2]float64 `json:"alp_mass_range"`
}

type Configuration struct {
	BaseDir   string  `json:"base_dir"`
	TreeName  string  `json:"tree_name"`
	OutputDir string  `json:"output_dir"`
	Format    string  `json:"format"`
	RootOut   string  `json:"root_out"`
	Verbosity int     `json:"verbosity"`
	Groups    []Group `json:"groups"`
}

func DefaultConfiguration() Configuration {
	return Configuration{
		BaseDir:   ".",
		TreeName:  DefaultTreeName,
		OutputDir: "pic",
		Format:    "pdf",
		Groups: []Group{
			{
				Name:  "ma_0p1_0p9",
				Label: "0.1-0.9 GeV",
				Files: []string{
					"ALP_M0p1.root", "ALP_M0p2.root", "ALP_M0p3.root", "ALP_M0p4.root", "ALP_M0p5.root",
					"ALP_M0p6.root", "ALP_M0p7.root", "ALP_M0p8.root", "ALP_M0p9.root",
				},
				ALPMassRange: [2]float64{0, 1},
			},
			{
				Name:  "ma_1_30",
				Label: "1-30 GeV",
				Files: []string{
					"ALP_M1.root", "ALP_M2.root", "ALP_M3.root", "ALP_M4.root", "ALP_M5.root",
					"ALP_M6.root", "ALP_M7.root", "ALP_M8.root", "ALP_M9.root", "ALP_M10.root",
					"ALP_M15.root", "ALP_M20.root", "ALP_M25.root", "ALP_M30.root",
				},
				ALPMassRange: [2]float64{0, 35},
			},
		},
	}
}

// LoadConfiguration reads a JSON file over the defaults. An empty filename
// returns the defaults.
func LoadConfiguration(filename string) (Configuration, error) {
	config := DefaultConfiguration()
	if filename == "" {
		return config, nil
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, err
	}
	// groups are replaced as a whole, never merged with the defaults
	defaultGroups := config.Groups
	config.Groups = nil
	if err := json.Unmarshal(data, &config); err != nil {
		return config, err
	}
	if config.Groups == nil {
		config.Groups = defaultGroups
	}
	return config, config.Validate()
}

func (c Configuration) Validate() error {
	if len(c.Groups) == 0 {
		return fmt.Errorf("no file groups configured")
	}
	for _, g := range c.Groups {
		if g.Name == "" {
			return fmt.Errorf("file group without a name")
		}
		if len(g.Files) == 0 {
			return fmt.Errorf("file group %q has no files", g.Name)
		}
		if !(g.ALPMassRange[1] > g.ALPMassRange[0]) {
			return fmt.Errorf("file group %q: empty ALP mass range %v", g.Name, g.ALPMassRange)
		}
	}
	return nil
}

// Paths joins the group files to the base directory. Absolute file names are
// kept as they are.
func (c Configuration) Paths(g Group) []string {
	paths := make([]string, len(g.Files))
	for i, f := range g.Files {
		if filepath.IsAbs(f) {
			paths[i] = f
			continue
		}
		paths[i] = filepath.Join(c.BaseDir, f)
	}
	return paths
}

// Output is the path of a plot file in the output directory.
func (c Configuration) Output(stem string, g Group) string {
	return filepath.Join(c.OutputDir, fmt.Sprintf("%s_%s.%s", stem, g.Name, c.Format))
}

// CustomGroup is the group formed by files named on the command line.
func CustomGroup(files []string) Group {
	return Group{Name: "custom", Label: "custom", Files: files, ALPMassRange: [2]float64{0, 35}}
}

func PrintConfiguration(config Configuration, logger Logger) {
	logger.Info(fmt.Sprintf("Base dir: %s", config.BaseDir), "config")
	logger.Info(fmt.Sprintf("Tree: %s", config.TreeName), "config")
	logger.Info(fmt.Sprintf("Output dir: %s", config.OutputDir), "config")
	logger.Info(fmt.Sprintf("Format: %s", config.Format), "config")
	if config.RootOut != "" {
		logger.Info(fmt.Sprintf("ROOT output: %s", config.RootOut), "config")
	}
	for _, g := range config.Groups {
		logger.Info(fmt.Sprintf("Group %s (%s): %d files", g.Name, g.Label, len(g.Files)), "config")
	}
}
