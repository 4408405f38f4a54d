package alpplot

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForEachGroup(t *testing.T) {
	dir := t.TempDir()
	config := DefaultConfiguration()
	config.BaseDir = "in"
	config.OutputDir = filepath.Join(dir, "pic")
	config.Format = "png"
	config.RootOut = filepath.Join(dir, "hists.root")
	config.Groups = []Group{
		{Name: "light", Files: []string{"ALP_M0p1.root", "ALP_M0p2.root"}, ALPMassRange: [2]float64{0, 1}},
	}

	opener := MapOpener{
		filepath.Join("in", "ALP_M0p1.root"): {Events: []Event{fullEvent(eMass, eMass), degradedEvent(muMass, muMass)}},
	}

	var groups []string
	err := ForEachGroup(config, opener.Open, DiscardLogger(), func(g Group, r *Renderer) error {
		groups = append(groups, g.Name)
		require.Len(t, r.Aggs, 2)
		assert.Equal(t, "M0p1", r.Aggs[0].Label)
		assert.Equal(t, "M0p2", r.Aggs[1].Label)
		assert.Empty(t, r.Aggs[1].Mass[CategoryHiggs])
		return r.SaveGrid(MassPanels(g.ALPMassRange), 3, 3, config.Output("mass_distributions", g))
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"light"}, groups)
	requireFile(t, filepath.Join(dir, "pic", "mass_distributions_light.png"))
	requireFile(t, config.RootOut)
}
