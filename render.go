package alpplot

import (
	"fmt"
	"image/color"
	"math"

	"go-hep.org/x/hep/hbook"
	"go-hep.org/x/hep/hplot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Palette gives every file of a group its colour, by position in the group.
var Palette = []color.Color{
	rgb(0x1f, 0x77, 0xb4), rgb(0xff, 0x7f, 0x0e), rgb(0x2c, 0xa0, 0x2c), rgb(0xd6, 0x27, 0x28),
	rgb(0x94, 0x67, 0xbd), rgb(0x8c, 0x56, 0x4b), rgb(0xe3, 0x77, 0xc2), rgb(0x7f, 0x7f, 0x7f),
	rgb(0xbc, 0xbd, 0x22), rgb(0x17, 0xbe, 0xcf), rgb(0xae, 0xc7, 0xe8), rgb(0xff, 0xbb, 0x78),
	rgb(0x98, 0xdf, 0x8a), rgb(0xff, 0x98, 0x96),
}

func rgb(r, g, b uint8) color.Color {
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func FileColor(i int) color.Color {
	return Palette[i%len(Palette)]
}

type Quantity int

const (
	QuantityMass Quantity = iota
	QuantityPT
	QuantityDeltaR
)

func (q Quantity) String() string {
	switch q {
	case QuantityMass:
		return "mass"
	case QuantityPT:
		return "pt"
	}
	return "dr"
}

// Panel is one histogram of one category across all files of a group.
type Panel struct {
	Category Category
	Quantity Quantity
	NBins    int
	Min, Max float64
	XLabel   string
}

func (p Panel) Name() string {
	return p.Category.String() + "_" + p.Quantity.String()
}

func (p Panel) Values(a *FileAggregate) []float64 {
	switch p.Quantity {
	case QuantityMass:
		return a.Mass[p.Category]
	case QuantityPT:
		return a.PT[p.Category]
	}
	return a.DeltaRValues(p.Category)
}

func (p Panel) Hist(values []float64) *hbook.H1D {
	h := hbook.NewH1D(p.NBins, p.Min, p.Max)
	for _, v := range values {
		h.Fill(v, 1)
	}
	return h
}

// MassPanels are the seven mass histograms. Electron and muon masses are in
// MeV, everything else in GeV.
func MassPanels(alpRange [2]float64) []Panel {
	return []Panel{
		{CategoryHiggs, QuantityMass, 100, 120, 130, "Higgs Mass (GeV)"},
		{CategoryALP, QuantityMass, 100, alpRange[0], alpRange[1], "ALP Mass (GeV)"},
		{CategoryZ, QuantityMass, 25, 70, 110, "Z boson Mass (GeV)"},
		{CategoryElectron, QuantityMass, 100, 0.4, 0.6, "e Mass (MeV)"},
		{CategoryMuon, QuantityMass, 100, 90, 120, "μ Mass (MeV)"},
		{CategoryTau, QuantityMass, 100, 1.7, 1.9, "τ Mass (GeV)"},
		{CategoryPhoton, QuantityMass, 100, 0, 1, "γ Mass (GeV)"},
	}
}

func PTPanels() []Panel {
	return []Panel{
		{CategoryHiggs, QuantityPT, 25, 0, 200, "Higgs pT (GeV)"},
		{CategoryALP, QuantityPT, 25, 0, 50, "ALP pT (GeV)"},
		{CategoryZ, QuantityPT, 25, 0, 80, "Z boson pT (GeV)"},
		{CategoryElectron, QuantityPT, 25, 0, 90, "e pT (GeV)"},
		{CategoryMuon, QuantityPT, 25, 0, 90, "μ pT (GeV)"},
		{CategoryTau, QuantityPT, 25, 0, 90, "τ pT (GeV)"},
		{CategoryPhoton, QuantityPT, 25, 0, 30, "γ pT (GeV)"},
	}
}

func DeltaRPanels() []Panel {
	return []Panel{
		{CategoryPhoton, QuantityDeltaR, 25, 0, 5, "ΔR(γ1, γ2)"},
		{CategoryElectron, QuantityDeltaR, 25, 0, 5, "ΔR(e1, e2)"},
		{CategoryMuon, QuantityDeltaR, 25, 0, 5, "ΔR(μ1, μ2)"},
	}
}

var PhotonDeltaRZoom = Panel{CategoryPhoton, QuantityDeltaR, 25, 0, 1, "ΔR(γ1, γ2)"}

// Renderer draws the plots of one group. Histograms handed to Store, when
// set, are the unnormalised ones.
type Renderer struct {
	Group Group
	Aggs  []FileAggregate
	Store *HistStore
}

func newPlot() *hplot.Plot {
	p := hplot.New()
	p.X.Tick.Marker = PreciseTicks{NSuggestedTicks: 5}
	p.Y.Tick.Marker = PreciseTicks{NSuggestedTicks: 5}
	p.Legend.Top = true
	return p
}

// DrawPanel adds one unit-area outline histogram per file to p. Files with
// no value for the panel are left out, legend included.
func (r *Renderer) DrawPanel(p *hplot.Plot, panel Panel) {
	p.X.Label.Text = panel.XLabel
	p.Y.Label.Text = "A.U."
	p.X.Min, p.X.Max = panel.Min, panel.Max

	for i := range r.Aggs {
		agg := &r.Aggs[i]
		values := panel.Values(agg)
		if len(values) == 0 {
			continue
		}

		r.Store.Keep(fmt.Sprintf("%s_%s_%s", r.Group.Name, agg.Label, panel.Name()), panel.Hist(values))

		hist := panel.Hist(values)
		if integral := hist.Integral(); integral > 0 {
			binWidth := (panel.Max - panel.Min) / float64(panel.NBins)
			hist.Scale(1 / (integral * binWidth))
		}

		h := hplot.NewH1D(hist)
		h.FillColor = nil
		h.LineStyle.Color = FileColor(i)
		h.LineStyle.Width = vg.Points(2)
		h.Infos.Style = hplot.HInfoNone

		p.Add(h)
		p.Legend.Add(agg.Label, h)
	}
}

// SaveGrid draws panels row by row on a rows x cols grid.
func (r *Renderer) SaveGrid(panels []Panel, rows, cols int, output string) error {
	if len(panels) > rows*cols {
		return fmt.Errorf("%d panels do not fit a %dx%d grid", len(panels), rows, cols)
	}

	tp := hplot.NewTiledPlot(draw.Tiles{
		Rows: rows,
		Cols: cols,
		PadX: 5 * vg.Millimeter,
		PadY: 5 * vg.Millimeter,
	})
	for k := 0; k < rows*cols; k++ {
		p := tp.Plots[k]
		if k >= len(panels) {
			p.HideAxes()
			continue
		}
		p.X.Tick.Marker = PreciseTicks{NSuggestedTicks: 5}
		p.Y.Tick.Marker = PreciseTicks{NSuggestedTicks: 5}
		p.Legend.Top = true
		r.DrawPanel(p, panels[k])
	}

	return hplot.Save(tp, vg.Length(cols)*8*vg.Inch, vg.Length(rows)*6*vg.Inch, output)
}

func (r *Renderer) SavePanel(panel Panel, output string) error {
	p := newPlot()
	r.DrawPanel(p, panel)
	return hplot.Save(p, 8*vg.Inch, 6*vg.Inch, output)
}

// SaveEfficiency draws the photon separation cut efficiency of every file
// with at least one defined separation, cuts from 0 to max.
func (r *Renderer) SaveEfficiency(max float64, output string) error {
	p := newPlot()
	p.X.Label.Text = "ΔR(γ1, γ2) Cut"
	p.Y.Label.Text = "Efficiency"
	p.Add(plotter.NewGrid())

	for i := range r.Aggs {
		agg := &r.Aggs[i]
		xys, ok := EfficiencyCurve(agg.PhotonDR, max, CutStep)
		if !ok {
			continue
		}

		line, points, err := plotter.NewLinePoints(xys)
		if err != nil {
			return fmt.Errorf("efficiency of %s: %w", agg.Label, err)
		}
		line.Color = FileColor(i)
		line.Width = vg.Points(2)
		points.Color = FileColor(i)
		points.Shape = draw.CircleGlyph{}
		points.Radius = vg.Points(3)

		p.Add(line, points)
		p.Legend.Add(agg.Label, line, points)
	}

	return hplot.Save(p, 10*vg.Inch, 6*vg.Inch, output)
}

// SaveProportions draws one group of bars per file: the fraction of defined
// photon separations in each range delimited by cuts.
func (r *Renderer) SaveProportions(cuts []float64, output string) error {
	nRanges := len(cuts) + 1
	byRange := make([]plotter.Values, nRanges)
	labels := make([]string, len(r.Aggs))
	for i := range r.Aggs {
		labels[i] = r.Aggs[i].Label
		props := Proportions(DefinedValues(r.Aggs[i].PhotonDR), cuts)
		for k, v := range props {
			byRange[k] = append(byRange[k], v)
		}
	}

	p := newPlot()
	p.X.Label.Text = "ALP Mass (GeV)"
	p.Y.Label.Text = "Proportion"
	p.X.Tick.Label.Rotation = math.Pi / 4

	width := vg.Points(12)
	rangeLabels := ProportionLabels(cuts)
	for k, values := range byRange {
		if len(values) == 0 {
			continue
		}
		bars, err := plotter.NewBarChart(values, width)
		if err != nil {
			return fmt.Errorf("proportions %s: %w", rangeLabels[k], err)
		}
		bars.Color = FileColor(k)
		bars.LineStyle.Width = 0
		bars.Offset = vg.Length(float64(k)-float64(nRanges-1)/2) * width

		p.Add(bars)
		p.Legend.Add(rangeLabels[k], bars)
	}
	p.NominalX(labels...)

	return hplot.Save(p, 12*vg.Inch, 6*vg.Inch, output)
}
