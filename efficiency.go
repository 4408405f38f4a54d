package alpplot

import (
	"fmt"
	"math"

	"go-hep.org/x/hep/hbook"
	"gonum.org/v1/plot/plotter"
)

const CutStep = 0.1

// EfficiencyCurve is the fraction of events with a defined separation that
// survive a cut dR > x, for x = 0 and every upper bin edge up to max.
// ok is false when drs holds no defined value.
//
// Separations equal to max fall outside the last bin.
func EfficiencyCurve(drs []DeltaR, max, step float64) (xys plotter.XYs, ok bool) {
	values := DefinedValues(drs)
	total := float64(len(values))
	if total == 0 {
		return nil, false
	}

	nBins := int(math.Round(max / step))
	hist := hbook.NewH1D(nBins, 0, float64(nBins)*step)
	for _, v := range values {
		hist.Fill(v, 1)
	}

	xys = make(plotter.XYs, nBins+1)
	xys[0].X, xys[0].Y = 0, 1
	cumulative := 0.0
	for i := 0; i < nBins; i++ {
		cumulative += hist.Value(i)
		xys[i+1].X = float64(i+1) * step
		xys[i+1].Y = (total - cumulative) / total
	}
	return xys, true
}

// DefaultProportionCuts split photon separations into dR <= 0.1,
// 0.1 < dR <= 0.3 and dR > 0.3.
var DefaultProportionCuts = []float64{0.1, 0.3}

// Proportions returns, for ascending cuts c1..cn, the fractions of values in
// (0, c1], (c1, c2], ..., (cn, +inf). All fractions are zero for no values.
func Proportions(values []float64, cuts []float64) []float64 {
	props := make([]float64, len(cuts)+1)
	if len(values) == 0 {
		return props
	}

	for _, v := range values {
		lo := 0.0
		for i := range props {
			hi := math.Inf(1)
			if i < len(cuts) {
				hi = cuts[i]
			}
			if v > lo && v <= hi {
				props[i]++
				break
			}
			lo = hi
		}
	}
	for i := range props {
		props[i] /= float64(len(values))
	}
	return props
}

// ProportionLabels names the ranges used by Proportions.
func ProportionLabels(cuts []float64) []string {
	if len(cuts) == 0 {
		return []string{"ΔR > 0"}
	}
	labels := []string{fmt.Sprintf("ΔR ≤ %g", cuts[0])}
	for i := 1; i < len(cuts); i++ {
		labels = append(labels, fmt.Sprintf("%g < ΔR ≤ %g", cuts[i-1], cuts[i]))
	}
	return append(labels, fmt.Sprintf("ΔR > %g", cuts[len(cuts)-1]))
}
