package alpplot

import (
	"math"
	"strconv"

	"gonum.org/v1/plot"
)

// PreciseTicks places about NSuggestedTicks labelled ticks on round values
// and unlabelled minor ticks between them.
type PreciseTicks struct {
	NSuggestedTicks int
}

func (t PreciseTicks) Ticks(min, max float64) []plot.Tick {
	if t.NSuggestedTicks < 2 {
		t.NSuggestedTicks = 4
	}
	// empty panels come with a collapsed range
	if !(max > min) || math.IsInf(max-min, 0) {
		return nil
	}

	majorDelta, majorMult := majorStep(min, max, t.NSuggestedTicks)

	var ticks []plot.Tick
	majors := make(map[float64]bool)
	prec := -int(math.Floor(math.Log10(majorDelta)))
	for i, n := stepRange(min, max, majorDelta); i <= n; i++ {
		v := round(i*majorDelta, prec)
		majors[v] = true
		ticks = append(ticks, plot.Tick{Value: v, Label: strconv.FormatFloat(v, 'g', -1, 64)})
	}

	minorDelta := majorDelta / 2
	switch majorMult {
	case 3, 6:
		minorDelta = majorDelta / 3
	case 5:
		minorDelta = majorDelta / 5
	}
	for i, n := stepRange(min, max, minorDelta); i <= n; i++ {
		v := round(i*minorDelta, prec+1)
		if !majors[v] {
			ticks = append(ticks, plot.Tick{Value: v})
		}
	}
	return ticks
}

// stepRange returns the first and last multiples of delta inside [min, max],
// tolerating rounding at both ends.
func stepRange(min, max, delta float64) (float64, float64) {
	const eps = 1e-9
	return math.Ceil(min/delta - eps), math.Floor(max/delta + eps)
}

// majorStep picks a power of ten scaled by a small integer so that the range
// holds at least n-1 steps.
func majorStep(min, max float64, n int) (float64, int) {
	span := max - min
	tens := math.Pow10(int(math.Floor(math.Log10(span))))
	for span/tens < float64(n-1) {
		tens /= 10
	}

	mult := int(span / tens / float64(n-1))
	switch mult {
	case 0:
		mult = 1
	case 7:
		mult = 6
	case 9:
		mult = 8
	}
	return float64(mult) * tens, mult
}

// round to prec decimal places; negative prec rounds to tens, hundreds...
func round(x float64, prec int) float64 {
	if x == 0 {
		return 0
	}
	if prec >= 0 && x == math.Trunc(x) {
		return x
	}

	var r float64
	if prec >= 0 {
		pow := math.Pow10(prec)
		if math.IsInf(x*pow, 0) {
			return x
		}
		r = math.Round(x*pow) / pow
	} else {
		pow := math.Pow10(-prec)
		r = math.Round(x/pow) * pow
	}
	if r == 0 {
		// no negative zero
		return 0
	}
	return r
}
