package alpplot

import (
	"fmt"
	"strconv"
	"strings"
)

// FloatArrayFlags collects a repeated float flag. The first Set replaces
// whatever defaults Array was initialised with.
type FloatArrayFlags struct {
	Array   []float64
	beenSet bool
}

func (f *FloatArrayFlags) Set(valueStr string) error {
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return err
	}

	if !f.beenSet {
		f.beenSet = true
		f.Array = nil
	}

	f.Array = append(f.Array, value)
	return nil
}

func (f *FloatArrayFlags) String() string {
	strs := make([]string, len(f.Array))
	for i, v := range f.Array {
		strs[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(strs, ",")
}

// CheckCuts requires strictly increasing positive values, as Proportions
// expects.
func (f *FloatArrayFlags) CheckCuts() error {
	for i, v := range f.Array {
		if v <= 0 {
			return fmt.Errorf("cut %g is not positive", v)
		}
		if i > 0 && v <= f.Array[i-1] {
			return fmt.Errorf("cuts must increase: %g after %g", v, f.Array[i-1])
		}
	}
	return nil
}
