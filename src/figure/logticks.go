package figure

import (
	"math"
	"strconv"

	chart "github.com/wcharczuk/go-chart/v2"
)

// logAxisBounds expands [min,max] to decade boundaries with room above and
// below for point annotations. Returns powers of ten enclosing min/2 and
// max*2.
func logAxisBounds(min, max float64) (float64, float64) {
	if math.IsNaN(min) || math.IsNaN(max) || min <= 0 {
		return 1, 10
	}
	if max < min {
		max = min
	}
	lo := math.Pow(10, math.Floor(math.Log10(min/2)))
	hi := math.Pow(10, math.Ceil(math.Log10(max*2)))
	if hi <= lo {
		hi = lo * 10
	}
	return lo, hi
}

// decadeTicks returns a tick at every power of ten in [lo, hi].
func decadeTicks(lo, hi float64) []chart.Tick {
	if lo <= 0 || hi <= lo {
		return nil
	}
	// Epsilon guards against Log10 landing a hair past an exact decade.
	start := math.Ceil(math.Log10(lo) - 1e-9)
	end := math.Floor(math.Log10(hi) + 1e-9)
	ticks := []chart.Tick{}
	for e := start; e <= end; e++ {
		v := math.Pow(10, e)
		ticks = append(ticks, chart.Tick{Value: v, Label: formatTick(v)})
		if len(ticks) > 12 { // keep it readable
			break
		}
	}
	return ticks
}

// sizeTicks puts a tick at each benchmarked element count so every measured
// point lines up with a labeled gridline.
func sizeTicks(sizes []float64) []chart.Tick {
	ticks := make([]chart.Tick, 0, len(sizes))
	for _, s := range sizes {
		ticks = append(ticks, chart.Tick{Value: s, Label: strconv.Itoa(int(s))})
	}
	return ticks
}

func formatTick(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
