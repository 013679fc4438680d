package render

import (
	"math"
	"strconv"
)

// maxTickFactor bounds the tick count at this multiple of the target.
const maxTickFactor = 4

// niceTicks returns round tick positions covering [lo, hi], aiming for about
// target ticks. Steps are 1, 2 or 5 times a power of ten.
func niceTicks(lo, hi float64, target int) []float64 {
	if !(hi > lo) || math.IsInf(hi-lo, 0) || target < 1 {
		return nil
	}
	raw := (hi - lo) / float64(target)
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	step := mag
	for _, m := range []float64{1, 2, 5, 10} {
		if raw <= m*mag {
			step = m * mag
			break
		}
	}

	// Coordinates too large to resolve step get no ticks.
	if lo+step == lo || hi-step == hi {
		return nil
	}
	first := math.Ceil(lo / step)
	n := int(math.Floor(hi/step+1e-9) - first)
	if n < 0 {
		return nil
	}
	n = min(n, maxTickFactor*target)

	ticks := make([]float64, 0, n+1)
	for k := 0; k <= n; k++ {
		ticks = append(ticks, (first+float64(k))*step)
	}
	return ticks
}

// tickLabel formats a tick value compactly.
func tickLabel(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'g', 6, 64)
}
