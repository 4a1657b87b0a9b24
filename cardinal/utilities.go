package cardinal

import (
	"fmt"
	"math/cmplx"

	"github.com/npillmayer/pathanim"
)

// Extend an array/slice of pairs to make room for index i.
// Will do nothing if the array is already large enough.
func extendC(arr []pathanim.Pair, i int, deflt pathanim.Pair) []pathanim.Pair {
	l := len(arr)
	if i >= l {
		arr = append(arr, make([]pathanim.Pair, i-l+1)...)
		for ; i >= l; i-- {
			arr[i] = deflt
		}
	}
	return arr
}

// Get a value from an array/slice if present, default value deflt otherwise.
func getC(arr []pathanim.Pair, i int, deflt pathanim.Pair) pathanim.Pair {
	if i < 0 || i >= len(arr) {
		return deflt
	}
	return arr[i]
}

func clampi(i, lo, hi int) int {
	if i < lo {
		return lo
	}
	if i > hi {
		return hi
	}
	return i
}

func ptstring(p pathanim.Pair, iscontrol bool) string {
	if cmplx.IsNaN(p.C()) {
		return "(<unknown>)"
	}
	if iscontrol {
		return fmt.Sprintf("(%.4f,%.4f)", round(p.X()), round(p.Y()))
	}
	return fmt.Sprintf("(%.4g,%.4g)", round(p.X()), round(p.Y()))
}

func round(x float64) float64 {
	if x >= 0 {
		return float64(int64(x*10000.0+0.5)) / 10000.0
	}
	return float64(int64(x*10000.0-0.5)) / 10000.0
}
