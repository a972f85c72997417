package consensus

import "math"

/*
NormalizeScore maps a raw rating of unknown scale to a 0-100 integer.

The scale is guessed from the magnitude, first matching range wins:
  - (0,1]   -> fraction, x100
  - (1,5]   -> 5-point, x20
  - (1,10]  -> 10-point, x10
  - (10,100] -> already a percentage
  - <=0     -> 0

A value of exactly 1 is read as a full fraction and 10 as 100, not as the
bottom of the next scale up. That ambiguity is inherent to the heuristic;
the ordered checks just make it deterministic.

Returns ok=false when the sources carried no numeric rating at all.
*/
func NormalizeScore(raw *float64) (int, bool) {
	if raw == nil {
		return 0, false
	}
	num := *raw
	if math.IsNaN(num) || math.IsInf(num, 0) {
		return 0, false
	}

	switch {
	case num <= 0:
		return 0, true
	case num <= 1:
		return int(math.Round(num * 100)), true
	case num <= 5:
		return int(math.Round(num * 20)), true
	case num <= 10:
		return int(math.Round(num * 10)), true
	case num <= 100:
		return int(math.Round(num)), true
	default:
		// Out of every known scale; treat as garbage.
		return 0, true
	}
}
