package chancing

import (
	"math"

	"github.com/volatiletech/null/v8"
)

const neutralScore = 50

// ScoreFactor scores a student metric against a college's [low, high] range on a 0-100 scale.
// avg anchors the score of 50; it defaults to the midpoint of the range.
//
//   - absent or non-positive value: 50, unknown
//   - high <= low: 50, positioned against the collapsed range
//   - value >= high: 75 plus a bonus capped at 20
//   - value >= avg:  50 to 75
//   - value >= low:  25 to 50
//   - value < low:   25 minus a steep penalty, floored at 0
func ScoreFactor(value null.Float64, low, high float64, avg null.Float64) FactorScore {
	if !value.Valid || value.Float64 <= 0 || math.IsNaN(value.Float64) {
		return FactorScore{Score: neutralScore, Position: PositionUnknown}
	}
	v := value.Float64

	// degenerate range: nothing to interpolate over, the score stays neutral
	if high <= low {
		return FactorScore{Score: neutralScore, Position: degeneratePosition(v, low, high)}
	}

	mid := (low + high) / 2
	if avg.Valid {
		mid = avg.Float64
	}

	switch {
	case v >= high:
		excess := (v - high) / (high - low)
		return FactorScore{Score: 75 + math.Min(20, excess*10), Position: PositionAbove75th}
	case v >= mid:
		return FactorScore{Score: clampScore(50 + ((v-mid)/(high-mid))*25), Position: PositionCompetitive}
	case v >= low:
		return FactorScore{Score: clampScore(25 + ((v-low)/(mid-low))*25), Position: PositionBelowAvg}
	default: // v > 0, so low > 0
		deficit := (low - v) / low
		return FactorScore{Score: math.Max(0, 25-deficit*30), Position: PositionBelow25th}
	}
}

// degeneratePosition places v against a collapsed range.
// An inverted range carries no usable position.
func degeneratePosition(v, low, high float64) Position {
	switch {
	case high < low:
		return PositionUnknown
	case v > high:
		return PositionAbove75th
	case v < low:
		return PositionBelow25th
	default:
		return PositionCompetitive
	}
}

func clampScore(s float64) float64 {
	return math.Max(0, math.Min(100, s))
}
