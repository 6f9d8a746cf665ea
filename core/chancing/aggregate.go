package chancing

import (
	"fmt"
	"math"
	"strings"

	"github.com/volatiletech/null/v8"
)

type metricInput struct {
	metric    Metric
	weight    float64
	value     null.Float64
	display   string
	low       float64
	high      float64
	avg       null.Float64
	rangeText string
}

func (c Config) metricInputs(student StudentProfile, college CollegeRecord) []metricInput {
	avgGPA := c.Defaults.AverageGPA
	if college.AverageGPA.Valid && college.AverageGPA.Float64 > 0 {
		avgGPA = college.AverageGPA.Float64
	}
	sat := c.Defaults.SATRange
	if college.SATRange != nil {
		sat = *college.SATRange
	}
	act := c.Defaults.ACTRange
	if college.ACTRange != nil {
		act = *college.ACTRange
	}

	return []metricInput{
		{
			metric:    MetricGPA,
			weight:    c.Weights.GPA,
			value:     student.GPA,
			display:   fmt.Sprintf("%.2f", student.GPA.Float64),
			low:       avgGPA - c.GPABelowAvg,
			high:      avgGPA + c.GPAAboveAvg,
			avg:       null.Float64From(avgGPA),
			rangeText: fmt.Sprintf("average %.2f", avgGPA),
		},
		{
			metric:    MetricSAT,
			weight:    c.Weights.SAT,
			value:     intToFloat(student.SATScore),
			display:   fmt.Sprintf("%d", student.SATScore.Int),
			low:       float64(sat.P25),
			high:      float64(sat.P75),
			rangeText: fmt.Sprintf("middle 50%%: %d-%d", sat.P25, sat.P75),
		},
		{
			metric:    MetricACT,
			weight:    c.Weights.ACT,
			value:     intToFloat(student.ACTScore),
			display:   fmt.Sprintf("%d", student.ACTScore.Int),
			low:       float64(act.P25),
			high:      float64(act.P75),
			rangeText: fmt.Sprintf("middle 50%%: %d-%d", act.P25, act.P75),
		},
	}
}

// Aggregate combines the weighted metric scores into a chance bounded by the college's tier.
// Missing metrics keep their weight with a neutral score; the holistic part is always neutral.
func (c Config) Aggregate(student StudentProfile, college CollegeRecord, ratePct float64) (int, []Factor) {
	var weightedScore, totalWeight float64
	factors := make([]Factor, 0, 4)

	for _, in := range c.metricInputs(student, college) {
		fs := ScoreFactor(in.value, in.low, in.high, in.avg)
		if fs.Position == PositionUnknown {
			weightedScore += c.NeutralScore * in.weight
		} else {
			weightedScore += fs.Score * in.weight
		}
		totalWeight += in.weight

		if tmpl, ok := c.Factors[in.metric][fs.Position]; ok && fs.Position != PositionUnknown {
			factors = append(factors, Factor{
				Name:     string(in.metric),
				Impact:   tmpl.Impact,
				Detail:   fmt.Sprintf(tmpl.Detail, in.display, in.rangeText),
				Positive: tmpl.Positive,
			})
		}
	}

	weightedScore += c.HolisticScore * c.Weights.Holistic
	totalWeight += c.Weights.Holistic

	normalizedScore := c.NeutralScore
	if totalWeight > 0 {
		normalizedScore = weightedScore / totalWeight
	}

	tier := c.ResolveTier(ratePct)
	rawChance := tier.MinChance + (normalizedScore/100)*(tier.MaxChance-tier.MinChance)

	for _, cp := range c.Caps {
		if cp.Tier != tier.Name {
			continue
		}
		rawChance = math.Min(rawChance, cp.MaxChance)
		if cp.AddFactor {
			factors = append(factors, Factor{
				Name:     c.SelectivityName,
				Impact:   c.SelectivityFactor.Impact,
				Detail:   fmt.Sprintf(c.SelectivityFactor.Detail, formatRate(ratePct)),
				Positive: c.SelectivityFactor.Positive,
			})
		}
	}

	rawChance = math.Max(c.MinChance, math.Min(c.MaxChance, rawChance))
	return int(math.Round(rawChance)), factors
}

func intToFloat(v null.Int) null.Float64 {
	return null.NewFloat64(float64(v.Int), v.Valid)
}

func formatRate(pct float64) string {
	return strings.TrimSuffix(fmt.Sprintf("%.1f", pct), ".0") + "%"
}
