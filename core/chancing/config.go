package chancing

import "math"

// Tier names
const (
	TierHighlySelective = "highly_selective"
	TierVerySelective   = "very_selective"
	TierSelective       = "selective"
	TierModerate        = "moderate"
	TierLessSelective   = "less_selective"
	TierOpen            = "open"
)

type RecommendationKey string

const (
	RecHighlySelectiveStrong RecommendationKey = "highly_selective_strong"
	RecHighlySelective       RecommendationKey = "highly_selective"
	RecSelectiveTarget       RecommendationKey = "selective_target"
	RecSelectiveReach        RecommendationKey = "selective_reach"
	RecSafety                RecommendationKey = "safety"
	RecLikely                RecommendationKey = "likely"
	RecTarget                RecommendationKey = "target"
	RecReach                 RecommendationKey = "reach"
)

type (
	// Tier bounds the chance range of colleges whose acceptance rate is <= MaxRate.
	Tier struct {
		Name      string
		MaxRate   float64
		MinChance float64
		MaxChance float64
	}

	// TierCap is an absolute ceiling on the chance for one tier.
	// AddFactor appends the Selectivity factor when the tier is hit.
	TierCap struct {
		Tier      string
		MaxChance float64
		AddFactor bool
	}

	Weights struct {
		GPA      float64
		SAT      float64
		ACT      float64
		Holistic float64
	}

	FactorTemplate struct {
		Impact   string
		Positive bool
		Detail   string // fmt: student value, college range
	}

	// Defaults are substituted for missing college statistics.
	Defaults struct {
		AverageGPA float64
		SATRange   ScoreRange
		ACTRange   ScoreRange
	}

	ClassifierConfig struct {
		ReachOnlyRate     float64
		StrongReachChance int

		SelectiveRate   float64
		SelectiveTarget int

		ModerateRate   float64
		ModerateSafety int
		ModerateTarget int

		OpenSafety int
		OpenTarget int

		Recommendations map[RecommendationKey]string
	}

	Config struct {
		Weights       Weights
		NeutralScore  float64
		HolisticScore float64
		GPABelowAvg   float64 // GPA range low = avg - GPABelowAvg
		GPAAboveAvg   float64 // GPA range high = avg + GPAAboveAvg
		MinChance     float64
		MaxChance     float64

		Tiers []Tier
		Caps  []TierCap

		Factors           map[Metric]map[Position]FactorTemplate
		SelectivityName   string
		SelectivityFactor FactorTemplate
		Defaults          Defaults
		Classifier        ClassifierConfig
	}
)

func DefaultDefaults() Defaults {
	return Defaults{
		AverageGPA: 3.5,
		SATRange:   ScoreRange{P25: 1200, P75: 1400},
		ACTRange:   ScoreRange{P25: 25, P75: 32},
	}
}

func DefaultTiers() []Tier {
	return []Tier{
		{Name: TierHighlySelective, MaxRate: 10, MinChance: 2, MaxChance: 20},
		{Name: TierVerySelective, MaxRate: 20, MinChance: 5, MaxChance: 35},
		{Name: TierSelective, MaxRate: 35, MinChance: 10, MaxChance: 55},
		{Name: TierModerate, MaxRate: 50, MinChance: 20, MaxChance: 70},
		{Name: TierLessSelective, MaxRate: 70, MinChance: 35, MaxChance: 85},
		{Name: TierOpen, MaxRate: math.Inf(1), MinChance: 50, MaxChance: 95},
	}
}

func DefaultFactorTemplates() map[Metric]map[Position]FactorTemplate {
	return map[Metric]map[Position]FactorTemplate{
		MetricGPA: {
			PositionAbove75th:   {Impact: "Strong", Positive: true, Detail: "Your GPA of %s is above the typical range for admitted students (%s)"},
			PositionCompetitive: {Impact: "Competitive", Positive: true, Detail: "Your GPA of %s is competitive for this college (%s)"},
			PositionBelowAvg:    {Impact: "Below Avg", Positive: false, Detail: "Your GPA of %s is below the college average (%s)"},
			PositionBelow25th:   {Impact: "Low", Positive: false, Detail: "Your GPA of %s is well below the typical range (%s)"},
		},
		MetricSAT: {
			PositionAbove75th:   {Impact: "Strong", Positive: true, Detail: "Your SAT score of %s is above the 75th percentile (%s)"},
			PositionCompetitive: {Impact: "Competitive", Positive: true, Detail: "Your SAT score of %s is in the upper half of the middle 50%% (%s)"},
			PositionBelowAvg:    {Impact: "Below Avg", Positive: false, Detail: "Your SAT score of %s is in the lower half of the middle 50%% (%s)"},
			PositionBelow25th:   {Impact: "Low", Positive: false, Detail: "Your SAT score of %s is below the 25th percentile (%s)"},
		},
		// ACT carries no below_avg entry.
		MetricACT: {
			PositionAbove75th:   {Impact: "Strong", Positive: true, Detail: "Your ACT score of %s is above the 75th percentile (%s)"},
			PositionCompetitive: {Impact: "Competitive", Positive: true, Detail: "Your ACT score of %s is in the upper half of the middle 50%% (%s)"},
			PositionBelow25th:   {Impact: "Low", Positive: false, Detail: "Your ACT score of %s is below the 25th percentile (%s)"},
		},
	}
}

func DefaultRecommendations() map[RecommendationKey]string {
	return map[RecommendationKey]string{
		RecHighlySelectiveStrong: "This school is very competitive. Your stats are strong, but admission is uncertain for every applicant.",
		RecHighlySelective:       "This school is highly competitive. Strengthen your essays and extracurriculars to stand out.",
		RecSelectiveTarget:       "Your profile is competitive here. A strong application could earn you a spot.",
		RecSelectiveReach:        "Admission here is a stretch. Apply, but balance your list with more likely options.",
		RecSafety:                "Your academics are well above this school's typical admit. This is a solid safety choice.",
		RecLikely:                "You are very likely to be admitted. Consider it a safety school.",
		RecTarget:                "Your profile matches this school's typical admit. This is a good target school.",
		RecReach:                 "Your stats are below this school's typical admit. Treat it as a reach.",
	}
}

func DefaultClassifierConfig() ClassifierConfig {
	return ClassifierConfig{
		ReachOnlyRate:     15,
		StrongReachChance: 15,
		SelectiveRate:     30,
		SelectiveTarget:   35,
		ModerateRate:      50,
		ModerateSafety:    55,
		ModerateTarget:    35,
		OpenSafety:        65,
		OpenTarget:        45,
		Recommendations:   DefaultRecommendations(),
	}
}

// DefaultConfig returns the weights, tables and templates of the chancing heuristic.
func DefaultConfig() Config {
	return Config{
		Weights:       Weights{GPA: 0.35, SAT: 0.30, ACT: 0.15, Holistic: 0.20},
		NeutralScore:  50,
		HolisticScore: 50,
		GPABelowAvg:   0.4,
		GPAAboveAvg:   0.2,
		MinChance:     2,
		MaxChance:     95,
		Tiers:         DefaultTiers(),
		Caps: []TierCap{
			{Tier: TierHighlySelective, MaxChance: 18, AddFactor: true},
			{Tier: TierVerySelective, MaxChance: 30},
		},
		Factors:           DefaultFactorTemplates(),
		SelectivityName:   "Selectivity",
		SelectivityFactor: FactorTemplate{Impact: "Very High", Positive: false, Detail: "Only %s of applicants are admitted"},
		Defaults:          DefaultDefaults(),
		Classifier:        DefaultClassifierConfig(),
	}
}
