package chancing

import "github.com/volatiletech/null/v8"

type (
	Category string
	Position string
	Metric   string
)

const (
	CategorySafety Category = "Safety"
	CategoryTarget Category = "Target"
	CategoryReach  Category = "Reach"
)

// Positions of a student metric relative to a college's range.
const (
	PositionAbove75th   Position = "above_75th"
	PositionCompetitive Position = "competitive"
	PositionBelowAvg    Position = "below_avg"
	PositionBelow25th   Position = "below_25th"
	PositionUnknown     Position = "unknown"
)

const (
	MetricGPA Metric = "GPA"
	MetricSAT Metric = "SAT"
	MetricACT Metric = "ACT"
)

// StudentProfile is the academic profile of a student.
// Unset fields are unknown, never zero.
type StudentProfile struct {
	GPA      null.Float64 `json:"gpa"`
	SATScore null.Int     `json:"sat_score"`
	ACTScore null.Int     `json:"act_score"`
}

type ScoreRange struct {
	P25 int `json:"p25"`
	P75 int `json:"p75"`
}

// CollegeRecord holds the admission statistics of a college.
// AcceptanceRate is either a fraction (<= 1) or a percentage.
// The validate tags apply when a record comes from a request.
type CollegeRecord struct {
	AcceptanceRate float64      `json:"acceptance_rate" validate:"required,gt=0,lte=100"`
	AverageGPA     null.Float64 `json:"average_gpa"`
	SATRange       *ScoreRange  `json:"sat_range"`
	ACTRange       *ScoreRange  `json:"act_range"`
}

type Factor struct {
	Name     string `json:"name"`
	Impact   string `json:"impact"`
	Detail   string `json:"detail"`
	Positive bool   `json:"positive"`
}

type Result struct {
	Chance         int      `json:"chance"`
	Category       Category `json:"category"`
	Factors        []Factor `json:"factors"`
	Recommendation string   `json:"recommendation"`
}

// FactorScore is the 0-100 score of one metric and where it sits in the college's range.
type FactorScore struct {
	Score    float64
	Position Position
}
