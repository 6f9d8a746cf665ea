package college

import (
	"strings"
	"time"

	"github.com/volatiletech/null/v8"

	"github.com/trezcool/unitrack/core"
	"github.com/trezcool/unitrack/core/chancing"
)

// Allowed ordering fields
var OrderingFields = []string{"name", "state", "acceptance_rate", "average_gpa", "created_at"}

type College struct {
	ID             string       `json:"id" db:"id"`
	Name           string       `json:"name" db:"name"`
	State          string       `json:"state" db:"state"`
	AcceptanceRate float64      `json:"acceptance_rate" db:"acceptance_rate"`
	AverageGPA     null.Float64 `json:"average_gpa" db:"average_gpa"`
	SATP25         null.Int     `json:"sat_p25" db:"sat_p25"`
	SATP75         null.Int     `json:"sat_p75" db:"sat_p75"`
	ACTP25         null.Int     `json:"act_p25" db:"act_p25"`
	ACTP75         null.Int     `json:"act_p75" db:"act_p75"`
	CreatedAt      time.Time    `json:"created_at" db:"created_at"` // UTC
	UpdatedAt      time.Time    `json:"updated_at" db:"updated_at"` // UTC
}

// Record returns the admission statistics the chancing engine works with.
// A score range is only set when both of its percentiles are known.
func (c College) Record() *chancing.CollegeRecord {
	return &chancing.CollegeRecord{
		AcceptanceRate: c.AcceptanceRate,
		AverageGPA:     c.AverageGPA,
		SATRange:       scoreRange(c.SATP25, c.SATP75),
		ACTRange:       scoreRange(c.ACTP25, c.ACTP75),
	}
}

// AcceptanceRatePct is the acceptance rate as a percentage.
func (c College) AcceptanceRatePct() float64 {
	return chancing.NormalizeAcceptanceRate(c.AcceptanceRate)
}

func scoreRange(p25, p75 null.Int) *chancing.ScoreRange {
	if !p25.Valid || !p75.Valid {
		return nil
	}
	return &chancing.ScoreRange{P25: p25.Int, P75: p75.Int}
}

type NewCollege struct {
	Name           string       `json:"name" validate:"required,notblank,max=255"`
	State          string       `json:"state" validate:"omitempty,len=2,alpha"`
	AcceptanceRate float64      `json:"acceptance_rate" validate:"gt=0,lte=100"`
	AverageGPA     null.Float64 `json:"average_gpa" validate:"omitempty,gt=0,lte=5"`
	SATP25         null.Int     `json:"sat_p25" validate:"omitempty,gte=400,lte=1600"`
	SATP75         null.Int     `json:"sat_p75" validate:"omitempty,gte=400,lte=1600"`
	ACTP25         null.Int     `json:"act_p25" validate:"omitempty,gte=1,lte=36"`
	ACTP75         null.Int     `json:"act_p75" validate:"omitempty,gte=1,lte=36"`
}

func (nc *NewCollege) clean() {
	nc.Name = core.CleanString(nc.Name)
	nc.State = strings.ToUpper(core.CleanString(nc.State))
}

// QueryFilter applies AND on its set fields.
// Search does a case-insensitive match on the college name.
type QueryFilter struct {
	Search            string  `query:"search"`
	State             string  `query:"state"`
	MaxAcceptanceRate float64 `query:"max_acceptance_rate"` // percentage; 0 means unset
}

func (f *QueryFilter) Clean() {
	f.Search = core.CleanString(f.Search, true /* lower */)
	f.State = strings.ToUpper(core.CleanString(f.State))
	if f.MaxAcceptanceRate < 0 {
		f.MaxAcceptanceRate = 0
	}
}

// Match reports whether c passes the filter.
func (f QueryFilter) Match(c College) bool {
	if f.Search != "" && !strings.Contains(strings.ToLower(c.Name), f.Search) {
		return false
	}
	if f.State != "" && c.State != f.State {
		return false
	}
	if f.MaxAcceptanceRate > 0 && c.AcceptanceRatePct() > f.MaxAcceptanceRate {
		return false
	}
	return true
}
