package student

import (
	"net/mail"
	"time"

	"github.com/volatiletech/null/v8"

	"github.com/trezcool/unitrack/core"
	"github.com/trezcool/unitrack/core/chancing"
)

type Student struct {
	ID        string       `json:"id" db:"id"`
	Name      string       `json:"name" db:"name"`
	Email     string       `json:"email" db:"email"`
	GPA       null.Float64 `json:"gpa" db:"gpa"`
	SATScore  null.Int     `json:"sat_score" db:"sat_score"`
	ACTScore  null.Int     `json:"act_score" db:"act_score"`
	CreatedAt time.Time    `json:"created_at" db:"created_at"` // UTC
	UpdatedAt time.Time    `json:"updated_at" db:"updated_at"` // UTC
}

func (s Student) Profile() *chancing.StudentProfile {
	return &chancing.StudentProfile{
		GPA:      s.GPA,
		SATScore: s.SATScore,
		ACTScore: s.ACTScore,
	}
}

func (s Student) Address() mail.Address {
	return mail.Address{Name: s.Name, Address: s.Email}
}

type NewStudent struct {
	Name     string       `json:"name" validate:"required,notblank,max=255"`
	Email    string       `json:"email" validate:"required,email"`
	GPA      null.Float64 `json:"gpa" validate:"omitempty,gt=0,lte=5"`
	SATScore null.Int     `json:"sat_score" validate:"omitempty,gte=400,lte=1600"`
	ACTScore null.Int     `json:"act_score" validate:"omitempty,gte=1,lte=36"`
}

func (ns *NewStudent) clean() {
	ns.Name = core.CleanString(ns.Name)
	ns.Email = core.CleanString(ns.Email, true /* lower */)
}

// UpdateProfile replaces a student's academic profile.
// Omitted or null scores become unknown; an empty name keeps the current one.
type UpdateProfile struct {
	Name     string       `json:"name" validate:"omitempty,notblank,max=255"`
	GPA      null.Float64 `json:"gpa" validate:"omitempty,gt=0,lte=5"`
	SATScore null.Int     `json:"sat_score" validate:"omitempty,gte=400,lte=1600"`
	ACTScore null.Int     `json:"act_score" validate:"omitempty,gte=1,lte=36"`
}

func (up *UpdateProfile) clean() {
	up.Name = core.CleanString(up.Name)
}
