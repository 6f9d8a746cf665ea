package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/unitrack/core/college"
	"github.com/trezcool/unitrack/core/student"
)

// CollegeStats are the optional statistics of a test college.
type CollegeStats struct {
	AverageGPA     float64
	SATP25, SATP75 int
	ACTP25, ACTP75 int
}

func CreateCollege(
	t *testing.T,
	repo college.Repository,
	name, state string,
	acceptanceRate float64,
	stats CollegeStats,
	createdAt ...time.Time,
) college.College {
	tstamp := time.Now().UTC()
	if len(createdAt) > 0 {
		tstamp = createdAt[0].UTC()
	}
	c := college.College{
		ID:             uuid.New().String(),
		Name:           name,
		State:          state,
		AcceptanceRate: acceptanceRate,
		AverageGPA:     null.NewFloat64(stats.AverageGPA, stats.AverageGPA > 0),
		SATP25:         null.NewInt(stats.SATP25, stats.SATP25 > 0),
		SATP75:         null.NewInt(stats.SATP75, stats.SATP75 > 0),
		ACTP25:         null.NewInt(stats.ACTP25, stats.ACTP25 > 0),
		ACTP75:         null.NewInt(stats.ACTP75, stats.ACTP75 > 0),
		CreatedAt:      tstamp,
		UpdatedAt:      tstamp,
	}
	c, err := repo.CreateCollege(context.Background(), c)
	if err != nil {
		t.Fatalf("CreateCollege() failed: %v", err)
	}
	return c
}

// CreateStudent creates a student; zero scores are left unknown.
func CreateStudent(
	t *testing.T,
	repo student.Repository,
	name, email string,
	gpa float64,
	sat, act int,
) student.Student {
	now := time.Now().UTC()
	s := student.Student{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     email,
		GPA:       null.NewFloat64(gpa, gpa > 0),
		SATScore:  null.NewInt(sat, sat > 0),
		ACTScore:  null.NewInt(act, act > 0),
		CreatedAt: now,
		UpdatedAt: now,
	}
	s, err := repo.CreateStudent(context.Background(), s)
	if err != nil {
		t.Fatalf("CreateStudent() failed: %v", err)
	}
	return s
}
