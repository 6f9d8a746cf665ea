// Package admissions computes admission chances for stored students and colleges.
package admissions

import (
	"context"
	"sort"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/trezcool/unitrack/core"
	"github.com/trezcool/unitrack/core/chancing"
	"github.com/trezcool/unitrack/core/college"
	"github.com/trezcool/unitrack/core/student"
)

var ErrNotComputable = errors.New("chance cannot be computed")

// max number of colleges estimated concurrently by Rank
const maxConcurrency = 8

type (
	CollegeGetter interface {
		GetByID(ctx context.Context, id string) (college.College, error)
	}

	StudentGetter interface {
		GetByID(ctx context.Context, id string) (student.Student, error)
	}

	// Estimate is the chance of getting into one college.
	Estimate struct {
		CollegeID   string `json:"college_id"`
		CollegeName string `json:"college_name"`
		chancing.Result
	}

	Service struct {
		engine   *chancing.Engine
		colleges CollegeGetter
		students StudentGetter
	}
)

// NewEngine returns the default engine with the college defaults from conf.
func NewEngine(conf *core.Config) *chancing.Engine {
	return chancing.NewDefaultEngine(chancing.Defaults{
		AverageGPA: conf.Chancing.DefaultAverageGPA,
		SATRange: chancing.ScoreRange{
			P25: conf.Chancing.DefaultSATRange.P25,
			P75: conf.Chancing.DefaultSATRange.P75,
		},
		ACTRange: chancing.ScoreRange{
			P25: conf.Chancing.DefaultACTRange.P25,
			P75: conf.Chancing.DefaultACTRange.P75,
		},
	})
}

func NewService(engine *chancing.Engine, colleges CollegeGetter, students StudentGetter) *Service {
	return &Service{
		engine:   engine,
		colleges: colleges,
		students: students,
	}
}

// EstimateProfile estimates a chance without touching storage.
func (svc *Service) EstimateProfile(profile *chancing.StudentProfile, record *chancing.CollegeRecord) (chancing.Result, error) {
	res := svc.engine.Estimate(profile, record)
	if res == nil {
		return chancing.Result{}, ErrNotComputable
	}
	return *res, nil
}

func (svc *Service) Estimate(ctx context.Context, studentID, collegeID string) (Estimate, error) {
	stdt, err := svc.students.GetByID(ctx, studentID)
	if err != nil {
		return Estimate{}, errors.Wrap(err, "finding student by ID")
	}
	return svc.EstimateCollege(ctx, stdt.Profile(), collegeID)
}

// Rank estimates the student's chance at every college, highest chance first.
// Ties are broken by college name.
func (svc *Service) Rank(ctx context.Context, studentID string, collegeIDs ...string) ([]Estimate, error) {
	stdt, err := svc.students.GetByID(ctx, studentID)
	if err != nil {
		return nil, errors.Wrap(err, "finding student by ID")
	}
	return svc.RankProfile(ctx, stdt.Profile(), collegeIDs...)
}

// RankProfile is Rank for a profile that is not stored.
func (svc *Service) RankProfile(ctx context.Context, profile *chancing.StudentProfile, collegeIDs ...string) ([]Estimate, error) {
	collegeIDs = unique(collegeIDs)
	estimates := make([]Estimate, len(collegeIDs))

	g, gctx := errgroup.WithContext(ctx)
	sem := make(chan struct{}, maxConcurrency)
	for i, id := range collegeIDs {
		i, id := i, id
		g.Go(func() error {
			select {
			case sem <- struct{}{}:
			case <-gctx.Done():
				return gctx.Err()
			}
			defer func() { <-sem }()

			est, err := svc.EstimateCollege(gctx, profile, id)
			if err != nil {
				return err
			}
			estimates[i] = est
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	SortEstimates(estimates)
	return estimates, nil
}

// EstimateCollege estimates the profile's chance at a stored college.
func (svc *Service) EstimateCollege(ctx context.Context, profile *chancing.StudentProfile, collegeID string) (Estimate, error) {
	clg, err := svc.colleges.GetByID(ctx, collegeID)
	if err != nil {
		return Estimate{}, errors.Wrap(err, "finding college by ID")
	}
	res, err := svc.EstimateProfile(profile, clg.Record())
	if err != nil {
		return Estimate{}, errors.Wrapf(err, "estimating college %s", clg.ID)
	}
	return Estimate{CollegeID: clg.ID, CollegeName: clg.Name, Result: res}, nil
}

// SortEstimates orders by chance descending, then by college name.
func SortEstimates(estimates []Estimate) {
	sort.SliceStable(estimates, func(i, j int) bool {
		if estimates[i].Chance == estimates[j].Chance {
			return estimates[i].CollegeName < estimates[j].CollegeName
		}
		return estimates[i].Chance > estimates[j].Chance
	})
}

func unique(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	uniq := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		uniq = append(uniq, id)
	}
	return uniq
}
