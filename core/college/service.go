package college

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/pmezard/go-difflib/difflib"

	"github.com/trezcool/unitrack/core"
)

var ErrNotFound = errors.New("college not found")

// minimum similarity for a name to show up in Search results
const searchMinRatio = .5

type (
	Repository interface {
		CreateCollege(ctx context.Context, c College) (College, error)
		UpdateCollege(ctx context.Context, c College) (College, error)
		GetCollegeByID(ctx context.Context, id string) (College, error)
		// GetCollegeByName does a case-insensitive exact match.
		GetCollegeByName(ctx context.Context, name string) (College, error)
		QueryColleges(ctx context.Context, filter QueryFilter, orderings ...core.DBOrdering) ([]College, error)
		DeleteCollegesByID(ctx context.Context, ids ...string) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ctx context.Context, nc NewCollege) (College, error) {
	now := time.Now().UTC()
	c := nc.college()
	c.ID = uuid.New().String()
	c.CreatedAt = now
	c.UpdatedAt = now
	return svc.repo.CreateCollege(ctx, c)
}

// Upsert updates the college holding the same name or creates it.
func (svc *Service) Upsert(ctx context.Context, nc NewCollege) (College, bool, error) {
	existing, err := svc.repo.GetCollegeByName(ctx, nc.Name)
	if err != nil {
		if errors.Cause(err) != ErrNotFound {
			return College{}, false, errors.Wrap(err, "finding college by name")
		}
		c, err := svc.Create(ctx, nc)
		return c, true, err
	}

	c := nc.college()
	c.ID = existing.ID
	c.CreatedAt = existing.CreatedAt
	c.UpdatedAt = time.Now().UTC()
	c, err = svc.repo.UpdateCollege(ctx, c)
	return c, false, err
}

func (svc *Service) GetByID(ctx context.Context, id string) (College, error) {
	return svc.repo.GetCollegeByID(ctx, id)
}

func (svc *Service) Query(ctx context.Context, filter QueryFilter, orderings ...core.DBOrdering) ([]College, error) {
	if err := core.CheckOrderings(orderings, OrderingFields...); err != nil {
		return nil, err
	}
	filter.Clean()
	return svc.repo.QueryColleges(ctx, filter, orderings...)
}

// Search ranks colleges by how close their name is to `name`.
// Names containing `name` come first; the rest must be similar enough.
func (svc *Service) Search(ctx context.Context, name string, limit int) ([]College, error) {
	name = core.CleanString(name, true /* lower */)
	if name == "" {
		return []College{}, nil
	}

	all, err := svc.repo.QueryColleges(ctx, QueryFilter{})
	if err != nil {
		return nil, errors.Wrap(err, "querying colleges")
	}

	type match struct {
		college College
		ratio   float64
	}
	matches := make([]match, 0, len(all))
	query := strings.Split(name, "")
	for _, c := range all {
		lname := strings.ToLower(c.Name)
		ratio := difflib.NewMatcher(query, strings.Split(lname, "")).Ratio()
		if strings.Contains(lname, name) {
			ratio += 1
		}
		if ratio >= searchMinRatio {
			matches = append(matches, match{college: c, ratio: ratio})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].ratio == matches[j].ratio {
			return matches[i].college.Name < matches[j].college.Name
		}
		return matches[i].ratio > matches[j].ratio
	})

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	colleges := make([]College, 0, len(matches))
	for _, m := range matches {
		colleges = append(colleges, m.college)
	}
	return colleges, nil
}

func (svc *Service) Delete(ctx context.Context, ids ...string) error {
	return svc.repo.DeleteCollegesByID(ctx, ids...)
}

func (nc NewCollege) college() College {
	return College{
		Name:           nc.Name,
		State:          nc.State,
		AcceptanceRate: nc.AcceptanceRate,
		AverageGPA:     nc.AverageGPA,
		SATP25:         nc.SATP25,
		SATP75:         nc.SATP75,
		ACTP25:         nc.ACTP25,
		ACTP75:         nc.ACTP75,
	}
}
