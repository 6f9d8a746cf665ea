package inmemdb

import (
	"context"
	"sort"
	"strings"

	"github.com/trezcool/unitrack/core"
	"github.com/trezcool/unitrack/core/college"
)

type collegeRepository struct {
	db *collegeTable
}

var _ college.Repository = (*collegeRepository)(nil)

func NewCollegeRepository(db *DB) college.Repository {
	return &collegeRepository{db: db.college}
}

func (repo *collegeRepository) CreateCollege(_ context.Context, c college.College) (college.College, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.table[c.ID] = &c
	return c, nil
}

func (repo *collegeRepository) UpdateCollege(_ context.Context, c college.College) (college.College, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.table[c.ID]; !ok {
		return college.College{}, college.ErrNotFound
	}
	repo.db.table[c.ID] = &c
	return c, nil
}

func (repo *collegeRepository) GetCollegeByID(_ context.Context, id string) (college.College, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if c, ok := repo.db.table[id]; ok {
		return *c, nil
	}
	return college.College{}, college.ErrNotFound
}

func (repo *collegeRepository) GetCollegeByName(_ context.Context, name string) (college.College, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	for _, c := range repo.db.table {
		if strings.EqualFold(c.Name, name) {
			return *c, nil
		}
	}
	return college.College{}, college.ErrNotFound
}

func (repo *collegeRepository) QueryColleges(
	_ context.Context,
	filter college.QueryFilter,
	orderings ...core.DBOrdering,
) ([]college.College, error) {
	repo.db.RLock()
	colleges := make([]college.College, 0, len(repo.db.table))
	for _, c := range repo.db.table {
		if filter.Match(*c) {
			colleges = append(colleges, *c)
		}
	}
	repo.db.RUnlock()

	if len(orderings) == 0 {
		orderings = []core.DBOrdering{{Field: "name", Ascending: true}}
	}
	sort.SliceStable(colleges, func(i, j int) bool {
		for _, ord := range orderings {
			cmp := compareColleges(colleges[i], colleges[j], ord.Field)
			if cmp == 0 {
				continue
			}
			if ord.Ascending {
				return cmp < 0
			}
			return cmp > 0
		}
		return colleges[i].ID < colleges[j].ID
	})
	return colleges, nil
}

func (repo *collegeRepository) DeleteCollegesByID(_ context.Context, ids ...string) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	for _, id := range ids {
		delete(repo.db.table, id)
	}
	return nil
}

// compareColleges returns -1, 0 or 1. Unknown values sort first.
func compareColleges(a, b college.College, field string) int {
	switch field {
	case "name":
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	case "state":
		return strings.Compare(a.State, b.State)
	case "acceptance_rate":
		return compareFloats(a.AcceptanceRatePct(), b.AcceptanceRatePct())
	case "average_gpa":
		if a.AverageGPA.Valid != b.AverageGPA.Valid {
			if a.AverageGPA.Valid {
				return 1
			}
			return -1
		}
		return compareFloats(a.AverageGPA.Float64, b.AverageGPA.Float64)
	case "created_at":
		switch {
		case a.CreatedAt.Before(b.CreatedAt):
			return -1
		case a.CreatedAt.After(b.CreatedAt):
			return 1
		}
	}
	return 0
}

func compareFloats(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
