package inmemdb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/unitrack/core"
	"github.com/trezcool/unitrack/core/college"
	"github.com/trezcool/unitrack/tests"
)

func collegeNames(colleges []college.College) []string {
	names := make([]string, 0, len(colleges))
	for _, c := range colleges {
		names = append(names, c.Name)
	}
	return names
}

func TestCollegeRepository_QueryColleges(t *testing.T) {
	repo := NewCollegeRepository(Open())
	testutil.CreateCollege(t, repo, "Yale University", "CT", 4.6, testutil.CollegeStats{AverageGPA: 3.95})
	testutil.CreateCollege(t, repo, "Boston University", "MA", .14, testutil.CollegeStats{AverageGPA: 3.7})
	testutil.CreateCollege(t, repo, "Amherst College", "MA", 7, testutil.CollegeStats{})

	tests := []struct {
		name      string
		filter    college.QueryFilter
		orderings []core.DBOrdering
		want      []string
	}{
		{
			name: "default by name",
			want: []string{"Amherst College", "Boston University", "Yale University"},
		},
		{
			name:      "fractions compare as percentages",
			orderings: []core.DBOrdering{{Field: "acceptance_rate", Ascending: true}},
			want:      []string{"Yale University", "Amherst College", "Boston University"},
		},
		{
			name:      "unknown gpa first",
			orderings: []core.DBOrdering{{Field: "average_gpa", Ascending: true}},
			want:      []string{"Amherst College", "Boston University", "Yale University"},
		},
		{
			name:      "state then name desc",
			orderings: []core.DBOrdering{{Field: "state", Ascending: true}, {Field: "name"}},
			want:      []string{"Yale University", "Boston University", "Amherst College"},
		},
		{
			name:   "filtered",
			filter: college.QueryFilter{State: "MA"},
			want:   []string{"Amherst College", "Boston University"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.QueryColleges(context.Background(), tt.filter, tt.orderings...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, collegeNames(got))
		})
	}
}

func TestCollegeRepository_GetCollegeByName(t *testing.T) {
	repo := NewCollegeRepository(Open())
	yale := testutil.CreateCollege(t, repo, "Yale University", "CT", 4.6, testutil.CollegeStats{})

	got, err := repo.GetCollegeByName(context.Background(), "yale university")
	if assert.NoError(t, err) {
		assert.Equal(t, yale.ID, got.ID)
	}

	_, err = repo.GetCollegeByName(context.Background(), "Yale")
	assert.Equal(t, college.ErrNotFound, err)
}
