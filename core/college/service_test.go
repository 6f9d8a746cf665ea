package college_test

import (
	"context"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/unitrack/core"
	"github.com/trezcool/unitrack/core/chancing"
	"github.com/trezcool/unitrack/core/college"
	"github.com/trezcool/unitrack/storage/database/inmem"
	"github.com/trezcool/unitrack/tests"
)

func setup(t *testing.T) (*college.Service, college.Repository) {
	t.Helper()
	repo := inmemdb.NewCollegeRepository(inmemdb.Open())
	return college.NewService(repo), repo
}

func names(colleges []college.College) []string {
	nms := make([]string, 0, len(colleges))
	for _, c := range colleges {
		nms = append(nms, c.Name)
	}
	return nms
}

func TestCollege_Record(t *testing.T) {
	c := college.College{
		AcceptanceRate: 0.12,
		AverageGPA:     null.Float64From(3.7),
		SATP25:         null.IntFrom(1300),
		SATP75:         null.IntFrom(1480),
		ACTP25:         null.IntFrom(29), // p75 unknown
	}
	rec := c.Record()
	assert.Equal(t, 0.12, rec.AcceptanceRate)
	assert.Equal(t, null.Float64From(3.7), rec.AverageGPA)
	assert.Equal(t, &chancing.ScoreRange{P25: 1300, P75: 1480}, rec.SATRange)
	assert.Nil(t, rec.ACTRange)
	assert.InDelta(t, 12, c.AcceptanceRatePct(), 1e-9)
}

func TestNewCollege_Validate(t *testing.T) {
	validate := validator.New()
	translator := core.NewTranslator()
	core.InitValidators(validate, translator)
	college.InitValidators(validate, translator)

	valid := func() college.NewCollege {
		return college.NewCollege{
			Name:           "  Test University ",
			State:          " ca",
			AcceptanceRate: 42,
			AverageGPA:     null.Float64From(3.6),
			SATP25:         null.IntFrom(1200),
			SATP75:         null.IntFrom(1400),
		}
	}

	tests := []struct {
		name       string
		mutate     func(nc *college.NewCollege)
		wantFields map[string]string
	}{
		{name: "valid", mutate: func(nc *college.NewCollege) {}},
		{name: "fractional rate", mutate: func(nc *college.NewCollege) { nc.AcceptanceRate = 0.42 }},
		{name: "unknown stats", mutate: func(nc *college.NewCollege) {
			nc.AverageGPA, nc.SATP25, nc.SATP75 = null.Float64{}, null.Int{}, null.Int{}
		}},
		{
			name:       "blank name",
			mutate:     func(nc *college.NewCollege) { nc.Name = "   " },
			wantFields: map[string]string{"name": "this field is required"},
		},
		{
			name:       "zero rate",
			mutate:     func(nc *college.NewCollege) { nc.AcceptanceRate = 0 },
			wantFields: map[string]string{"acceptance_rate": "acceptance_rate must be greater than 0"},
		},
		{
			name:       "rate above 100",
			mutate:     func(nc *college.NewCollege) { nc.AcceptanceRate = 101 },
			wantFields: map[string]string{"acceptance_rate": "acceptance_rate must be 100 or less"},
		},
		{
			name:       "gpa out of range",
			mutate:     func(nc *college.NewCollege) { nc.AverageGPA = null.Float64From(6) },
			wantFields: map[string]string{"average_gpa": "average_gpa must be 5 or less"},
		},
		{
			name:       "sat out of range",
			mutate:     func(nc *college.NewCollege) { nc.SATP75 = null.IntFrom(1700) },
			wantFields: map[string]string{"sat_p75": "sat_p75 must be 1,600 or less"},
		},
		{
			name: "inverted act percentiles",
			mutate: func(nc *college.NewCollege) {
				nc.ACTP25, nc.ACTP75 = null.IntFrom(30), null.IntFrom(24)
			},
			wantFields: map[string]string{"act_p75": "the 75th percentile cannot be lower than the 25th"},
		},
		{
			name:       "bad state",
			mutate:     func(nc *college.NewCollege) { nc.State = "cal" },
			wantFields: map[string]string{"state": "state must be 2 characters in length"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nc := valid()
			tt.mutate(&nc)
			err := nc.Validate(validate)
			if tt.wantFields == nil {
				require.NoError(t, err)
				assert.Equal(t, "Test University", nc.Name)
				assert.Equal(t, "CA", nc.State)
				return
			}
			var vErrs validator.ValidationErrors
			require.True(t, errors.As(err, &vErrs), "want validator.ValidationErrors, got %v", err)
			assert.Equal(t, tt.wantFields, core.TranslateErrors(vErrs, translator))
		})
	}
}

func TestService_Create_Upsert(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, college.NewCollege{Name: "Alpha College", AcceptanceRate: 30})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	updated, isNew, err := svc.Upsert(ctx, college.NewCollege{Name: "alpha college", AcceptanceRate: 28, SATP25: null.IntFrom(1250)})
	require.NoError(t, err)
	assert.False(t, isNew)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Equal(t, 28.0, updated.AcceptanceRate)
	assert.Equal(t, null.IntFrom(1250), updated.SATP25)

	other, isNew, err := svc.Upsert(ctx, college.NewCollege{Name: "Beta College", AcceptanceRate: 50})
	require.NoError(t, err)
	assert.True(t, isNew)
	assert.NotEqual(t, created.ID, other.ID)

	_, err = svc.GetByID(ctx, "unknown")
	assert.Equal(t, college.ErrNotFound, errors.Cause(err))

	require.NoError(t, svc.Delete(ctx, created.ID))
	_, err = svc.GetByID(ctx, created.ID)
	assert.Equal(t, college.ErrNotFound, errors.Cause(err))
}

func TestService_Query(t *testing.T) {
	svc, repo := setup(t)
	ctx := context.Background()
	now := time.Now()

	stanford := testutil.CreateCollege(t, repo, "Stanford University", "CA", 0.04, testutil.CollegeStats{AverageGPA: 3.96}, now.Add(3*time.Hour))
	ucla := testutil.CreateCollege(t, repo, "University of California, Los Angeles", "CA", 9, testutil.CollegeStats{AverageGPA: 3.9}, now.Add(2*time.Hour))
	asu := testutil.CreateCollege(t, repo, "Arizona State University", "AZ", 88, testutil.CollegeStats{}, now.Add(time.Hour))
	ohio := testutil.CreateCollege(t, repo, "Ohio State University", "OH", 0.53, testutil.CollegeStats{AverageGPA: 3.8}, now)

	tests := []struct {
		name      string
		filter    college.QueryFilter
		orderings []core.DBOrdering
		want      []college.College
		wantErr   bool
	}{
		{name: "all, by name", want: []college.College{asu, ohio, stanford, ucla}},
		{name: "search", filter: college.QueryFilter{Search: " STATE "}, want: []college.College{asu, ohio}},
		{name: "state", filter: college.QueryFilter{State: "ca"}, want: []college.College{stanford, ucla}},
		{name: "max rate mixes fractions", filter: college.QueryFilter{MaxAcceptanceRate: 10}, want: []college.College{stanford, ucla}},
		{name: "no match", filter: college.QueryFilter{Search: "lol"}, want: []college.College{}},
		{
			name:      "by -acceptance_rate",
			orderings: []core.DBOrdering{{Field: "acceptance_rate"}},
			want:      []college.College{asu, ohio, ucla, stanford},
		},
		{
			name:      "by average_gpa, unknown first",
			orderings: []core.DBOrdering{{Field: "average_gpa", Ascending: true}},
			want:      []college.College{asu, ohio, ucla, stanford},
		},
		{
			name:      "by state,-created_at",
			orderings: []core.DBOrdering{{Field: "state", Ascending: true}, {Field: "created_at"}},
			want:      []college.College{asu, stanford, ucla, ohio},
		},
		{name: "unknown ordering", orderings: []core.DBOrdering{{Field: "lol"}}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Query(ctx, tt.filter, tt.orderings...)
			if tt.wantErr {
				var vErr *core.ValidationError
				require.True(t, errors.As(err, &vErr))
				assert.Equal(t, core.ErrInvalidOrdering, vErr.Err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, names(tt.want), names(got))
		})
	}
}

func TestService_Search(t *testing.T) {
	svc, repo := setup(t)
	ctx := context.Background()

	testutil.CreateCollege(t, repo, "Harvard University", "MA", 3.4, testutil.CollegeStats{})
	testutil.CreateCollege(t, repo, "Harvey Mudd College", "CA", 13, testutil.CollegeStats{})
	testutil.CreateCollege(t, repo, "Yale University", "CT", 4.6, testutil.CollegeStats{})

	tests := []struct {
		name  string
		query string
		limit int
		want  []string
	}{
		{name: "empty", query: "  ", want: []string{}},
		{name: "substrings", query: "harv", want: []string{"Harvard University", "Harvey Mudd College"}},
		{name: "typo", query: "Havard University", want: []string{"Harvard University", "Yale University"}},
		{name: "limit", query: "university", limit: 1, want: []string{"Yale University"}},
		{name: "nothing close", query: "zzzzzzzz", want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Search(ctx, tt.query, tt.limit)
			require.NoError(t, err)
			assert.Equal(t, tt.want, names(got))
		})
	}
}
