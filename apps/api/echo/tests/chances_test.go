package tests

import (
	"context"
	"net/http"
	"testing"

	"github.com/volatiletech/null/v8"

	. "github.com/trezcool/unitrack/apps/api/echo"
	"github.com/trezcool/unitrack/core/admissions"
	"github.com/trezcool/unitrack/core/chancing"
	"github.com/trezcool/unitrack/tests"
)

func Test_chanceApi_estimate(t *testing.T) {
	db.Reset()

	harvard := testutil.CreateCollege(t, clgRepo, "Harvard University", "MA", 3.4, testutil.CollegeStats{
		AverageGPA: 3.9,
		SATP25:     1480,
		SATP75:     1580,
		ACTP25:     33,
		ACTP75:     35,
	})

	profile := &chancing.StudentProfile{GPA: null.Float64From(3.9), SATScore: null.IntFrom(1500)}
	inline := &chancing.CollegeRecord{
		AcceptanceRate: .55,
		AverageGPA:     null.Float64From(3.4),
		SATRange:       &chancing.ScoreRange{P25: 1100, P75: 1300},
	}

	inlineRes, err := admissionsSvc.EstimateProfile(profile, inline)
	if err != nil {
		t.Fatalf("EstimateProfile() failed: %v", err)
	}
	harvardEst, err := admissionsSvc.EstimateCollege(context.Background(), profile, harvard.ID)
	if err != nil {
		t.Fatalf("EstimateCollege() failed: %v", err)
	}

	tests := []httpTest{
		{
			name: "empty body", body: []byte(`{}`), wantCode: http.StatusBadRequest,
			wantData: marshalObj(t, map[string]string{
				"student":    "this field is required",
				"college":    "this field is required",
				"college_id": "this field is required",
			}),
		},
		{
			name: "no college", body: marshalObj(t, ChanceRequest{Student: profile}), wantCode: http.StatusBadRequest,
			wantData: marshalObj(t, map[string]string{
				"college":    "this field is required",
				"college_id": "this field is required",
			}),
		},
		{
			name: "unknown college", body: marshalObj(t, ChanceRequest{Student: profile, CollegeID: "lol"}),
			wantCode: http.StatusNotFound, wantData: marshalObj(t, httpErr{Error: "college not found"}),
		},
		{
			name: "inline college without rate", body: []byte(`{"student": {"gpa": 4.0}, "college": {}}`),
			wantCode: http.StatusBadRequest,
			wantData: marshalObj(t, map[string]string{"acceptance_rate": "this field is required"}),
		},
		{
			name: "inline college with negative rate", body: []byte(`{"student": {"gpa": 4.0}, "college": {"acceptance_rate": -20}}`),
			wantCode: http.StatusBadRequest,
			wantData: marshalObj(t, map[string]string{"acceptance_rate": "acceptance_rate must be greater than 0"}),
		},
		{
			name: "inline college with rate above 100", body: []byte(`{"student": {"gpa": 4.0}, "college": {"acceptance_rate": 250}}`),
			wantCode: http.StatusBadRequest,
			wantData: marshalObj(t, map[string]string{"acceptance_rate": "acceptance_rate must be 100 or less"}),
		},
		{
			name: "inline college", body: marshalObj(t, ChanceRequest{Student: profile, College: inline}),
			wantData: marshalObj(t, inlineRes),
		},
		{
			name: "inline college wins over college_id",
			body: marshalObj(t, ChanceRequest{Student: profile, College: inline, CollegeID: harvard.ID}),
			wantData: marshalObj(t, inlineRes),
		},
		{
			name: "stored college", body: marshalObj(t, ChanceRequest{Student: profile, CollegeID: harvard.ID}),
			wantData: marshalObj(t, harvardEst),
		},
		{
			name: "empty profile", body: []byte(`{"student": {}, "college": {"acceptance_rate": 50}}`),
			wantData: marshalObj(t, mustEstimateProfile(t, &chancing.StudentProfile{}, &chancing.CollegeRecord{AcceptanceRate: 50})),
		},
	}

	for i := range tests {
		tests[i].method = http.MethodPost
		tests[i].path = "/v1/chances"
	}
	runHTTPTests(t, tests)
}

func Test_chanceApi_batch(t *testing.T) {
	db.Reset()

	elite := testutil.CreateCollege(t, clgRepo, "Elite", "MA", 4, testutil.CollegeStats{AverageGPA: 3.95, SATP25: 1500, SATP75: 1580})
	moderate := testutil.CreateCollege(t, clgRepo, "Moderate", "OH", 45, testutil.CollegeStats{AverageGPA: 3.5, SATP25: 1200, SATP75: 1400})
	open := testutil.CreateCollege(t, clgRepo, "Open", "TX", 85, testutil.CollegeStats{AverageGPA: 3.1, SATP25: 1000, SATP75: 1200})

	profile := &chancing.StudentProfile{GPA: null.Float64From(3.6), SATScore: null.IntFrom(1350)}
	ranking, err := admissionsSvc.RankProfile(context.Background(), profile, elite.ID, moderate.ID, open.ID)
	if err != nil {
		t.Fatalf("RankProfile() failed: %v", err)
	}
	if ranking[0].CollegeID != open.ID || ranking[2].CollegeID != elite.ID {
		t.Fatalf("RankProfile() = %v; want Open first and Elite last", ranking)
	}

	tests := []httpTest{
		{
			name: "empty body", body: []byte(`{}`), wantCode: http.StatusBadRequest,
			wantData: marshalObj(t, map[string]string{
				"student":     "this field is required",
				"college_ids": "this field is required",
			}),
		},
		{
			name: "unknown college", body: marshalObj(t, BatchChanceRequest{Student: profile, CollegeIDs: []string{open.ID, "lol"}}),
			wantCode: http.StatusNotFound, wantData: marshalObj(t, httpErr{Error: "college not found"}),
		},
		{
			name: "ranked by chance", body: marshalObj(t, BatchChanceRequest{Student: profile, CollegeIDs: []string{elite.ID, open.ID, moderate.ID}}),
			wantData: estimateList(t, ranking),
		},
		{
			name: "duplicates are estimated once",
			body: marshalObj(t, BatchChanceRequest{Student: profile, CollegeIDs: []string{open.ID, elite.ID, open.ID, moderate.ID}}),
			wantData: estimateList(t, ranking),
		},
	}

	for i := range tests {
		tests[i].method = http.MethodPost
		tests[i].path = "/v1/chances/batch"
	}
	runHTTPTests(t, tests)
}

func mustEstimateProfile(t *testing.T, profile *chancing.StudentProfile, record *chancing.CollegeRecord) chancing.Result {
	res, err := admissionsSvc.EstimateProfile(profile, record)
	if err != nil {
		t.Fatalf("EstimateProfile() failed: %v", err)
	}
	return res
}

func estimateList(t *testing.T, ests []admissions.Estimate) []byte {
	list := make([]interface{}, 0, len(ests))
	for _, est := range ests {
		list = append(list, est)
	}
	return marshalList(t, list...)
}
