package tests

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/trezcool/unitrack/tests"
)

func Test_collegeApi_query(t *testing.T) {
	db.Reset()

	path := func(params ...string) string {
		v := make(url.Values)
		for i := 0; i+1 < len(params); i += 2 {
			v.Add(params[i], params[i+1])
		}
		return "/v1/colleges?" + v.Encode()
	}

	harvard := testutil.CreateCollege(t, clgRepo, "Harvard University", "MA", 3.4, testutil.CollegeStats{AverageGPA: 3.9})
	mit := testutil.CreateCollege(t, clgRepo, "Massachusetts Institute of Technology", "MA", 4, testutil.CollegeStats{AverageGPA: 3.95})
	ucla := testutil.CreateCollege(t, clgRepo, "University of California, Los Angeles", "CA", 9, testutil.CollegeStats{})
	asu := testutil.CreateCollege(t, clgRepo, "Arizona State University", "AZ", .88, testutil.CollegeStats{AverageGPA: 3.5})

	empty := marshalList(t)

	tests := []httpTest{
		{name: "Get all", path: "/v1/colleges", wantData: marshalList(t, asu, harvard, mit, ucla)},
		{name: "trailing slash", path: "/v1/colleges/", wantData: marshalList(t, asu, harvard, mit, ucla)},
		// filtering
		{name: "search (unknown)", path: path("search", "lol"), wantData: empty},
		{name: "search=UNIV", path: path("search", "UNIV"), wantData: marshalList(t, asu, harvard, ucla)},
		{name: "state=ma", path: path("state", "ma"), wantData: marshalList(t, harvard, mit)},
		{name: "max_acceptance_rate=5", path: path("max_acceptance_rate", "5"), wantData: marshalList(t, harvard, mit)},
		{
			name: "fractional rates filter as percentages", path: path("max_acceptance_rate", "90"),
			wantData: marshalList(t, asu, harvard, mit, ucla),
		},
		{name: "all combo", path: path("search", "tech", "state", "MA", "max_acceptance_rate", "5"), wantData: marshalList(t, mit)},
		// ordering
		{
			name: "order by -acceptance_rate", path: path("ordering", "-acceptance_rate"),
			wantData: marshalList(t, asu, ucla, mit, harvard),
		},
		{
			name: "order by average_gpa (unknown first)", path: path("ordering", "average_gpa"),
			wantData: marshalList(t, ucla, asu, harvard, mit),
		},
		{
			name: "order by state,-name", path: path("ordering", "state,-name"),
			wantData: marshalList(t, asu, ucla, mit, harvard),
		},
		{
			name: "invalid ordering", path: path("ordering", "-lol"), wantCode: http.StatusBadRequest,
			wantData: marshalObj(t, map[string]string{"ordering": "cannot order by lol"}),
		},
	}

	runHTTPTests(t, tests)
}

func Test_collegeApi_search(t *testing.T) {
	db.Reset()

	harvard := testutil.CreateCollege(t, clgRepo, "Harvard University", "MA", 3.4, testutil.CollegeStats{})
	harvey := testutil.CreateCollege(t, clgRepo, "Harvey Mudd College", "CA", 13, testutil.CollegeStats{})
	yale := testutil.CreateCollege(t, clgRepo, "Yale University", "CT", 4.6, testutil.CollegeStats{})

	tests := []httpTest{
		{name: "empty name", path: "/v1/colleges/search", wantData: marshalList(t)},
		{name: "no match", path: "/v1/colleges/search?name=zzz", wantData: marshalList(t)},
		{name: "prefix", path: "/v1/colleges/search?name=harv", wantData: marshalList(t, harvard, harvey)},
		{name: "typo", path: "/v1/colleges/search?name=Havard%20University", wantData: marshalList(t, harvard, yale)},
		{name: "limit", path: "/v1/colleges/search?name=harv&limit=1", wantData: marshalList(t, harvard)},
		{
			name: "invalid limit", path: "/v1/colleges/search?name=harv&limit=-1", wantCode: http.StatusBadRequest,
			wantData: marshalObj(t, map[string]string{"limit": "limit must be a positive integer"}),
		},
	}

	runHTTPTests(t, tests)
}

func Test_collegeApi_retrieve(t *testing.T) {
	db.Reset()

	harvard := testutil.CreateCollege(t, clgRepo, "Harvard University", "MA", 3.4, testutil.CollegeStats{
		AverageGPA: 3.9,
		SATP25:     1480,
		SATP75:     1580,
		ACTP25:     33,
		ACTP75:     35,
	})

	tests := []httpTest{
		{name: "found", path: "/v1/colleges/" + harvard.ID, wantData: marshalObj(t, harvard)},
		{
			name: "not found", path: "/v1/colleges/lol", wantCode: http.StatusNotFound,
			wantData: marshalObj(t, httpErr{Error: "college not found"}),
		},
	}

	runHTTPTests(t, tests)
}
