package echoapi

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/trezcool/unitrack/core"
)

const (
	orderingParam = "ordering"
	collegeParam  = "college"
)

// Ordering binds `?ordering=name,-acceptance_rate`; a leading "-" sorts descending.
type Ordering struct {
	Orderings []core.DBOrdering
}

func (ord *Ordering) Bind(ctx echo.Context) {
	val := ctx.QueryParam(orderingParam)
	if val == "" {
		return
	}

	for _, field := range strings.Split(val, ",") {
		field = strings.TrimSpace(field)
		descending := strings.HasPrefix(field, "-")
		if descending {
			field = field[1:] // drop "-"
		}
		if field == "" {
			continue
		}
		ord.Orderings = append(ord.Orderings, core.DBOrdering{Field: field, Ascending: !descending})
	}
}

// bindCollegeIDs reads `?college=a&college=b` and `?college=a,b`.
func bindCollegeIDs(ctx echo.Context) []string {
	var ids []string
	for _, val := range ctx.QueryParams()[collegeParam] {
		for _, id := range strings.Split(val, ",") {
			if id = strings.TrimSpace(id); id != "" {
				ids = append(ids, id)
			}
		}
	}
	return ids
}
