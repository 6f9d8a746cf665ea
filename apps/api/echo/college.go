package echoapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/unitrack/core"
	"github.com/trezcool/unitrack/core/college"
)

const defaultSearchLimit = 10

type collegeApi struct {
	svc *college.Service
}

func registerCollegeAPI(g *echo.Group, svc *college.Service) {
	api := collegeApi{svc: svc}

	cg := g.Group("/colleges")
	cg.GET("", api.query)
	cg.GET("/search", api.search)
	cg.GET("/:id", api.retrieve)
}

func (api *collegeApi) query(ctx echo.Context) error {
	filter := new(college.QueryFilter)
	if err := ctx.Bind(filter); err != nil {
		return errors.Wrap(err, "binding to QueryFilter")
	}
	ordering := new(Ordering)
	ordering.Bind(ctx)

	colleges, err := api.svc.Query(ctx.Request().Context(), *filter, ordering.Orderings...)
	if err != nil {
		return errors.Wrap(err, "querying colleges")
	}
	if colleges == nil {
		colleges = []college.College{}
	}
	return ctx.JSON(http.StatusOK, colleges)
}

func (api *collegeApi) search(ctx echo.Context) error {
	limit := defaultSearchLimit
	if val := ctx.QueryParam("limit"); val != "" {
		l, err := strconv.Atoi(val)
		if err != nil || l < 1 {
			return core.NewValidationError(nil, core.FieldError{Field: "limit", Error: "limit must be a positive integer"})
		}
		limit = l
	}

	colleges, err := api.svc.Search(ctx.Request().Context(), ctx.QueryParam("name"), limit)
	if err != nil {
		return errors.Wrap(err, "searching colleges")
	}
	return ctx.JSON(http.StatusOK, colleges)
}

func (api *collegeApi) retrieve(ctx echo.Context) error {
	c, err := api.svc.GetByID(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "finding college by ID")
	}
	return ctx.JSON(http.StatusOK, c)
}
