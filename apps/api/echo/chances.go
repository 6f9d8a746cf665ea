package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/unitrack/core/admissions"
	"github.com/trezcool/unitrack/core/chancing"
)

type chanceApi struct {
	svc      *admissions.Service
	validate *validator.Validate
}

func registerChanceAPI(g *echo.Group, svc *admissions.Service, validate *validator.Validate) {
	api := chanceApi{
		svc:      svc,
		validate: validate,
	}

	cg := g.Group("/chances")
	cg.POST("", api.estimate)
	cg.POST("/batch", api.batch)
}

// estimate is anonymous: the profile comes with the request and nothing is stored.
func (api *chanceApi) estimate(ctx echo.Context) error {
	var data ChanceRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to ChanceRequest")
	}
	if err := api.validate.Struct(data); err != nil {
		return err
	}

	if data.College != nil {
		res, err := api.svc.EstimateProfile(data.Student, data.College)
		if err != nil {
			return errors.Wrap(err, "estimating chance")
		}
		return ctx.JSON(http.StatusOK, res)
	}

	est, err := api.svc.EstimateCollege(ctx.Request().Context(), data.Student, data.CollegeID)
	if err != nil {
		return errors.Wrap(err, "estimating chance")
	}
	return ctx.JSON(http.StatusOK, est)
}

func (api *chanceApi) batch(ctx echo.Context) error {
	var data BatchChanceRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to BatchChanceRequest")
	}
	if err := api.validate.Struct(data); err != nil {
		return err
	}

	ests, err := api.svc.RankProfile(ctx.Request().Context(), data.Student, data.CollegeIDs...)
	if err != nil {
		return errors.Wrap(err, "ranking colleges")
	}
	return ctx.JSON(http.StatusOK, ests)
}

type (
	// ChanceRequest takes either inline college statistics or a stored college ID.
	ChanceRequest struct {
		Student   *chancing.StudentProfile `json:"student" validate:"required"`
		College   *chancing.CollegeRecord  `json:"college" validate:"required_without=CollegeID"`
		CollegeID string                   `json:"college_id" validate:"required_without=College"`
	}

	BatchChanceRequest struct {
		Student    *chancing.StudentProfile `json:"student" validate:"required"`
		CollegeIDs []string                 `json:"college_ids" validate:"required,min=1,max=100,dive,required"`
	}
)
