package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/unitrack/core"
	"github.com/trezcool/unitrack/core/admissions"
	"github.com/trezcool/unitrack/core/student"
)

type studentApi struct {
	svc           *student.Service
	admissionsSvc *admissions.Service
	mailSvc       core.EmailService
	auth          jwtAuth
	validate      *validator.Validate
}

func registerStudentAPI(
	g *echo.Group,
	jwt echo.MiddlewareFunc,
	auth jwtAuth,
	svc *student.Service,
	admissionsSvc *admissions.Service,
	mailSvc core.EmailService,
	validate *validator.Validate,
) {
	api := studentApi{
		svc:           svc,
		admissionsSvc: admissionsSvc,
		mailSvc:       mailSvc,
		auth:          auth,
		validate:      validate,
	}

	// authed endpoints
	mg := g.Group("/students/me", jwt, studentMiddleware(svc))
	mg.GET("", api.retrieve)
	mg.PUT("", api.update)
	mg.POST("/token-refresh", api.refreshToken)
	mg.GET("/chances", api.rank)
	mg.POST("/chances/email", api.emailReport)
	mg.GET("/chances/:college_id", api.estimate)
}

// Handlers

func (api *studentApi) retrieve(ctx echo.Context) error {
	stdt, err := getContextStudent(ctx, api.svc)
	if err != nil {
		return errors.Wrap(err, "getting context student")
	}
	return ctx.JSON(http.StatusOK, stdt)
}

func (api *studentApi) update(ctx echo.Context) error {
	stdt, err := getContextStudent(ctx, api.svc)
	if err != nil {
		return errors.Wrap(err, "getting context student")
	}

	var data student.UpdateProfile
	if err = ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateProfile")
	}
	if err = data.Validate(api.validate); err != nil {
		return err
	}

	stdt, err = api.svc.UpdateProfile(ctx.Request().Context(), stdt.ID, data)
	if err != nil {
		return errors.Wrap(err, "updating student profile")
	}
	return ctx.JSON(http.StatusOK, stdt)
}

func (api *studentApi) refreshToken(ctx echo.Context) error {
	stdt, err := getContextStudent(ctx, api.svc)
	if err != nil {
		return errors.Wrap(err, "getting context student")
	}
	token, err := api.auth.generateToken(stdt)
	if err != nil {
		return errors.Wrap(err, "generating token")
	}
	return ctx.JSON(http.StatusOK, TokenResponse{Token: token})
}

func (api *studentApi) rank(ctx echo.Context) error {
	stdt, err := getContextStudent(ctx, api.svc)
	if err != nil {
		return errors.Wrap(err, "getting context student")
	}

	ids := bindCollegeIDs(ctx)
	if len(ids) == 0 {
		return core.NewValidationError(nil, core.FieldError{Field: collegeParam, Error: "at least one college is required"})
	}

	ests, err := api.admissionsSvc.RankProfile(ctx.Request().Context(), stdt.Profile(), ids...)
	if err != nil {
		return errors.Wrap(err, "ranking colleges")
	}
	return ctx.JSON(http.StatusOK, ests)
}

// emailReport sends the ranking of `?college=...` to the student's email.
func (api *studentApi) emailReport(ctx echo.Context) error {
	stdt, err := getContextStudent(ctx, api.svc)
	if err != nil {
		return errors.Wrap(err, "getting context student")
	}

	ids := bindCollegeIDs(ctx)
	if len(ids) == 0 {
		return core.NewValidationError(nil, core.FieldError{Field: collegeParam, Error: "at least one college is required"})
	}

	reqCtx := ctx.Request().Context()
	ests, err := api.admissionsSvc.RankProfile(reqCtx, stdt.Profile(), ids...)
	if err != nil {
		return errors.Wrap(err, "ranking colleges")
	}
	if err = api.mailSvc.SendMessages(reqCtx, admissions.NewReportEmail(stdt, ests)); err != nil {
		return errors.Wrap(err, "sending report")
	}
	return ctx.JSON(http.StatusOK, echo.Map{"message": "report sent to " + stdt.Email})
}

func (api *studentApi) estimate(ctx echo.Context) error {
	stdt, err := getContextStudent(ctx, api.svc)
	if err != nil {
		return errors.Wrap(err, "getting context student")
	}

	est, err := api.admissionsSvc.EstimateCollege(ctx.Request().Context(), stdt.Profile(), ctx.Param("college_id"))
	if err != nil {
		return errors.Wrap(err, "estimating chance")
	}
	return ctx.JSON(http.StatusOK, est)
}

type TokenResponse struct {
	Token string `json:"token"`
}
