package echoapi

import (
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/unitrack/core/student"
)

// studentMiddleware loads the authenticated student into the context.
// It must run after the JWT middleware.
func studentMiddleware(svc *student.Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if _, err := getContextStudent(ctx, svc); err != nil {
				return errors.Wrap(err, "getting context student")
			}
			return next(ctx)
		}
	}
}
