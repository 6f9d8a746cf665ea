package echoapi

import (
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"

	"github.com/trezcool/unitrack/core"
	"github.com/trezcool/unitrack/core/student"
)

const (
	jwtContextKey     = "studentToken"
	contextStudentKey = "student"
	jwtAudience       = "Students"
)

// Claims represents the authorization claims transmitted via a JWT.
// The subject is the student ID.
type Claims struct {
	jwt.StandardClaims
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

type jwtAuth struct {
	config     middleware.JWTConfig
	issuer     string
	expiration time.Duration
}

func newJWTAuth(conf *core.Config) jwtAuth {
	return jwtAuth{
		config: middleware.JWTConfig{
			SigningKey:    []byte(conf.SecretKey),
			SigningMethod: middleware.AlgorithmHS256,
			ContextKey:    jwtContextKey,
			Claims:        new(Claims),
		},
		issuer:     conf.AppName,
		expiration: conf.Server.JWTExpirationDelta,
	}
}

func (a jwtAuth) studentClaims(stdt student.Student) *Claims {
	now := time.Now()
	return &Claims{
		StandardClaims: jwt.StandardClaims{
			Issuer:    a.issuer,
			Subject:   stdt.ID,
			Audience:  jwtAudience,
			ExpiresAt: now.Add(a.expiration).Unix(),
			IssuedAt:  now.Unix(),
		},
		Name:  stdt.Name,
		Email: stdt.Email,
	}
}

// GenerateToken generates a signed JWT token string for the student.
func GenerateToken(conf *core.Config, stdt student.Student) (string, error) {
	return newJWTAuth(conf).generateToken(stdt)
}

func (a jwtAuth) generateToken(stdt student.Student) (string, error) {
	method := jwt.GetSigningMethod(a.config.SigningMethod)
	token := jwt.NewWithClaims(method, a.studentClaims(stdt))

	ss, err := token.SignedString(a.config.SigningKey)
	if err != nil {
		return "", errors.Wrap(err, "signing token")
	}
	return ss, nil
}

func getContextClaims(ctx echo.Context) (Claims, error) {
	if token, ok := ctx.Get(jwtContextKey).(*jwt.Token); ok {
		if claims, ok := token.Claims.(*Claims); ok {
			return *claims, nil
		}
	}
	return Claims{}, errUnauthorized
}

func getContextStudent(ctx echo.Context, svc *student.Service) (student.Student, error) {
	if stdt, ok := ctx.Get(contextStudentKey).(student.Student); ok {
		return stdt, nil
	}

	claims, err := getContextClaims(ctx)
	if err != nil {
		return student.Student{}, errors.Wrap(err, "getting context claims")
	}

	stdt, err := svc.GetByID(ctx.Request().Context(), claims.Subject)
	if err != nil {
		if errors.Cause(err) == student.ErrNotFound {
			// the token outlived its student
			return student.Student{}, errUnauthorized
		}
		return student.Student{}, errors.Wrap(err, "finding student by ID")
	}
	ctx.Set(contextStudentKey, stdt)
	return stdt, nil
}
