package student

import (
	"fmt"
	"net/mail"
	"time"

	"github.com/trezcool/unitrack/core"
)

type tokenEmailData struct {
	Name      string
	Token     string
	ExpiresIn string
}

// NewTokenEmail delivers an API token to its student.
func NewTokenEmail(s Student, token string, expiresIn time.Duration) *core.EmailMessage {
	return &core.EmailMessage{
		To:           []mail.Address{s.Address()},
		Subject:      "Your API token",
		TemplateName: "student_token",
		TemplateData: tokenEmailData{
			Name:      s.Name,
			Token:     token,
			ExpiresIn: humanizeDuration(expiresIn),
		},
	}
}

func humanizeDuration(d time.Duration) string {
	const day = 24 * time.Hour
	switch {
	case d == day:
		return "1 day"
	case d > day && d%day == 0:
		return fmt.Sprintf("%d days", d/day)
	}
	return d.String()
}
