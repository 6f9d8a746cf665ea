package admissions

import (
	"net/mail"

	"github.com/trezcool/unitrack/core"
	"github.com/trezcool/unitrack/core/student"
)

type reportEmailData struct {
	Name      string
	Estimates []Estimate
}

// NewReportEmail sends a student their ranked estimates.
func NewReportEmail(stdt student.Student, estimates []Estimate) *core.EmailMessage {
	return &core.EmailMessage{
		To:           []mail.Address{stdt.Address()},
		Subject:      "Your admission chances",
		TemplateName: "chance_report",
		TemplateData: reportEmailData{
			Name:      stdt.Name,
			Estimates: estimates,
		},
	}
}
