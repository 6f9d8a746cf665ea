package core

import (
	"bytes"
	"context"
	"embed"
	htmltmpl "html/template"
	"net/mail"
	"path"
	"sync"
	texttmpl "text/template"

	"github.com/pkg/errors"
)

const emailTemplatesDir = "templates/email"

//go:embed templates/email/*
var emailTemplatesFS embed.FS

var (
	templates    = make(map[string]*emailTemplate)
	templatesMu  sync.Mutex
	ErrNoContent = errors.New("email has no recipient or no content")
)

type (
	emailTemplate struct {
		text *texttmpl.Template
		html *htmltmpl.Template
	}

	EmailMessage struct {
		To      []mail.Address
		Subject string
		BodyStr string // simple text/plain, non-templated content

		// templated contents
		TemplateName string // without ext
		TemplateData interface{}
		TextContent  string
		HTMLContent  string
	}

	EmailContextData struct {
		AppName         string
		FrontendBaseURL string
		Data            interface{}
	}

	// EmailService is any service that can send emails
	EmailService interface {
		// SendMessages sends messages concurrently and waits for all of them.
		SendMessages(ctx context.Context, messages ...*EmailMessage) error
	}
)

// loadTemplate parses `<name>.txt` and `<name>.gohtml`, each on top of its `_base` layout.
func loadTemplate(name string) (*emailTemplate, error) {
	templatesMu.Lock()
	defer templatesMu.Unlock()

	if tmpl, ok := templates[name]; ok {
		return tmpl, nil
	}

	text, err := texttmpl.ParseFS(
		emailTemplatesFS,
		path.Join(emailTemplatesDir, "_base.txt"),
		path.Join(emailTemplatesDir, name+".txt"),
	)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s.txt", name)
	}
	html, err := htmltmpl.ParseFS(
		emailTemplatesFS,
		path.Join(emailTemplatesDir, "_base.gohtml"),
		path.Join(emailTemplatesDir, name+".gohtml"),
	)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s.gohtml", name)
	}

	tmpl := &emailTemplate{
		text: text.Option("missingkey=error"),
		html: html.Option("missingkey=error"),
	}
	templates[name] = tmpl
	return tmpl, nil
}

// Render fills TextContent and HTMLContent.
func (m *EmailMessage) Render(conf *Config) error {
	if m.BodyStr != "" {
		m.TextContent = m.BodyStr
	}
	if m.TemplateName == "" {
		return nil
	}

	tmpl, err := loadTemplate(m.TemplateName)
	if err != nil {
		return err
	}
	data := EmailContextData{
		AppName:         conf.AppName,
		FrontendBaseURL: conf.FrontendBaseURL,
		Data:            m.TemplateData,
	}

	var buff bytes.Buffer
	if err = tmpl.text.Execute(&buff, data); err != nil {
		return errors.Wrap(err, "rendering text")
	}
	m.TextContent = buff.String()

	buff.Reset()
	if err = tmpl.html.Execute(&buff, data); err != nil {
		return errors.Wrap(err, "rendering html")
	}
	m.HTMLContent = buff.String()
	return nil
}

func (m *EmailMessage) HasRecipients() bool { return len(m.To) > 0 }
func (m *EmailMessage) HasContent() bool    { return (m.TextContent != "") || (m.HTMLContent != "") }
