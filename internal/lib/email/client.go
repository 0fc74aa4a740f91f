// Package email provides the outbound email client.
//
// It sends through Resend and renders HTML bodies from templates
// embedded in the binary. With no API key configured the client is
// disabled and sends become logged no-ops.
package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/medialogapp/medialog-server/internal/config"

	"github.com/pkg/errors"
	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"
)

//go:embed templates/*.html
var templates embed.FS

// DefaultFrom is used when integration.email_from is not configured.
const DefaultFrom = "MediaLog <onboarding@resend.dev>"

// Client wraps the Resend client and a logger.
type Client struct {
	client *resend.Client
	from   string
	logger *zerolog.Logger
}

// NewClient creates an email Client from config. A nil inner client
// (no API key) disables sending.
func NewClient(cfg *config.Config, logger *zerolog.Logger) *Client {
	var client *resend.Client
	if cfg.Integration.ResendAPIKey != "" {
		client = resend.NewClient(cfg.Integration.ResendAPIKey)
	}

	from := cfg.Integration.EmailFrom
	if from == "" {
		from = DefaultFrom
	}

	return &Client{
		client: client,
		from:   from,
		logger: logger,
	}
}

// SendEmail renders the named template with data and sends it to the
// recipient through Resend.
func (c *Client) SendEmail(to, subject string, templateName Template, data map[string]string) error {
	if c.client == nil {
		c.logger.Info().
			Str("to", to).
			Str("template", string(templateName)).
			Msg("email sending disabled, skipping")
		return nil
	}

	tmpl, err := template.ParseFS(templates, fmt.Sprintf("templates/%s.html", templateName))
	if err != nil {
		return errors.Wrapf(err, "failed to parse email template %s", templateName)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return errors.Wrapf(err, "failed to execute email template %s", templateName)
	}

	params := &resend.SendEmailRequest{
		From:    c.from,
		To:      []string{to},
		Subject: subject,
		Html:    body.String(),
	}

	if _, err := c.client.Emails.Send(params); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
