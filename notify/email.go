package notify

import (
	"bytes"
	"context"
	"html/template"
	"net/http"
	"time"

	"github.com/dan13ram/clpd-settlement/app"
	"github.com/dan13ram/clpd-settlement/common"
	"github.com/dan13ram/clpd-settlement/models"
	"github.com/pkg/errors"
)

type emailTemplate struct {
	subject string
	body    *template.Template
}

func newEmailTemplate(subject string, body string) emailTemplate {
	return emailTemplate{
		subject: subject,
		body:    template.Must(template.New(subject).Option("missingkey=zero").Parse(body)),
	}
}

var emailTemplates = map[string]emailTemplate{
	models.TemplateNewDeposit: newEmailTemplate(
		"We received your deposit request",
		`<p>Your deposit request <b>{{.deposit_id}}</b> for {{.amount}} CLP was received.</p>
<p>Please transfer the funds and upload the receipt so we can review it.</p>`,
	),
	models.TemplateDepositApproved: newEmailTemplate(
		"Your deposit was approved",
		`<p>Your deposit <b>{{.deposit_id}}</b> for {{.amount}} CLP was approved.</p>
<p>The tokens will be minted to <code>{{.address}}</code> shortly.</p>`,
	),
	models.TemplateDepositRejected: newEmailTemplate(
		"Your deposit was rejected",
		`<p>Your deposit <b>{{.deposit_id}}</b> for {{.amount}} CLP was rejected.</p>
<p>Reason: {{.reason}}</p>`,
	),
	models.TemplateBurnReceived: newEmailTemplate(
		"We received your redemption request",
		`<p>Your redemption request <b>{{.burn_id}}</b> for {{.amount}} CLP was received and is being processed.</p>`,
	),
	models.TemplateBurnCompleted: newEmailTemplate(
		"Your redemption was completed",
		`<p>Your redemption <b>{{.burn_id}}</b> for {{.amount}} CLP was completed.</p>
<p>Burn transaction: <code>{{.transaction_hash}}</code></p>`,
	),
	models.TemplateBurnRejected: newEmailTemplate(
		"Your redemption was rejected",
		`<p>Your redemption <b>{{.burn_id}}</b> for {{.amount}} CLP was rejected.</p>
<p>Reason: {{.reason}}</p>`,
	),
}

// RenderEmail returns the subject and html body for a user notification.
func RenderEmail(name string, data map[string]string) (string, string, error) {
	tmpl, ok := emailTemplates[name]
	if !ok {
		return "", "", errors.Wrapf(common.ErrValidation, "unknown email template %q", name)
	}

	var body bytes.Buffer
	if err := tmpl.body.Execute(&body, data); err != nil {
		return "", "", errors.Wrapf(common.ErrValidation, "render %s: %v", name, err)
	}
	return tmpl.subject, body.String(), nil
}

type emailMessage struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// EmailNotifier sends user notifications through a Resend compatible API.
type EmailNotifier struct {
	apiURL     string
	apiKey     string
	from       string
	httpClient *http.Client
}

func (e *EmailNotifier) Deliver(ctx context.Context, notification models.Notification) error {
	if notification.Email == "" {
		return errors.Wrap(common.ErrValidation, "notification has no recipient")
	}

	subject, html, err := RenderEmail(notification.Template, notification.TemplateData)
	if err != nil {
		return err
	}

	message := emailMessage{
		From:    e.from,
		To:      []string{notification.Email},
		Subject: subject,
		HTML:    html,
	}
	headers := map[string]string{"Authorization": "Bearer " + e.apiKey}
	return postJSON(ctx, e.httpClient, e.apiURL, headers, message)
}

func NewEmailNotifier(apiURL string, apiKey string, from string) *EmailNotifier {
	return &EmailNotifier{
		apiURL:     apiURL,
		apiKey:     apiKey,
		from:       from,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func NewEmailNotifierFromConfig() Notifier {
	if !app.Config.Email.Enabled {
		return nil
	}
	return NewEmailNotifier(app.Config.Email.APIURL, app.Config.Email.APIKey, app.Config.Email.From)
}
