package notify

import (
	"bytes"
	"fmt"
	"text/template"
	"time"

	"github.com/dtroode/authgate-server/internal/model"
)

// MailParams is passed as data when executing a mail template.
type MailParams struct {
	Email      string
	SiteName   string
	Code       string
	Validity   time.Duration
	SenderName string
}

const verifyEmailTemplate = `Hi {{.Email}},

Thanks for signing up to {{.SiteName}}. Use this code to verify your email address:

{{.Code}}
{{if .Validity}}
The code is valid for {{printf "%.f" .Validity.Minutes}} minutes.
{{end}}
If you did not create an account, you can ignore this email.

Regards,

{{.SenderName}}
`

const loginOTPTemplate = `Hi {{.Email}},

This is your one-time code to sign in to {{.SiteName}}:

{{.Code}}
{{if .Validity}}
The code is valid for {{printf "%.f" .Validity.Minutes}} minutes.
{{end}}
If you did not try to sign in, you can ignore this email.

Regards,

{{.SenderName}}
`

type mailTemplate struct {
	subject string
	body    *template.Template
}

var templates = map[model.MailKind]mailTemplate{
	model.MailKindVerifyEmail: {
		subject: "Verify your email",
		body:    template.Must(template.New(string(model.MailKindVerifyEmail)).Parse(verifyEmailTemplate)),
	},
	model.MailKindLoginOTP: {
		subject: "OTP for login",
		body:    template.Must(template.New(string(model.MailKindLoginOTP)).Parse(loginOTPTemplate)),
	},
}

// Render builds the mail for notice.
func Render(notice model.Notice, params MailParams) (model.Mail, error) {
	tmpl, ok := templates[notice.Kind]
	if !ok {
		return model.Mail{}, fmt.Errorf("unknown mail kind %q", notice.Kind)
	}

	params.Email = notice.To
	params.Code = notice.Code

	var body bytes.Buffer
	if err := tmpl.body.Execute(&body, params); err != nil {
		return model.Mail{}, fmt.Errorf("failed to execute %s template: %w", notice.Kind, err)
	}

	subject := tmpl.subject
	if params.SiteName != "" {
		subject = params.SiteName + ": " + subject
	}

	return model.Mail{
		Kind:    notice.Kind,
		To:      notice.To,
		Subject: subject,
		Body:    body.String(),
	}, nil
}
