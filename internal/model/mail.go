package model

import "context"

// MailKind tells which notification a message carries.
type MailKind string

const (
	MailKindVerifyEmail MailKind = "verify_email"
	MailKindLoginOTP    MailKind = "login_otp"
)

// Mail is a rendered notification ready for delivery.
type Mail struct {
	Kind    MailKind
	To      string
	Subject string
	Body    string
}

// MailSender delivers a single rendered message.
type MailSender interface {
	Send(ctx context.Context, mail Mail) error
}

// Notice asks for a passcode notification to be rendered and delivered.
type Notice struct {
	Kind MailKind
	To   string
	Code string
}

// Notifier queues notices for delivery without blocking the caller.
type Notifier interface {
	Notify(notice Notice)
}
