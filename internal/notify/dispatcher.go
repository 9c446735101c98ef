// Package notify renders passcode mails and delivers them in the background.
package notify

import (
	"context"
	"sync"
	"time"

	"github.com/dtroode/authgate-server/internal/logger"
	"github.com/dtroode/authgate-server/internal/model"
)

// DefaultTimeout bounds a single delivery when none is configured.
const DefaultTimeout = 10 * time.Second

// Ensure Dispatcher implements the model.Notifier interface.
var _ model.Notifier = (*Dispatcher)(nil)

// Dispatcher sends every notice on its own goroutine. Delivery failures are
// logged and never reach the request that triggered them.
type Dispatcher struct {
	sender  model.MailSender
	params  MailParams
	timeout time.Duration
	wg      sync.WaitGroup
	logger  *logger.Logger
}

func NewDispatcher(sender model.MailSender, params MailParams, timeout time.Duration, logger *logger.Logger) *Dispatcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Dispatcher{
		sender:  sender,
		params:  params,
		timeout: timeout,
		logger:  logger,
	}
}

func (d *Dispatcher) Notify(notice model.Notice) {
	mail, err := Render(notice, d.params)
	if err != nil {
		d.logger.Error("Mail dispatcher: failed to render mail",
			"kind", notice.Kind,
			"to", notice.To,
			"error", err.Error())
		return
	}

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()

		if err := d.sender.Send(ctx, mail); err != nil {
			d.logger.Error("Mail dispatcher: failed to send mail",
				"kind", mail.Kind,
				"to", mail.To,
				"error", err.Error())
			return
		}
		d.logger.Debug("Mail dispatcher: mail sent",
			"kind", mail.Kind,
			"to", mail.To)
	}()
}

// Wait blocks until in-flight deliveries finish or ctx is done.
func (d *Dispatcher) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
