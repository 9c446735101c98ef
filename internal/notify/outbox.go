package notify

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/authgate-server/internal/model"
)

// OutboxSender archives every mail as an .eml object in object storage
// where a separate relay picks it up.
type OutboxSender struct {
	storage model.Storage
	from    string
	now     func() time.Time
}

func NewOutboxSender(storage model.Storage, from string) *OutboxSender {
	return &OutboxSender{storage: storage, from: from, now: time.Now}
}

func (s *OutboxSender) Send(ctx context.Context, mail model.Mail) error {
	now := s.now().UTC()
	key := fmt.Sprintf("outbox/%s/%s-%s.eml", mail.Kind, now.Format("20060102T150405Z"), uuid.NewString())
	msg := compose(s.from, mail, now)

	if err := s.storage.Upload(ctx, key, bytes.NewReader(msg), int64(len(msg)), "message/rfc822"); err != nil {
		return fmt.Errorf("failed to upload mail: %w", err)
	}
	return nil
}
