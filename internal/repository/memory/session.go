package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/dtroode/authgate-server/internal/model"
)

var _ model.SessionRegistry = (*SessionRegistry)(nil)

// SessionRegistry keeps one record per user in a map. All operations hold
// the same mutex, which serializes check-then-create per user.
type SessionRegistry struct {
	mu      sync.RWMutex
	records map[uuid.UUID]model.SessionRecord
}

func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{records: make(map[uuid.UUID]model.SessionRecord)}
}

func (r *SessionRegistry) GetActive(ctx context.Context, userID uuid.UUID) (model.SessionRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.records[userID]
	if !ok {
		return model.SessionRecord{}, model.ErrNotFound
	}
	return rec, nil
}

func (r *SessionRegistry) Create(ctx context.Context, record model.SessionRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[record.UserID]; ok {
		return model.ErrSessionExists
	}
	r.records[record.UserID] = record
	return nil
}

func (r *SessionRegistry) Destroy(ctx context.Context, userID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.records, userID)
	return nil
}
