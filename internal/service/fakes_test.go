package service

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/dtroode/authgate-server/internal/model"
)

type userTable struct {
	mu   sync.Mutex
	byID map[uuid.UUID]model.User
}

func newUserTable() *userTable {
	return &userTable{byID: make(map[uuid.UUID]model.User)}
}

func (s *userTable) GetByEmail(_ context.Context, email string) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return model.User{}, model.ErrNotFound
}

func (s *userTable) GetByID(_ context.Context, id uuid.UUID) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.byID[id]
	if !ok {
		return model.User{}, model.ErrNotFound
	}
	return u, nil
}

func (s *userTable) Create(_ context.Context, user model.User) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.byID {
		if u.Email == user.Email {
			return model.User{}, model.ErrEmailTaken
		}
	}
	s.byID[user.ID] = user
	return user, nil
}

func (s *userTable) SetVerified(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.byID[id]
	if !ok {
		return model.ErrNotFound
	}
	u.IsVerified = true
	s.byID[id] = u
	return nil
}

func (s *userTable) deactivate(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := s.byID[id]
	u.IsActive = false
	s.byID[id] = u
}

type profileTable struct {
	mu     sync.Mutex
	byUser map[uuid.UUID]model.Profile
}

func newProfileTable() *profileTable {
	return &profileTable{byUser: make(map[uuid.UUID]model.Profile)}
}

func (s *profileTable) GetByUserID(_ context.Context, userID uuid.UUID) (model.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.byUser[userID]
	if !ok {
		return model.Profile{}, model.ErrNotFound
	}
	return p, nil
}

func (s *profileTable) Create(_ context.Context, profile model.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byUser[profile.UserID]; !ok {
		s.byUser[profile.UserID] = profile
	}
	return nil
}

func (s *profileTable) Update(_ context.Context, profile model.Profile) (model.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byUser[profile.UserID]; !ok {
		return model.Profile{}, model.ErrNotFound
	}
	s.byUser[profile.UserID] = profile
	return profile, nil
}

// outbox records notices instead of sending them.
type outbox struct {
	mu      sync.Mutex
	notices []model.Notice
}

func (o *outbox) Notify(n model.Notice) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.notices = append(o.notices, n)
}

func (o *outbox) sent() []model.Notice {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]model.Notice(nil), o.notices...)
}
