package authctx

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/dtroode/authgate-server/internal/model"
)

func TestManager_SetAndGetIdentity(t *testing.T) {
	m := NewManager()
	identity := model.Identity{User: model.User{ID: uuid.New(), Email: "a@example.com"}, Token: "tok"}

	ctx := m.SetIdentityToContext(context.Background(), identity)

	got, ok := m.GetIdentityFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, identity, got)
}

func TestManager_GetIdentity_NotFound(t *testing.T) {
	m := NewManager()
	_, ok := m.GetIdentityFromContext(context.Background())
	assert.False(t, ok)
}

func TestManager_GetIdentity_ForeignValue(t *testing.T) {
	m := NewManager()
	ctx := context.WithValue(context.Background(), "identity", "not an identity")
	_, ok := m.GetIdentityFromContext(ctx)
	assert.False(t, ok)
}

func TestManager_OverwritesIdentity(t *testing.T) {
	m := NewManager()
	first := model.Identity{Token: "one"}
	second := model.Identity{Token: "two"}

	ctx := m.SetIdentityToContext(m.SetIdentityToContext(context.Background(), first), second)

	got, ok := m.GetIdentityFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "two", got.Token)
}
