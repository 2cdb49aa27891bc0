package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fridgechef/backend/internal/apperrors"
)

func TestSessionRoundTrip(t *testing.T) {
	svc := newTestSessions()
	userID := uuid.New()

	token, err := svc.Start(context.Background(), userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Validate(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.NotEqual(t, uuid.Nil, claims.SessionID)
}

func TestSessionRevocation(t *testing.T) {
	svc := newTestSessions()

	token, err := svc.Start(context.Background(), uuid.New())
	require.NoError(t, err)

	claims, err := svc.Validate(context.Background(), token)
	require.NoError(t, err)

	require.NoError(t, svc.End(context.Background(), claims.SessionID))

	// The signed token is still syntactically valid but the session is gone.
	_, err = svc.Validate(context.Background(), token)
	assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
}

func TestSessionInvalidToken(t *testing.T) {
	svc := newTestSessions()

	_, err := svc.Validate(context.Background(), "not.a.token")
	assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
}

func TestSessionWrongSecret(t *testing.T) {
	store := newMemStore()
	issuer := NewSessionService(store, "secret-a", time.Hour)
	verifier := NewSessionService(store, "secret-b", time.Hour)

	token, err := issuer.Start(context.Background(), uuid.New())
	require.NoError(t, err)

	_, err = verifier.Validate(context.Background(), token)
	assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
}
