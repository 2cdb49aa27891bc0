package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/fridgechef/backend/internal/apperrors"
	"github.com/fridgechef/backend/internal/types"
)

// Session is the server-side record behind a session cookie. Deleting it
// revokes every copy of the token.
type Session struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// SessionStore persists sessions. The Redis implementation is used in
// production; tests substitute an in-memory one.
type SessionStore interface {
	Put(ctx context.Context, sess Session, ttl time.Duration) error
	Get(ctx context.Context, id uuid.UUID) (*Session, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// RedisSessionStore keeps sessions in Redis with a TTL.
type RedisSessionStore struct {
	client *redis.Client
}

func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{client: client}
}

func sessionKey(id uuid.UUID) string {
	return fmt.Sprintf("session:%s", id)
}

func (s *RedisSessionStore) Put(ctx context.Context, sess Session, ttl time.Duration) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := s.client.Set(ctx, sessionKey(sess.ID), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) Get(ctx context.Context, id uuid.UUID) (*Session, error) {
	data, err := s.client.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &sess, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, id uuid.UUID) error {
	return s.client.Del(ctx, sessionKey(id)).Err()
}

// SessionService issues and validates session tokens. The token itself is a
// signed JWT carrying the user and session ids; validity additionally
// requires the session record to still exist in the store, so logout is an
// actual revocation rather than a client-side convention.
type SessionService struct {
	store  SessionStore
	secret string
	ttl    time.Duration
}

func NewSessionService(store SessionStore, secret string, ttl time.Duration) *SessionService {
	return &SessionService{
		store:  store,
		secret: secret,
		ttl:    ttl,
	}
}

// Start creates a session for the user and returns the signed token.
func (s *SessionService) Start(ctx context.Context, userID uuid.UUID) (string, error) {
	sess := Session{
		ID:        uuid.New(),
		UserID:    userID,
		CreatedAt: time.Now(),
	}
	if err := s.store.Put(ctx, sess, s.ttl); err != nil {
		return "", err
	}

	claims := jwt.MapClaims{
		"user_id":    sess.UserID.String(),
		"session_id": sess.ID.String(),
		"exp":        time.Now().Add(s.ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// Validate parses the token and checks the session is still live. Every
// failure mode collapses to ErrUnauthenticated.
func (s *SessionService) Validate(ctx context.Context, tokenString string) (*types.TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.secret), nil
	})
	if err != nil || !token.Valid {
		return nil, apperrors.ErrUnauthenticated
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, apperrors.ErrUnauthenticated
	}

	userID, err := parseUUIDClaim(claims, "user_id")
	if err != nil {
		return nil, apperrors.ErrUnauthenticated
	}
	sessionID, err := parseUUIDClaim(claims, "session_id")
	if err != nil {
		return nil, apperrors.ErrUnauthenticated
	}

	sess, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess == nil || sess.UserID != userID {
		return nil, apperrors.ErrUnauthenticated
	}

	return &types.TokenClaims{UserID: userID, SessionID: sessionID}, nil
}

// End revokes a session.
func (s *SessionService) End(ctx context.Context, sessionID uuid.UUID) error {
	return s.store.Delete(ctx, sessionID)
}

// TTL returns the configured session lifetime.
func (s *SessionService) TTL() time.Duration {
	return s.ttl
}

func parseUUIDClaim(claims jwt.MapClaims, name string) (uuid.UUID, error) {
	raw, ok := claims[name].(string)
	if !ok {
		return uuid.Nil, fmt.Errorf("missing %s claim", name)
	}
	return uuid.Parse(raw)
}
