package types

import "github.com/google/uuid"

// TokenClaims is the decoded content of a session token.
type TokenClaims struct {
	UserID    uuid.UUID
	SessionID uuid.UUID
}
