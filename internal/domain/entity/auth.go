// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProviderTypeEmail is the only credential provider: email and password.
const ProviderTypeEmail = "email"

// Authentication represents a single method of logging in (a credential).
type Authentication struct {
	ID             uuid.UUID // The unique ID for this authentication record.
	UserID         uuid.UUID // Links this credential to the User it belongs to.
	Provider       string    // Always ProviderTypeEmail for now.
	ProviderUserID string    // The login email.
	PasswordHash   string    // bcrypt hash of the password.
	CreatedAt      time.Time
}

// RefreshToken represents a long-lived session issued at login.
type RefreshToken struct {
	ID        uuid.UUID // The unique ID for this refresh token record.
	UserID    uuid.UUID // Links this session to the User it belongs to.
	TokenHash string    // SHA-256 hash of the raw refresh token.
	ExpiresAt time.Time
	CreatedAt time.Time
}
