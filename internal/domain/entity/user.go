// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a single account. The role is assigned at signup and does not change.
type User struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email     string    // Login identifier.
	Name      string    // Display name.
	Role      Role      // admin, landowner or farmer.
	CreatedAt time.Time
	UpdatedAt time.Time
}
