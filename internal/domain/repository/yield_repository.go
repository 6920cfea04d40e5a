package repository

import (
	"context"

	"farmlease/internal/domain/entity"
)

// YieldRepository defines persistence operations for yield records.
type YieldRepository interface {
	// Create persists a new yield record.
	Create(ctx context.Context, y *entity.Yield) error
}
