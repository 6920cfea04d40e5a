// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"time"

	deliverycontext "farmlease/internal/delivery/context"
	"farmlease/internal/domain/access"
	domainerrors "farmlease/internal/domain/errors"
	"farmlease/internal/domain/service"
	"farmlease/internal/domain/validation"

	"github.com/google/uuid"
)

// authorizeInput runs the first two checks every farm operation shares:
// the caller must be known, then the input must be well formed.
func authorizeInput(caller *access.Caller, input any) error {
	if caller == nil {
		return domainerrors.ErrUnauthenticated
	}

	return validation.Struct(input)
}

// publishFarmEvent hands the event to the publisher. Failures are logged and
// swallowed; the write that triggered the event has already committed.
func publishFarmEvent(ctx context.Context, publisher service.EventPublisher, logger *slog.Logger, eventType service.FarmEventType, plotID, resourceID, actorID uuid.UUID) {
	if publisher == nil {
		return
	}

	event := &service.FarmEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       eventType,
		PlotID:     plotID.String(),
		ResourceID: resourceID.String(),
		ActorID:    actorID.String(),
		OccurredAt: time.Now().UTC(),
	}

	if err := publisher.PublishFarmEvent(ctx, event); err != nil {
		logger.Warn("Failed to publish farm event",
			slog.String("type", string(eventType)),
			slog.String("resource_id", event.ResourceID),
			slog.Any("error", err),
		)
	}
}

// hashToken is the at-rest form of a refresh token.
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}
