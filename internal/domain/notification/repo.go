package notification

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, n *Notification) error
	// ListByUser returns a user's notifications, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*Notification, error)
	// MarkAllRead flips every unread notification of the user and returns
	// how many changed.
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int, error)
}
