package notification

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// listLimit caps the bell dropdown. The client polls this endpoint every
// few seconds; unread items always fit well under the cap.
const listLimit = 50

// Service owns the persistent copy of lifecycle events. The live copy goes
// over the socket hub; this store backs the bell badge between sessions.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Notify stores an unread notification for a user.
func (s *Service) Notify(ctx context.Context, userID uuid.UUID, message string) error {
	if userID == uuid.Nil {
		return fmt.Errorf("user id is required")
	}
	if strings.TrimSpace(message) == "" {
		return fmt.Errorf("message is required")
	}
	return s.repo.Create(ctx, &Notification{UserID: userID, Message: message})
}

// ListForUser returns the user's notifications, newest first.
func (s *Service) ListForUser(ctx context.Context, userID uuid.UUID) ([]*Notification, error) {
	return s.repo.ListByUser(ctx, userID, listLimit)
}

// MarkAllRead flips the user's unread notifications and returns the count.
func (s *Service) MarkAllRead(ctx context.Context, userID uuid.UUID) (int, error) {
	return s.repo.MarkAllRead(ctx, userID)
}
