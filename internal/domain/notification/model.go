package notification

import (
	"time"

	"github.com/google/uuid"
)

// Notification maps to the notification table. One row per lifecycle event
// the bell badge shows; Read flips when the user opens the dropdown.
type Notification struct {
	ID        uuid.UUID `db:"id" json:"id"`
	UserID    uuid.UUID `db:"user_id" json:"user_id"`
	Message   string    `db:"message" json:"message"`
	Read      bool      `db:"read" json:"read"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Wire is the client-facing representation. The dashboard reads the same
// timestamp under both fechaEnvio and createdAt, so ToWire mirrors it.
type Wire struct {
	ID        uuid.UUID `json:"_id"`
	UserID    uuid.UUID `json:"usuarioId"`
	Message   string    `json:"mensaje"`
	Read      bool      `json:"leida"`
	SentAt    string    `json:"fechaEnvio"`
	CreatedAt string    `json:"createdAt"`
}

// ToWire converts a notification to the client representation.
func (n *Notification) ToWire() Wire {
	ts := n.CreatedAt.UTC().Format(time.RFC3339)
	return Wire{
		ID:        n.ID,
		UserID:    n.UserID,
		Message:   n.Message,
		Read:      n.Read,
		SentAt:    ts,
		CreatedAt: ts,
	}
}

// ToWireList converts a slice of notifications.
func ToWireList(ns []*Notification) []Wire {
	out := make([]Wire, len(ns))
	for i, n := range ns {
		out[i] = n.ToWire()
	}
	return out
}
