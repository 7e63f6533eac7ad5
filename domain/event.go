// Package domain contains core concepts of the chat client's view layer.
// No runtime, network, or UI logic should be added here.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Event is an immutable chat timeline event. The view layer never inspects
// content; it only carries events around (forwarding, replying).
type Event struct {
	ID        uuid.UUID
	RoomID    RoomID
	SenderID  string
	Type      string
	Content   string
	CreatedAt time.Time
}
