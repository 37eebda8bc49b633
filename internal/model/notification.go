package model

import (
	"time"
)

// Notification types produced by domain events.
const (
	TypeApplication          = "application"
	TypeNewApplication       = "new_application"
	TypeApplicationStatus    = "application_status"
	TypeApplicationWithdrawn = "application_withdrawn"
)

// Notification represents an in-app notification owned by a single user.
type Notification struct {
	ID        int64     `json:"id"`                // unique identifier for the notification
	UserID    int64     `json:"user_id"`           // owner of the notification
	Title     string    `json:"title"`             // short headline
	Message   string    `json:"message"`           // rendered text shown to the user
	Type      string    `json:"notification_type"` // event tag, e.g. "new_application"
	RelatedID *int64    `json:"related_id"`        // related entity id, e.g. an application id
	IsRead    bool      `json:"is_read"`           // the only field mutated after creation
	CreatedAt time.Time `json:"created_at"`        // timestamp when the notification was created
}

// ListFilter narrows a per-user notification listing.
type ListFilter struct {
	Skip       int
	Limit      int
	UnreadOnly bool
}
