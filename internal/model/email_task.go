package model

import (
	"time"

	"github.com/google/uuid"
)

// Email task names. The name doubles as the template used to render the body.
const (
	TaskWelcome                 = "welcome"
	TaskApplicationConfirmation = "application_confirmation"
	TaskApplicationStatus       = "application_status"
	TaskNewApplication          = "new_application"
	TaskApplicationWithdrawn    = "application_withdrawn"
	TaskPasswordReset           = "password_reset"
)

// EmailTask is a unit of work handed to the broker and executed by the worker.
type EmailTask struct {
	ID         uuid.UUID      `json:"id" validate:"required"`
	Name       string         `json:"name" validate:"required"`
	To         string         `json:"to" validate:"required,email"`
	Subject    string         `json:"subject" validate:"required"`
	Template   string         `json:"template" validate:"required"`
	Context    map[string]any `json:"context"`
	EnqueuedAt time.Time      `json:"enqueued_at"`
	Attempt    int            `json:"attempt"` // failed attempts so far; bumped on every retry
}
