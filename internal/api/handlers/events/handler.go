// Package events accepts application and account events from the rest of the
// backend and turns them into notifications and emails.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/jobden/internal/api/respond"
	"github.com/aliskhannn/jobden/internal/model"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/events/mock.go -package=mocks

// Event types accepted by the intake endpoint.
const (
	EventNewApplication         = "new_application"
	EventApplicationStatus      = "application_status"
	EventApplicationWithdrawn   = "application_withdrawn"
	EventApplicationSubmitted   = "application_submitted"
	EventUserRegistered         = "user_registered"
	EventPasswordResetRequested = "password_reset_requested"
)

type notifier interface {
	NotifyNewApplication(ctx context.Context, employerID int64, jobTitle, applicantName string, applicationID int64) (model.Notification, error)
	NotifyStatusChange(ctx context.Context, applicantID int64, jobTitle, status string, applicationID int64) (model.Notification, error)
	NotifyWithdrawn(ctx context.Context, employerID int64, jobTitle, applicantName string, applicationID int64) (model.Notification, error)
	NotifyApplicationSubmitted(ctx context.Context, applicantID int64, jobTitle string, applicationID int64) (model.Notification, error)
}

type mailer interface {
	SendWelcome(to, name string)
	SendApplicationConfirmation(to, applicantName, jobTitle, companyName string, applicationID int64)
	SendApplicationStatus(to, applicantName, jobTitle, companyName, status string, applicationID int64)
	SendNewApplication(to, employerName, applicantName, jobTitle string, applicationID int64)
	SendApplicationWithdrawn(to, employerName, applicantName, jobTitle string, applicationID int64)
	SendPasswordReset(to, name, resetToken string)
}

// Request is the body of POST /internal/events.
//
// The recipient is the user who receives the notification and the email:
// the employer for new_application and application_withdrawn, the applicant
// otherwise.
type Request struct {
	Type           string `json:"type" validate:"required,oneof=new_application application_status application_withdrawn application_submitted user_registered password_reset_requested"`
	RecipientID    int64  `json:"recipient_id" validate:"gte=0"`
	RecipientEmail string `json:"recipient_email" validate:"omitempty,email"`
	RecipientName  string `json:"recipient_name"`
	ApplicantName  string `json:"applicant_name"`
	JobTitle       string `json:"job_title"`
	CompanyName    string `json:"company_name"`
	Status         string `json:"status"`
	ApplicationID  int64  `json:"application_id" validate:"gte=0"`
	ResetToken     string `json:"reset_token"`
}

type Handler struct {
	notifier  notifier
	mailer    mailer
	validator *validator.Validate
}

func NewHandler(n notifier, m mailer, v *validator.Validate) *Handler {
	return &Handler{notifier: n, mailer: m, validator: v}
}

// Create handles one domain event.
//
// Application events answer 201 with the stored notification. Account events
// only enqueue an email and answer 202.
func (h *Handler) Create(c *ginext.Context) {
	var req Request
	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode event body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate event body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	if err := checkRequired(req); err != nil {
		zlog.Logger.Warn().Err(err).Str("type", req.Type).Msg("incomplete event")
		respond.Fail(c.Writer, http.StatusBadRequest, err)
		return
	}

	switch req.Type {
	case EventUserRegistered:
		h.mailer.SendWelcome(req.RecipientEmail, req.RecipientName)
		respond.Accepted(c.Writer, map[string]string{"status": "queued"})
		return
	case EventPasswordResetRequested:
		h.mailer.SendPasswordReset(req.RecipientEmail, req.RecipientName, req.ResetToken)
		respond.Accepted(c.Writer, map[string]string{"status": "queued"})
		return
	}

	n, err := h.notify(c.Request.Context(), req)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("type", req.Type).Int64("recipient_id", req.RecipientID).Msg("failed to create notification")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	if req.RecipientEmail != "" {
		h.email(req)
	}

	respond.Created(c.Writer, n)
}

func (h *Handler) notify(ctx context.Context, req Request) (model.Notification, error) {
	switch req.Type {
	case EventNewApplication:
		return h.notifier.NotifyNewApplication(ctx, req.RecipientID, req.JobTitle, req.ApplicantName, req.ApplicationID)
	case EventApplicationStatus:
		return h.notifier.NotifyStatusChange(ctx, req.RecipientID, req.JobTitle, req.Status, req.ApplicationID)
	case EventApplicationWithdrawn:
		return h.notifier.NotifyWithdrawn(ctx, req.RecipientID, req.JobTitle, req.ApplicantName, req.ApplicationID)
	default:
		return h.notifier.NotifyApplicationSubmitted(ctx, req.RecipientID, req.JobTitle, req.ApplicationID)
	}
}

func (h *Handler) email(req Request) {
	switch req.Type {
	case EventNewApplication:
		h.mailer.SendNewApplication(req.RecipientEmail, req.RecipientName, req.ApplicantName, req.JobTitle, req.ApplicationID)
	case EventApplicationStatus:
		h.mailer.SendApplicationStatus(req.RecipientEmail, req.RecipientName, req.JobTitle, req.CompanyName, req.Status, req.ApplicationID)
	case EventApplicationWithdrawn:
		h.mailer.SendApplicationWithdrawn(req.RecipientEmail, req.RecipientName, req.ApplicantName, req.JobTitle, req.ApplicationID)
	case EventApplicationSubmitted:
		h.mailer.SendApplicationConfirmation(req.RecipientEmail, req.RecipientName, req.JobTitle, req.CompanyName, req.ApplicationID)
	}
}

func checkRequired(req Request) error {
	var missing string

	switch req.Type {
	case EventUserRegistered:
		if req.RecipientEmail == "" {
			missing = "recipient_email"
		}
	case EventPasswordResetRequested:
		switch {
		case req.RecipientEmail == "":
			missing = "recipient_email"
		case req.ResetToken == "":
			missing = "reset_token"
		}
	default:
		switch {
		case req.RecipientID == 0:
			missing = "recipient_id"
		case req.JobTitle == "":
			missing = "job_title"
		case req.ApplicationID == 0:
			missing = "application_id"
		case req.ApplicantName == "" && (req.Type == EventNewApplication || req.Type == EventApplicationWithdrawn):
			missing = "applicant_name"
		case req.Status == "" && req.Type == EventApplicationStatus:
			missing = "status"
		}
	}

	if missing != "" {
		return fmt.Errorf("%s is required for %s events", missing, req.Type)
	}

	return nil
}
