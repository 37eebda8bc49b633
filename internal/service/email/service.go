// Package email enqueues transactional emails for the worker.
//
// Every operation is fire-and-forget: the task is handed to the broker and
// failures are logged, never returned to the request path.
package email

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/jobden/internal/config"
	"github.com/aliskhannn/jobden/internal/model"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/email/mock.go -package=mocks

type taskPublisher interface {
	Publish(task model.EmailTask, strategy retry.Strategy) error
}

type Service struct {
	queue    taskPublisher
	strategy retry.Strategy
	app      config.App
	now      func() time.Time
}

func NewService(queue taskPublisher, strategy retry.Strategy, app config.App) *Service {
	return &Service{queue: queue, strategy: strategy, app: app, now: time.Now}
}

// Enqueue hands a task to the broker and returns its id.
//
// The returned error is only informative; callers on the request path ignore it.
func (s *Service) Enqueue(name, to, subject string, data map[string]any) (uuid.UUID, error) {
	task := model.EmailTask{
		ID:         uuid.New(),
		Name:       name,
		To:         to,
		Subject:    subject,
		Template:   name,
		Context:    data,
		EnqueuedAt: s.now().UTC(),
	}

	if err := s.queue.Publish(task, s.strategy); err != nil {
		zlog.Logger.Error().
			Err(err).
			Str("task_id", task.ID.String()).
			Str("task", name).
			Str("to", to).
			Msg("failed to enqueue email task")
		return task.ID, fmt.Errorf("enqueue %s: %w", name, err)
	}

	zlog.Logger.Info().Str("task_id", task.ID.String()).Str("task", name).Msg("email task enqueued")
	return task.ID, nil
}

func (s *Service) SendWelcome(to, name string) {
	_, _ = s.Enqueue(model.TaskWelcome, to, fmt.Sprintf("Welcome to %s!", s.app.Name), map[string]any{
		"name": name,
	})
}

func (s *Service) SendApplicationConfirmation(to, applicantName, jobTitle, companyName string, applicationID int64) {
	_, _ = s.Enqueue(model.TaskApplicationConfirmation, to, "Application Confirmation - "+jobTitle, map[string]any{
		"applicant_name": applicantName,
		"job_title":      jobTitle,
		"company_name":   companyName,
		"application_id": applicationID,
	})
}

func (s *Service) SendApplicationStatus(to, applicantName, jobTitle, companyName, status string, applicationID int64) {
	_, _ = s.Enqueue(model.TaskApplicationStatus, to, "Application Update - "+jobTitle, map[string]any{
		"applicant_name": applicantName,
		"job_title":      jobTitle,
		"company_name":   companyName,
		"status":         status,
		"status_message": StatusEmailMessage(status),
		"application_id": applicationID,
	})
}

func (s *Service) SendNewApplication(to, employerName, applicantName, jobTitle string, applicationID int64) {
	_, _ = s.Enqueue(model.TaskNewApplication, to, "New Application for "+jobTitle, map[string]any{
		"employer_name":  employerName,
		"applicant_name": applicantName,
		"job_title":      jobTitle,
		"application_id": applicationID,
	})
}

func (s *Service) SendApplicationWithdrawn(to, employerName, applicantName, jobTitle string, applicationID int64) {
	_, _ = s.Enqueue(model.TaskApplicationWithdrawn, to, "Application Withdrawn - "+jobTitle, map[string]any{
		"employer_name":  employerName,
		"applicant_name": applicantName,
		"job_title":      jobTitle,
		"application_id": applicationID,
	})
}

func (s *Service) SendPasswordReset(to, name, resetToken string) {
	_, _ = s.Enqueue(model.TaskPasswordReset, to, fmt.Sprintf("Password Reset Request - %s", s.app.Name), map[string]any{
		"name":      name,
		"reset_url": fmt.Sprintf("%s/reset-password?token=%s", s.app.URL, resetToken),
	})
}

// StatusEmailMessage is the status line used in application update emails.
func StatusEmailMessage(status string) string {
	switch status {
	case "reviewed":
		return "Your application is being reviewed"
	case "accepted":
		return "Congratulations! Your application has been accepted"
	case "rejected":
		return "Thank you for your interest"
	default:
		return "Status updated to " + status
	}
}
