package email

import (
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/retry"

	"github.com/aliskhannn/jobden/internal/config"
	mocks "github.com/aliskhannn/jobden/internal/mocks/service/email"
	"github.com/aliskhannn/jobden/internal/model"
)

var testStrategy = retry.Strategy{Attempts: 3, Delay: time.Millisecond, Backoff: 2}

func setupService(t *testing.T) (*Service, *mocks.MocktaskPublisher) {
	ctrl := gomock.NewController(t)
	pub := mocks.NewMocktaskPublisher(ctrl)

	svc := NewService(pub, testStrategy, config.App{Name: "JobDen", URL: "https://jobden.io"})
	svc.now = func() time.Time { return time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC) }

	return svc, pub
}

func capture(pub *mocks.MocktaskPublisher, err error) *model.EmailTask {
	var got model.EmailTask
	pub.EXPECT().Publish(gomock.Any(), testStrategy).DoAndReturn(
		func(task model.EmailTask, _ retry.Strategy) error {
			got = task
			return err
		},
	)
	return &got
}

func TestService_Enqueue(t *testing.T) {
	svc, pub := setupService(t)
	got := capture(pub, nil)

	id, err := svc.Enqueue(model.TaskWelcome, "jane@example.com", "hi", map[string]any{"name": "Jane"})
	require.NoError(t, err)

	assert.Equal(t, id, got.ID)
	assert.Equal(t, model.TaskWelcome, got.Name)
	assert.Equal(t, model.TaskWelcome, got.Template)
	assert.Equal(t, "jane@example.com", got.To)
	assert.Equal(t, time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC), got.EnqueuedAt)
}

func TestService_Enqueue_BrokerFailure(t *testing.T) {
	svc, pub := setupService(t)
	capture(pub, errors.New("channel closed"))

	_, err := svc.Enqueue(model.TaskWelcome, "jane@example.com", "hi", nil)
	assert.Error(t, err)
}

func TestService_FireAndForgetDoesNotPanicOnFailure(t *testing.T) {
	svc, pub := setupService(t)
	capture(pub, errors.New("channel closed"))

	assert.NotPanics(t, func() {
		svc.SendWelcome("jane@example.com", "Jane")
	})
}

func TestService_Producers(t *testing.T) {
	tests := []struct {
		name    string
		send    func(*Service)
		task    string
		subject string
		context map[string]any
	}{
		{
			name:    "welcome",
			send:    func(s *Service) { s.SendWelcome("a@example.com", "Jane") },
			task:    model.TaskWelcome,
			subject: "Welcome to JobDen!",
			context: map[string]any{"name": "Jane"},
		},
		{
			name: "application confirmation",
			send: func(s *Service) {
				s.SendApplicationConfirmation("a@example.com", "Jane", "Go Engineer", "Acme", 3)
			},
			task:    model.TaskApplicationConfirmation,
			subject: "Application Confirmation - Go Engineer",
			context: map[string]any{
				"applicant_name": "Jane",
				"job_title":      "Go Engineer",
				"company_name":   "Acme",
				"application_id": int64(3),
			},
		},
		{
			name: "application status",
			send: func(s *Service) {
				s.SendApplicationStatus("a@example.com", "Jane", "Go Engineer", "Acme", "rejected", 3)
			},
			task:    model.TaskApplicationStatus,
			subject: "Application Update - Go Engineer",
			context: map[string]any{
				"applicant_name": "Jane",
				"job_title":      "Go Engineer",
				"company_name":   "Acme",
				"status":         "rejected",
				"status_message": "Thank you for your interest",
				"application_id": int64(3),
			},
		},
		{
			name: "new application",
			send: func(s *Service) {
				s.SendNewApplication("e@example.com", "Bob", "Jane", "Go Engineer", 3)
			},
			task:    model.TaskNewApplication,
			subject: "New Application for Go Engineer",
			context: map[string]any{
				"employer_name":  "Bob",
				"applicant_name": "Jane",
				"job_title":      "Go Engineer",
				"application_id": int64(3),
			},
		},
		{
			name: "application withdrawn",
			send: func(s *Service) {
				s.SendApplicationWithdrawn("e@example.com", "Bob", "Jane", "Go Engineer", 3)
			},
			task:    model.TaskApplicationWithdrawn,
			subject: "Application Withdrawn - Go Engineer",
			context: map[string]any{
				"employer_name":  "Bob",
				"applicant_name": "Jane",
				"job_title":      "Go Engineer",
				"application_id": int64(3),
			},
		},
		{
			name:    "password reset",
			send:    func(s *Service) { s.SendPasswordReset("a@example.com", "Jane", "tok123") },
			task:    model.TaskPasswordReset,
			subject: "Password Reset Request - JobDen",
			context: map[string]any{
				"name":      "Jane",
				"reset_url": "https://jobden.io/reset-password?token=tok123",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, pub := setupService(t)
			got := capture(pub, nil)

			tt.send(svc)

			assert.Equal(t, tt.task, got.Name)
			assert.Equal(t, tt.subject, got.Subject)
			assert.Equal(t, tt.context, got.Context)
		})
	}
}

func TestStatusEmailMessage(t *testing.T) {
	assert.Equal(t, "Your application is being reviewed", StatusEmailMessage("reviewed"))
	assert.Equal(t, "Congratulations! Your application has been accepted", StatusEmailMessage("accepted"))
	assert.Equal(t, "Thank you for your interest", StatusEmailMessage("rejected"))
	assert.Equal(t, "Status updated to pending", StatusEmailMessage("pending"))
}
