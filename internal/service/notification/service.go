package notification

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/jobden/internal/model"
	"github.com/aliskhannn/jobden/internal/repository/notification"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/notification/mock.go -package=mocks

var (
	// ErrStore wraps any failure of the notification store.
	ErrStore = errors.New("notification store error")

	// ErrForbidden is returned when a user touches a notification they do not own.
	ErrForbidden = errors.New("notification belongs to another user")

	// ErrNotFound is returned when the notification does not exist.
	ErrNotFound = notification.ErrNotificationNotFound
)

type notificationRepository interface {
	CreateNotification(context.Context, model.Notification) (model.Notification, error)
	GetNotificationByID(context.Context, int64) (model.Notification, error)
	ListNotificationsByUser(context.Context, int64, model.ListFilter) ([]model.Notification, error)
	MarkAsRead(context.Context, int64) error
	MarkAllAsRead(context.Context, int64) (int64, error)
	DeleteNotification(context.Context, int64) error
	CountUnread(context.Context, int64) (int, error)
}

type sender interface {
	SendToUser(userID int64, message any) int
}

// Envelope is the message pushed to live connections when a notification is created.
type Envelope struct {
	Type      string      `json:"type"`
	Data      PayloadData `json:"data"`
	Timestamp string      `json:"timestamp"`
}

// PayloadData is the notification part of an Envelope.
type PayloadData struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"user_id"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	Type      string `json:"notification_type"`
	RelatedID *int64 `json:"related_id"`
	IsRead    bool   `json:"is_read"`
	CreatedAt string `json:"created_at"`
}

// Service persists notifications and pushes them to live connections.
type Service struct {
	repo   notificationRepository
	sender sender
	now    func() time.Time
}

func NewService(repo notificationRepository, sender sender) *Service {
	return &Service{repo: repo, sender: sender, now: time.Now}
}

// CreateAndDispatch stores a notification and then pushes it to every live
// connection of the user.
//
// A store failure aborts before anything is pushed. Delivery failures never
// fail the call; the stored record is the source of truth.
func (s *Service) CreateAndDispatch(
	ctx context.Context,
	userID int64,
	title, message, notifType string,
	relatedID *int64,
) (model.Notification, error) {
	n, err := s.repo.CreateNotification(ctx, model.Notification{
		UserID:    userID,
		Title:     title,
		Message:   message,
		Type:      notifType,
		RelatedID: relatedID,
	})
	if err != nil {
		return model.Notification{}, fmt.Errorf("%w: create notification: %w", ErrStore, err)
	}

	delivered := s.sender.SendToUser(userID, s.envelope(n))
	zlog.Logger.Info().
		Int64("notification_id", n.ID).
		Int64("user_id", userID).
		Str("type", notifType).
		Int("delivered", delivered).
		Msg("notification dispatched")

	return n, nil
}

func (s *Service) envelope(n model.Notification) Envelope {
	return Envelope{
		Type: "notification",
		Data: PayloadData{
			ID:        n.ID,
			UserID:    n.UserID,
			Title:     n.Title,
			Message:   n.Message,
			Type:      n.Type,
			RelatedID: n.RelatedID,
			IsRead:    n.IsRead,
			CreatedAt: n.CreatedAt.UTC().Format(time.RFC3339),
		},
		Timestamp: s.now().UTC().Format(time.RFC3339),
	}
}

// NotifyNewApplication tells an employer that someone applied to their job.
func (s *Service) NotifyNewApplication(ctx context.Context, employerID int64, jobTitle, applicantName string, applicationID int64) (model.Notification, error) {
	return s.CreateAndDispatch(
		ctx,
		employerID,
		"New Application Received",
		NewApplicationMessage(applicantName, jobTitle),
		model.TypeNewApplication,
		&applicationID,
	)
}

// NotifyStatusChange tells an applicant that the status of their application changed.
func (s *Service) NotifyStatusChange(ctx context.Context, applicantID int64, jobTitle, status string, applicationID int64) (model.Notification, error) {
	return s.CreateAndDispatch(
		ctx,
		applicantID,
		"Application Status Update",
		StatusChangeMessage(jobTitle, status),
		model.TypeApplicationStatus,
		&applicationID,
	)
}

// NotifyWithdrawn tells an employer that an applicant withdrew.
func (s *Service) NotifyWithdrawn(ctx context.Context, employerID int64, jobTitle, applicantName string, applicationID int64) (model.Notification, error) {
	return s.CreateAndDispatch(
		ctx,
		employerID,
		"Application Withdrawn",
		WithdrawnMessage(applicantName, jobTitle),
		model.TypeApplicationWithdrawn,
		&applicationID,
	)
}

// NotifyApplicationSubmitted confirms a submitted application to the applicant.
func (s *Service) NotifyApplicationSubmitted(ctx context.Context, applicantID int64, jobTitle string, applicationID int64) (model.Notification, error) {
	return s.CreateAndDispatch(
		ctx,
		applicantID,
		"Application Submitted",
		SubmittedMessage(jobTitle),
		model.TypeApplication,
		&applicationID,
	)
}

func NewApplicationMessage(applicantName, jobTitle string) string {
	return fmt.Sprintf("%s applied to '%s'", applicantName, jobTitle)
}

// StatusChangeMessage maps an application status to the text shown to the applicant.
func StatusChangeMessage(jobTitle, status string) string {
	switch status {
	case "reviewed":
		return fmt.Sprintf("Your application for '%s' is being reviewed", jobTitle)
	case "accepted":
		return fmt.Sprintf("Congratulations! Your application for '%s' has been accepted", jobTitle)
	case "rejected":
		return fmt.Sprintf("Your application for '%s' was not successful this time", jobTitle)
	default:
		return fmt.Sprintf("Your application status for '%s' has been updated to %s", jobTitle, status)
	}
}

func WithdrawnMessage(applicantName, jobTitle string) string {
	return fmt.Sprintf("%s withdrew their application for '%s'", applicantName, jobTitle)
}

func SubmittedMessage(jobTitle string) string {
	return fmt.Sprintf("Your application for '%s' has been submitted successfully.", jobTitle)
}

// List returns the user's notifications, newest first.
func (s *Service) List(ctx context.Context, userID int64, filter model.ListFilter) ([]model.Notification, error) {
	notifications, err := s.repo.ListNotificationsByUser(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: list notifications: %w", ErrStore, err)
	}

	return notifications, nil
}

// UnreadCount returns how many of the user's notifications are unread.
func (s *Service) UnreadCount(ctx context.Context, userID int64) (int, error) {
	count, err := s.repo.CountUnread(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("%w: count unread: %w", ErrStore, err)
	}

	return count, nil
}

// MarkRead marks a notification owned by userID as read and returns it.
func (s *Service) MarkRead(ctx context.Context, userID, id int64) (model.Notification, error) {
	n, err := s.authorize(ctx, userID, id)
	if err != nil {
		return model.Notification{}, err
	}

	if err := s.repo.MarkAsRead(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return model.Notification{}, err
		}
		return model.Notification{}, fmt.Errorf("%w: mark as read: %w", ErrStore, err)
	}

	n.IsRead = true
	return n, nil
}

// MarkAllRead marks every unread notification of the user as read and
// returns how many were updated.
func (s *Service) MarkAllRead(ctx context.Context, userID int64) (int64, error) {
	count, err := s.repo.MarkAllAsRead(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("%w: mark all as read: %w", ErrStore, err)
	}

	return count, nil
}

// Delete removes a notification owned by userID.
func (s *Service) Delete(ctx context.Context, userID, id int64) error {
	if _, err := s.authorize(ctx, userID, id); err != nil {
		return err
	}

	if err := s.repo.DeleteNotification(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return err
		}
		return fmt.Errorf("%w: delete notification: %w", ErrStore, err)
	}

	return nil
}

func (s *Service) authorize(ctx context.Context, userID, id int64) (model.Notification, error) {
	n, err := s.repo.GetNotificationByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return model.Notification{}, err
		}
		return model.Notification{}, fmt.Errorf("%w: get notification: %w", ErrStore, err)
	}

	if n.UserID != userID {
		return model.Notification{}, ErrForbidden
	}

	return n, nil
}
