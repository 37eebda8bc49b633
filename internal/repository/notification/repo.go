package notification

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/wb-go/wbf/dbpg"

	"github.com/aliskhannn/jobden/internal/model"
)

var ErrNotificationNotFound = errors.New("notification not found")

// Repository provides methods to interact with notifications table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new notification repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// CreateNotification inserts a new notification and returns it with the
// generated id, read flag and creation timestamp filled in.
//
// The insert always goes to the master node.
func (r *Repository) CreateNotification(ctx context.Context, n model.Notification) (model.Notification, error) {
	query := `
		INSERT INTO notifications (
		    user_id, title, message, notification_type, related_id
		) VALUES ($1, $2, $3, $4, $5)
		RETURNING id, is_read, created_at;
    `

	err := r.db.Master.QueryRowContext(
		ctx, query, n.UserID, n.Title, n.Message, n.Type, nullableID(n.RelatedID),
	).Scan(&n.ID, &n.IsRead, &n.CreatedAt)
	if err != nil {
		return model.Notification{}, fmt.Errorf("failed to create notification: %w", err)
	}

	return n, nil
}

// GetNotificationByID retrieves a single notification by its ID.
//
// It reads from the master: the result gates writes on the same row, and a
// replica may not have a just-created notification yet.
func (r *Repository) GetNotificationByID(ctx context.Context, id int64) (model.Notification, error) {
	query := `
		SELECT id, user_id, title, message, notification_type, related_id, is_read, created_at
		FROM notifications
		WHERE id = $1;
    `

	n, err := scanNotification(r.db.Master.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Notification{}, ErrNotificationNotFound
		}

		return model.Notification{}, fmt.Errorf("failed to get notification: %w", err)
	}

	return n, nil
}

// ListNotificationsByUser retrieves a page of the user's notifications, newest first.
// An empty page is not an error.
func (r *Repository) ListNotificationsByUser(ctx context.Context, userID int64, filter model.ListFilter) ([]model.Notification, error) {
	query := `
		SELECT id, user_id, title, message, notification_type, related_id, is_read, created_at
		FROM notifications
		WHERE user_id = $1 AND ($2::boolean = FALSE OR is_read = FALSE)
		ORDER BY created_at DESC, id DESC
		OFFSET $3 LIMIT $4;
    `

	rows, err := r.db.QueryContext(ctx, query, userID, filter.UnreadOnly, filter.Skip, filter.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	notifications := make([]model.Notification, 0)
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}

		notifications = append(notifications, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate notifications: %w", err)
	}

	return notifications, nil
}

// MarkAsRead flips the read flag of a notification.
func (r *Repository) MarkAsRead(ctx context.Context, id int64) error {
	query := `
		UPDATE notifications
		SET is_read = TRUE
		WHERE id = $1;
    `

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to mark notification as read: %w", err)
	}

	rows, _ := res.RowsAffected()

	if rows == 0 {
		return ErrNotificationNotFound
	}

	return nil
}

// MarkAllAsRead flips the read flag of every unread notification of the user
// and returns how many were changed.
func (r *Repository) MarkAllAsRead(ctx context.Context, userID int64) (int64, error) {
	query := `
		UPDATE notifications
		SET is_read = TRUE
		WHERE user_id = $1 AND is_read = FALSE;
    `

	res, err := r.db.ExecContext(ctx, query, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to mark all notifications as read: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count updated notifications: %w", err)
	}

	return rows, nil
}

// DeleteNotification removes a notification by its ID.
func (r *Repository) DeleteNotification(ctx context.Context, id int64) error {
	query := `
		DELETE FROM notifications
		WHERE id = $1;
    `

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete notification: %w", err)
	}

	rows, _ := res.RowsAffected()

	if rows == 0 {
		return ErrNotificationNotFound
	}

	return nil
}

// CountUnread returns the number of unread notifications of the user.
func (r *Repository) CountUnread(ctx context.Context, userID int64) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM notifications
		WHERE user_id = $1 AND is_read = FALSE;
    `

	var count int
	if err := r.db.QueryRowContext(ctx, query, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	return count, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanNotification(s scanner) (model.Notification, error) {
	var (
		n       model.Notification
		related sql.NullInt64
	)

	err := s.Scan(&n.ID, &n.UserID, &n.Title, &n.Message, &n.Type, &related, &n.IsRead, &n.CreatedAt)
	if err != nil {
		return model.Notification{}, err
	}

	if related.Valid {
		id := related.Int64
		n.RelatedID = &id
	}

	return n, nil
}

func nullableID(id *int64) sql.NullInt64 {
	if id == nil {
		return sql.NullInt64{}
	}

	return sql.NullInt64{Int64: *id, Valid: true}
}
