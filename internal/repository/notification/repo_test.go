package notification

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/dbpg"

	"github.com/aliskhannn/jobden/internal/model"
)

var notificationColumns = []string{
	"id", "user_id", "title", "message", "notification_type", "related_id", "is_read", "created_at",
}

func setupMockDB(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open mock db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	wrappedDB := &dbpg.DB{Master: db}
	repo := NewRepository(wrappedDB)

	return repo, mock
}

func TestCreateNotification(t *testing.T) {
	repo, mock := setupMockDB(t)

	relatedID := int64(7)
	createdAt := time.Now().UTC()
	n := model.Notification{
		UserID:    42,
		Title:     "New Application Received",
		Message:   "Jane applied to 'Go Engineer'",
		Type:      model.TypeNewApplication,
		RelatedID: &relatedID,
	}

	mock.ExpectQuery(regexp.QuoteMeta(`
		INSERT INTO notifications (
		    user_id, title, message, notification_type, related_id
		) VALUES ($1, $2, $3, $4, $5)
		RETURNING id, is_read, created_at;
    `)).
		WithArgs(n.UserID, n.Title, n.Message, n.Type, relatedID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "is_read", "created_at"}).AddRow(int64(1), false, createdAt))

	created, err := repo.CreateNotification(context.Background(), n)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, createdAt, created.CreatedAt)
	assert.False(t, created.IsRead)
	assert.Equal(t, n.Title, created.Title)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateNotification_NilRelatedID(t *testing.T) {
	repo, mock := setupMockDB(t)

	n := model.Notification{UserID: 1, Title: "t", Message: "m"}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO notifications")).
		WithArgs(n.UserID, n.Title, n.Message, "", nil).
		WillReturnError(errors.New("connection refused"))

	_, err := repo.CreateNotification(context.Background(), n)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetNotificationByID(t *testing.T) {
	repo, mock := setupMockDB(t)

	createdAt := time.Now().UTC()
	query := regexp.QuoteMeta(`
		SELECT id, user_id, title, message, notification_type, related_id, is_read, created_at
		FROM notifications
		WHERE id = $1;
    `)

	mock.ExpectQuery(query).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(notificationColumns).
			AddRow(int64(5), int64(42), "title", "message", model.TypeApplication, int64(9), true, createdAt))

	n, err := repo.GetNotificationByID(context.Background(), 5)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), n.UserID)
	if assert.NotNil(t, n.RelatedID) {
		assert.Equal(t, int64(9), *n.RelatedID)
	}
	assert.True(t, n.IsRead)

	mock.ExpectQuery(query).
		WithArgs(int64(6)).
		WillReturnError(sql.ErrNoRows)

	_, err = repo.GetNotificationByID(context.Background(), 6)
	assert.ErrorIs(t, err, ErrNotificationNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetNotificationByID_ReadsFromMaster(t *testing.T) {
	master, masterMock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open mock db: %v", err)
	}
	t.Cleanup(func() { master.Close() })

	replica, replicaMock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open mock db: %v", err)
	}
	t.Cleanup(func() { replica.Close() })

	repo := NewRepository(&dbpg.DB{Master: master, Slaves: []*sql.DB{replica}})

	masterMock.ExpectQuery(regexp.QuoteMeta("FROM notifications")).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(notificationColumns).
			AddRow(int64(5), int64(42), "title", "message", model.TypeApplication, nil, false, time.Now().UTC()))

	n, err := repo.GetNotificationByID(context.Background(), 5)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), n.UserID)

	assert.NoError(t, masterMock.ExpectationsWereMet())
	assert.NoError(t, replicaMock.ExpectationsWereMet())
}

func TestListNotificationsByUser(t *testing.T) {
	repo, mock := setupMockDB(t)

	query := regexp.QuoteMeta(`
		SELECT id, user_id, title, message, notification_type, related_id, is_read, created_at
		FROM notifications
		WHERE user_id = $1 AND ($2::boolean = FALSE OR is_read = FALSE)
		ORDER BY created_at DESC, id DESC
		OFFSET $3 LIMIT $4;
    `)

	now := time.Now().UTC()
	rows := sqlmock.NewRows(notificationColumns).
		AddRow(int64(2), int64(42), "t2", "m2", "", nil, false, now).
		AddRow(int64(1), int64(42), "t1", "m1", "", nil, false, now.Add(-time.Minute))

	mock.ExpectQuery(query).
		WithArgs(int64(42), true, 0, 50).
		WillReturnRows(rows)

	list, err := repo.ListNotificationsByUser(context.Background(), 42, model.ListFilter{Limit: 50, UnreadOnly: true})
	assert.NoError(t, err)
	assert.Len(t, list, 2)
	assert.Nil(t, list[0].RelatedID)

	mock.ExpectQuery(query).
		WithArgs(int64(43), false, 10, 10).
		WillReturnRows(sqlmock.NewRows(notificationColumns))

	list, err = repo.ListNotificationsByUser(context.Background(), 43, model.ListFilter{Skip: 10, Limit: 10})
	assert.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkAsRead(t *testing.T) {
	repo, mock := setupMockDB(t)

	query := regexp.QuoteMeta(`
		UPDATE notifications
		SET is_read = TRUE
		WHERE id = $1;
    `)

	mock.ExpectExec(query).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.MarkAsRead(context.Background(), 3))

	mock.ExpectExec(query).
		WithArgs(int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.MarkAsRead(context.Background(), 4), ErrNotificationNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkAllAsRead(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectExec(regexp.QuoteMeta(`
		UPDATE notifications
		SET is_read = TRUE
		WHERE user_id = $1 AND is_read = FALSE;
    `)).
		WithArgs(int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 3))

	count, err := repo.MarkAllAsRead(context.Background(), 42)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteNotification(t *testing.T) {
	repo, mock := setupMockDB(t)

	query := regexp.QuoteMeta(`
		DELETE FROM notifications
		WHERE id = $1;
    `)

	mock.ExpectExec(query).
		WithArgs(int64(8)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.DeleteNotification(context.Background(), 8))

	mock.ExpectExec(query).
		WithArgs(int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.DeleteNotification(context.Background(), 9), ErrNotificationNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountUnread(t *testing.T) {
	repo, mock := setupMockDB(t)

	query := regexp.QuoteMeta(`
		SELECT COUNT(*)
		FROM notifications
		WHERE user_id = $1 AND is_read = FALSE;
    `)

	mock.ExpectQuery(query).
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	count, err := repo.CountUnread(context.Background(), 42)
	assert.NoError(t, err)
	assert.Equal(t, 4, count)

	mock.ExpectQuery(query).
		WithArgs(int64(42)).
		WillReturnError(errors.New("timeout"))

	_, err = repo.CountUnread(context.Background(), 42)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
