package notification

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mocks "github.com/aliskhannn/jobden/internal/mocks/api/handlers/notification"
	"github.com/aliskhannn/jobden/internal/model"
	notifsvc "github.com/aliskhannn/jobden/internal/service/notification"
)

const testUserID = int64(42)

func setupHandler(t *testing.T) (*Handler, *mocks.MocknotificationService) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMocknotificationService(ctrl)
	handler := NewHandler(mockService, validator.New())
	return handler, mockService
}

func newContext(method, target string, params gin.Params) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, nil)
	c.Params = params
	c.Set("user_id", testUserID)
	return c, w
}

func TestHandler_List_Defaults(t *testing.T) {
	handler, mockService := setupHandler(t)
	c, w := newContext(http.MethodGet, "/api/v1/notifications", nil)

	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	mockService.EXPECT().
		List(gomock.Any(), testUserID, model.ListFilter{Skip: 0, Limit: 100, UnreadOnly: false}).
		Return([]model.Notification{{ID: 1, UserID: testUserID, Title: "t", CreatedAt: created}}, nil)

	handler.List(c)

	require.Equal(t, http.StatusOK, w.Code)
	var body []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, "t", body[0]["title"])
	assert.Contains(t, body[0], "notification_type")
}

func TestHandler_List_WithQuery(t *testing.T) {
	handler, mockService := setupHandler(t)
	c, w := newContext(http.MethodGet, "/api/v1/notifications?skip=20&limit=10&unread_only=true", nil)

	mockService.EXPECT().
		List(gomock.Any(), testUserID, model.ListFilter{Skip: 20, Limit: 10, UnreadOnly: true}).
		Return([]model.Notification{}, nil)

	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestHandler_List_InvalidQuery(t *testing.T) {
	for _, target := range []string{
		"/api/v1/notifications?limit=0",
		"/api/v1/notifications?limit=101",
		"/api/v1/notifications?skip=-1",
		"/api/v1/notifications?unread_only=maybe",
	} {
		t.Run(target, func(t *testing.T) {
			handler, _ := setupHandler(t)
			c, w := newContext(http.MethodGet, target, nil)

			handler.List(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestHandler_List_Unauthenticated(t *testing.T) {
	handler, _ := setupHandler(t)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/notifications", nil)

	handler.List(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_UnreadCount(t *testing.T) {
	handler, mockService := setupHandler(t)
	c, w := newContext(http.MethodGet, "/api/v1/notifications/unread-count", nil)

	mockService.EXPECT().UnreadCount(gomock.Any(), testUserID).Return(7, nil)

	handler.UnreadCount(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"unread_count":7}`, w.Body.String())
}

func TestHandler_UnreadCount_StoreError(t *testing.T) {
	handler, mockService := setupHandler(t)
	c, w := newContext(http.MethodGet, "/api/v1/notifications/unread-count", nil)

	mockService.EXPECT().UnreadCount(gomock.Any(), testUserID).Return(0, notifsvc.ErrStore)

	handler.UnreadCount(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestHandler_MarkRead(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"success", nil, http.StatusOK},
		{"not found", notifsvc.ErrNotFound, http.StatusNotFound},
		{"forbidden", notifsvc.ErrForbidden, http.StatusForbidden},
		{"store error", notifsvc.ErrStore, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, mockService := setupHandler(t)
			c, w := newContext(http.MethodPut, "/api/v1/notifications/9/read", gin.Params{{Key: "id", Value: "9"}})

			mockService.EXPECT().
				MarkRead(gomock.Any(), testUserID, int64(9)).
				Return(model.Notification{ID: 9, UserID: testUserID, IsRead: true}, tt.err)

			handler.MarkRead(c)

			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestHandler_MarkRead_InvalidID(t *testing.T) {
	handler, _ := setupHandler(t)
	c, w := newContext(http.MethodPut, "/api/v1/notifications/abc/read", gin.Params{{Key: "id", Value: "abc"}})

	handler.MarkRead(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_MarkAllRead(t *testing.T) {
	handler, mockService := setupHandler(t)
	c, w := newContext(http.MethodPut, "/api/v1/notifications/mark-all-read", nil)

	mockService.EXPECT().MarkAllRead(gomock.Any(), testUserID).Return(int64(4), nil)

	handler.MarkAllRead(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Marked 4 notifications as read","count":4}`, w.Body.String())
}

func TestHandler_Delete(t *testing.T) {
	handler, mockService := setupHandler(t)
	c, _ := newContext(http.MethodDelete, "/api/v1/notifications/9", gin.Params{{Key: "id", Value: "9"}})

	mockService.EXPECT().Delete(gomock.Any(), testUserID, int64(9)).Return(nil)

	handler.Delete(c)

	assert.Equal(t, http.StatusNoContent, c.Writer.Status())
}

func TestHandler_Delete_Forbidden(t *testing.T) {
	handler, mockService := setupHandler(t)
	c, w := newContext(http.MethodDelete, "/api/v1/notifications/9", gin.Params{{Key: "id", Value: "9"}})

	mockService.EXPECT().Delete(gomock.Any(), testUserID, int64(9)).Return(notifsvc.ErrForbidden)

	handler.Delete(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
