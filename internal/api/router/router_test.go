package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/jobden/internal/api/handlers/events"
	"github.com/aliskhannn/jobden/internal/api/handlers/notification"
	"github.com/aliskhannn/jobden/internal/api/handlers/ws"
	"github.com/aliskhannn/jobden/internal/config"
	eventmocks "github.com/aliskhannn/jobden/internal/mocks/api/handlers/events"
	notifmocks "github.com/aliskhannn/jobden/internal/mocks/api/handlers/notification"
	wsmocks "github.com/aliskhannn/jobden/internal/mocks/api/handlers/ws"
	"github.com/aliskhannn/jobden/internal/model"
	"github.com/aliskhannn/jobden/internal/registry"
	"github.com/aliskhannn/jobden/pkg/token"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testEnv struct {
	engine   http.Handler
	tokens   *token.Manager
	notif    *notifmocks.MocknotificationService
	notifier *eventmocks.Mocknotifier
}

func setup(t *testing.T) *testEnv {
	ctrl := gomock.NewController(t)
	v := validator.New()

	cfg := &config.Config{}
	cfg.Server.AllowedOrigins = []string{"http://localhost:3000"}
	cfg.Auth.InternalToken = "internal-secret"

	tokens := token.NewManager("router-secret", time.Hour)
	notifService := notifmocks.NewMocknotificationService(ctrl)
	notifier := eventmocks.NewMocknotifier(ctrl)

	h := Handlers{
		Notifications: notification.NewHandler(notifService, v),
		WebSocket:     ws.NewHandler(tokens, registry.New(), wsmocks.NewMocknotificationService(ctrl), v, config.WebSocket{}, cfg.Server.AllowedOrigins),
		Events:        events.NewHandler(notifier, eventmocks.NewMockmailer(ctrl), v),
	}

	return &testEnv{engine: New(h, tokens, cfg), tokens: tokens, notif: notifService, notifier: notifier}
}

func (e *testEnv) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	e.engine.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	env := setup(t)

	w := env.do(httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy","version":"1.0.0"}`, w.Body.String())
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	assert.NotEmpty(t, w.Header().Get("X-Process-Time"))
}

func TestNotifications_RequireBearerToken(t *testing.T) {
	env := setup(t)

	w := env.do(httptest.NewRequest(http.MethodGet, "/api/v1/notifications/unread-count", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	raw, err := env.tokens.Issue(42)
	require.NoError(t, err)

	env.notif.EXPECT().UnreadCount(gomock.Any(), int64(42)).Return(3, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/notifications/unread-count", nil)
	req.Header.Set("Authorization", "Bearer "+raw)
	w = env.do(req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"unread_count":3}`, w.Body.String())
}

func TestNotifications_StaticAndParamRoutes(t *testing.T) {
	env := setup(t)

	raw, err := env.tokens.Issue(42)
	require.NoError(t, err)

	env.notif.EXPECT().MarkAllRead(gomock.Any(), int64(42)).Return(int64(2), nil)
	env.notif.EXPECT().MarkRead(gomock.Any(), int64(42), int64(9)).Return(model.Notification{ID: 9, UserID: 42, IsRead: true}, nil)

	for _, target := range []string{"/api/v1/notifications/mark-all-read", "/api/v1/notifications/9/read"} {
		req := httptest.NewRequest(http.MethodPut, target, nil)
		req.Header.Set("Authorization", "Bearer "+raw)
		w := env.do(req)

		assert.Equal(t, http.StatusOK, w.Code, target)
	}
}

func TestInternalEvents_RequireInternalToken(t *testing.T) {
	env := setup(t)
	body := `{"type":"application_submitted","recipient_id":20,"job_title":"Go Engineer","application_id":3}`

	w := env.do(httptest.NewRequest(http.MethodPost, "/api/v1/internal/events", strings.NewReader(body)))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	env.notifier.EXPECT().
		NotifyApplicationSubmitted(gomock.Any(), int64(20), "Go Engineer", int64(3)).
		Return(model.Notification{ID: 1, UserID: 20}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/internal/events", strings.NewReader(body))
	req.Header.Set("X-Internal-Token", "internal-secret")
	w = env.do(req)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestOnlineStatus(t *testing.T) {
	env := setup(t)

	w := env.do(httptest.NewRequest(http.MethodGet, "/api/v1/ws/online-status", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"online_users":0,"total_connections":0}`, w.Body.String())
}
