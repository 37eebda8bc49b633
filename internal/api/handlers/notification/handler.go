package notification

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/jobden/internal/api/respond"
	"github.com/aliskhannn/jobden/internal/middlewares"
	"github.com/aliskhannn/jobden/internal/model"
	notifsvc "github.com/aliskhannn/jobden/internal/service/notification"
)

// notificationService defines the interface that the Handler depends on.
//
//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/notification/mock.go -package=mocks
type notificationService interface {
	List(ctx context.Context, userID int64, filter model.ListFilter) ([]model.Notification, error)
	UnreadCount(ctx context.Context, userID int64) (int, error)
	MarkRead(ctx context.Context, userID, id int64) (model.Notification, error)
	MarkAllRead(ctx context.Context, userID int64) (int64, error)
	Delete(ctx context.Context, userID, id int64) error
}

// Handler serves the notification REST endpoints of the authenticated user.
type Handler struct {
	service   notificationService
	validator *validator.Validate
}

func NewHandler(s notificationService, v *validator.Validate) *Handler {
	return &Handler{service: s, validator: v}
}

// ListQuery holds the query parameters of the list endpoint.
type ListQuery struct {
	Skip       int  `form:"skip,default=0" validate:"gte=0"`
	Limit      int  `form:"limit,default=100" validate:"gte=1,lte=100"`
	UnreadOnly bool `form:"unread_only,default=false"`
}

// List returns the user's notifications, newest first.
func (h *Handler) List(c *ginext.Context) {
	userID, ok := middlewares.GetUserID(c)
	if !ok {
		respond.Fail(c.Writer, http.StatusUnauthorized, fmt.Errorf("unauthorized"))
		return
	}

	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to bind list query")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid query parameters"))
		return
	}

	if err := h.validator.Struct(q); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate list query")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	notifications, err := h.service.List(c.Request.Context(), userID, model.ListFilter{
		Skip:       q.Skip,
		Limit:      q.Limit,
		UnreadOnly: q.UnreadOnly,
	})
	if err != nil {
		zlog.Logger.Error().Err(err).Int64("user_id", userID).Msg("failed to list notifications")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, notifications)
}

// UnreadCount returns {"unread_count": N}.
func (h *Handler) UnreadCount(c *ginext.Context) {
	userID, ok := middlewares.GetUserID(c)
	if !ok {
		respond.Fail(c.Writer, http.StatusUnauthorized, fmt.Errorf("unauthorized"))
		return
	}

	count, err := h.service.UnreadCount(c.Request.Context(), userID)
	if err != nil {
		zlog.Logger.Error().Err(err).Int64("user_id", userID).Msg("failed to count unread notifications")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, map[string]int{"unread_count": count})
}

// MarkRead marks one notification as read and returns it.
func (h *Handler) MarkRead(c *ginext.Context) {
	userID, ok := middlewares.GetUserID(c)
	if !ok {
		respond.Fail(c.Writer, http.StatusUnauthorized, fmt.Errorf("unauthorized"))
		return
	}

	id, err := parseID(c)
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, err)
		return
	}

	n, err := h.service.MarkRead(c.Request.Context(), userID, id)
	if err != nil {
		h.failOwned(c, err, id, "failed to mark notification as read")
		return
	}

	respond.OK(c.Writer, n)
}

// MarkAllRead marks every unread notification of the user as read.
func (h *Handler) MarkAllRead(c *ginext.Context) {
	userID, ok := middlewares.GetUserID(c)
	if !ok {
		respond.Fail(c.Writer, http.StatusUnauthorized, fmt.Errorf("unauthorized"))
		return
	}

	count, err := h.service.MarkAllRead(c.Request.Context(), userID)
	if err != nil {
		zlog.Logger.Error().Err(err).Int64("user_id", userID).Msg("failed to mark all notifications as read")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, map[string]any{
		"message": fmt.Sprintf("Marked %d notifications as read", count),
		"count":   count,
	})
}

// Delete removes one notification of the user.
func (h *Handler) Delete(c *ginext.Context) {
	userID, ok := middlewares.GetUserID(c)
	if !ok {
		respond.Fail(c.Writer, http.StatusUnauthorized, fmt.Errorf("unauthorized"))
		return
	}

	id, err := parseID(c)
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), userID, id); err != nil {
		h.failOwned(c, err, id, "failed to delete notification")
		return
	}

	respond.NoContent(c.Writer)
}

// failOwned maps errors of operations on a single owned notification.
func (h *Handler) failOwned(c *ginext.Context, err error, id int64, msg string) {
	switch {
	case errors.Is(err, notifsvc.ErrNotFound):
		zlog.Logger.Warn().Int64("id", id).Err(err).Msg("notification not found")
		respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("notification not found"))
	case errors.Is(err, notifsvc.ErrForbidden):
		zlog.Logger.Warn().Int64("id", id).Err(err).Msg("notification belongs to another user")
		respond.Fail(c.Writer, http.StatusForbidden, fmt.Errorf("you don't have permission to access this notification"))
	default:
		zlog.Logger.Error().Err(err).Int64("id", id).Msg(msg)
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
	}
}

func parseID(c *ginext.Context) (int64, error) {
	idStr := c.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		zlog.Logger.Warn().Str("id", idStr).Msg("invalid notification id")
		return 0, fmt.Errorf("invalid id")
	}

	return id, nil
}
