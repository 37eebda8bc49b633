package email

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/jobden/internal/config"
	"github.com/aliskhannn/jobden/internal/model"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/rabbitmq/handlers/email/mock.go -package=mocks

var (
	ErrInvalidTask       = errors.New("invalid email task")
	ErrTimeLimitExceeded = errors.New("task time limit exceeded")
	ErrRetryScheduled    = errors.New("email task scheduled for retry")
)

type renderer interface {
	Render(name string, data map[string]any) (string, error)
}

type mailer interface {
	Send(to, subject, htmlBody string) error
}

type retryPublisher interface {
	PublishRetry(task model.EmailTask, strategy retry.Strategy) error
}

// TaskExecutionError is the terminal failure of an email task.
type TaskExecutionError struct {
	TaskID   uuid.UUID
	Task     string
	Attempts int
	Err      error
}

func (e *TaskExecutionError) Error() string {
	return fmt.Sprintf("task %s (%s) failed after %d attempt(s): %v", e.Task, e.TaskID, e.Attempts, e.Err)
}

func (e *TaskExecutionError) Unwrap() error {
	return e.Err
}

// Handler executes email tasks taken from the queue.
//
// Each delivery is one attempt. A failed attempt is republished to the retry
// queue with its attempt count bumped until limits.MaxRetries retries have
// been used. Invalid payloads and render failures are terminal at once.
type Handler struct {
	renderer  renderer
	mailer    mailer
	retries   retryPublisher
	validator *validator.Validate
	limits    config.Task
	strategy  retry.Strategy
}

func NewHandler(r renderer, m mailer, q retryPublisher, v *validator.Validate, limits config.Task, strategy retry.Strategy) *Handler {
	return &Handler{
		renderer:  r,
		mailer:    m,
		retries:   q,
		validator: v,
		limits:    limits,
		strategy:  strategy,
	}
}

// HandleMessage executes the task and logs its outcome.
func (h *Handler) HandleMessage(ctx context.Context, task model.EmailTask) {
	zlog.Logger.Info().
		Str("task_id", task.ID.String()).
		Str("task", task.Name).
		Int("attempt", task.Attempt+1).
		Msg("handle message: got email task")

	err := h.Execute(ctx, task)
	switch {
	case err == nil:
		zlog.Logger.Info().Str("task_id", task.ID.String()).Str("to", task.To).Msg("handle message: email sent")
	case errors.Is(err, ErrRetryScheduled):
		zlog.Logger.Warn().
			Err(err).
			Str("task_id", task.ID.String()).
			Dur("retry_in", h.limits.RetryDelay).
			Msg("handle message: email task parked for retry")
	default:
		zlog.Logger.Error().Err(err).Str("task_id", task.ID.String()).Msg("handle message: email task dropped")
	}
}

// Execute renders and sends the task once.
//
// It returns nil on success, an error wrapping ErrRetryScheduled when the task
// went back to the broker, and a *TaskExecutionError when the task is dropped.
func (h *Handler) Execute(ctx context.Context, task model.EmailTask) error {
	if err := h.validator.Struct(task); err != nil {
		return h.fail(task, task.Attempt, fmt.Errorf("%w: %v", ErrInvalidTask, err))
	}

	body, err := h.renderer.Render(task.Template, task.Context)
	if err != nil {
		return h.fail(task, task.Attempt, err)
	}

	// The worker is stopping; the task keeps its attempt count.
	if ctx.Err() != nil {
		return h.park(task, ctx.Err())
	}

	err = h.attempt(ctx, task, body)
	if err == nil {
		return nil
	}

	if ctx.Err() != nil {
		return h.park(task, err)
	}

	attempts := task.Attempt + 1
	if attempts > h.limits.MaxRetries {
		return h.fail(task, attempts, err)
	}

	next := task
	next.Attempt = attempts
	return h.park(next, err)
}

func (h *Handler) park(task model.EmailTask, cause error) error {
	if err := h.retries.PublishRetry(task, h.strategy); err != nil {
		return h.fail(task, task.Attempt, errors.Join(cause, fmt.Errorf("publish retry: %w", err)))
	}

	return fmt.Errorf("%w (attempt %d): %w", ErrRetryScheduled, task.Attempt, cause)
}

// attempt calls the provider once. Past the soft limit a warning is logged;
// past the hard limit the call is abandoned and counts as a failed attempt.
func (h *Handler) attempt(ctx context.Context, task model.EmailTask, body string) error {
	done := make(chan error, 1)
	go func() {
		done <- h.mailer.Send(task.To, task.Subject, body)
	}()

	var soft, hard <-chan time.Time
	if h.limits.SoftTimeLimit > 0 {
		t := time.NewTimer(h.limits.SoftTimeLimit)
		defer t.Stop()
		soft = t.C
	}
	if h.limits.TimeLimit > 0 {
		t := time.NewTimer(h.limits.TimeLimit)
		defer t.Stop()
		hard = t.C
	}

	for {
		select {
		case err := <-done:
			return err
		case <-soft:
			soft = nil
			zlog.Logger.Warn().
				Str("task_id", task.ID.String()).
				Dur("soft_time_limit", h.limits.SoftTimeLimit).
				Msg("email task exceeded soft time limit")
		case <-hard:
			return fmt.Errorf("%w: %s", ErrTimeLimitExceeded, h.limits.TimeLimit)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (h *Handler) fail(task model.EmailTask, attempts int, err error) error {
	return &TaskExecutionError{
		TaskID:   task.ID,
		Task:     task.Name,
		Attempts: attempts,
		Err:      err,
	}
}
