package main

import (
	"context"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/jobden/internal/config"
	"github.com/aliskhannn/jobden/internal/mailtemplate"
	emailmsg "github.com/aliskhannn/jobden/internal/rabbitmq/handlers/email"
	"github.com/aliskhannn/jobden/internal/rabbitmq/queue"
	"github.com/aliskhannn/jobden/internal/worker"
	"github.com/aliskhannn/jobden/pkg/email"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zlog.Init()
	cfg := config.Must()

	conn, err := rabbitmq.Connect(cfg.RabbitMQ.URL(), cfg.RabbitMQ.Retries, cfg.RabbitMQ.Pause)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to rabbitmq")
	}

	ch, err := conn.Channel()
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to open channel")
	}

	q, err := queue.NewEmailQueue(ch, cfg.RabbitMQ, cfg.Task.RetryDelay)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to create email queue")
	}

	renderer, err := mailtemplate.New(cfg.App)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to parse email templates")
	}

	smtpPort, err := strconv.Atoi(cfg.Email.SMTPPort)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to parse email smtp port")
	}

	emailClient := email.NewClient(
		cfg.Email.SMTPHost,
		smtpPort,
		cfg.Email.Username,
		cfg.Email.Password,
		cfg.Email.From,
		cfg.Email.FromName,
	)

	handler := emailmsg.NewHandler(renderer, emailClient, q, validator.New(), cfg.Task, cfg.Retry)
	pool := worker.NewPool(q, handler)

	zlog.Logger.Info().Int("workers", cfg.Workers.Count).Msg("starting email workers")
	pool.Run(ctx, cfg.Retry, cfg.Workers.Count)

	if err := ch.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ channel")
	}

	if err := conn.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ connection")
	}
}
