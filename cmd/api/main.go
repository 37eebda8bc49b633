package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/redis"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/jobden/internal/api/handlers/events"
	"github.com/aliskhannn/jobden/internal/api/handlers/notification"
	"github.com/aliskhannn/jobden/internal/api/handlers/ws"
	"github.com/aliskhannn/jobden/internal/api/router"
	"github.com/aliskhannn/jobden/internal/api/server"
	"github.com/aliskhannn/jobden/internal/config"
	"github.com/aliskhannn/jobden/internal/fanout"
	"github.com/aliskhannn/jobden/internal/migration"
	"github.com/aliskhannn/jobden/internal/rabbitmq/queue"
	"github.com/aliskhannn/jobden/internal/registry"
	notifrepo "github.com/aliskhannn/jobden/internal/repository/notification"
	emailsvc "github.com/aliskhannn/jobden/internal/service/email"
	notifsvc "github.com/aliskhannn/jobden/internal/service/notification"
	"github.com/aliskhannn/jobden/pkg/token"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zlog.Init()
	cfg := config.Must()
	val := validator.New()

	opts := &dbpg.Options{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	slaveDSNs := make([]string, 0, len(cfg.Database.Slaves))
	for _, s := range cfg.Database.Slaves {
		slaveDSNs = append(slaveDSNs, s.DSN())
	}

	db, err := dbpg.New(cfg.Database.Master.DSN(), slaveDSNs, opts)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	if err := migration.Up(db.Master); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to apply migrations")
	}

	repo := notifrepo.NewRepository(db)
	reg := registry.New()

	// Without the relay a notification reaches only connections held by this node.
	var sender interface {
		SendToUser(userID int64, message any) int
	} = reg

	if cfg.Redis.FanoutEnabled {
		dbNum, err := strconv.Atoi(cfg.Redis.Database)
		if err != nil {
			zlog.Logger.Fatal().Err(err).Msg("failed to parse redis database")
		}

		rdb := redis.New(cfg.Redis.Address, cfg.Redis.Password, dbNum)
		if err := rdb.Ping(ctx).Err(); err != nil {
			zlog.Logger.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer rdb.Close()

		relay := fanout.NewRelay(rdb, cfg.Redis.FanoutChannel, reg, cfg.Retry)
		go func() {
			if err := relay.Run(ctx); err != nil {
				zlog.Logger.Error().Err(err).Msg("relay stopped")
			}
		}()

		sender = relay
	}

	notifService := notifsvc.NewService(repo, sender)

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

	emailService := emailsvc.NewService(q, cfg.Retry, cfg.App)
	tokens := token.NewManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTL)

	r := router.New(router.Handlers{
		Notifications: notification.NewHandler(notifService, val),
		WebSocket:     ws.NewHandler(tokens, reg, notifService, val, cfg.WebSocket, cfg.Server.AllowedOrigins),
		Events:        events.NewHandler(notifService, emailService, val),
	}, tokens, cfg)
	s := server.New(cfg.Server.HTTPPort, r)

	go func() {
		zlog.Logger.Info().Str("addr", cfg.Server.HTTPPort).Msg("starting server")
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	zlog.Logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	zlog.Logger.Info().Msg("shutting down server")
	if err := s.Shutdown(shutdownCtx); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to shutdown server")
	}

	if errors.Is(shutdownCtx.Err(), context.DeadlineExceeded) {
		zlog.Logger.Info().Msg("timeout exceeded, forcing shutdown")
	}

	if err := db.Master.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close master DB")
	}

	for i, s := range db.Slaves {
		if err := s.Close(); err != nil {
			zlog.Logger.Error().Err(err).Int("slave", i).Msg("failed to close slave DB")
		}
	}

	if err := ch.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ channel")
	}

	if err := conn.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ connection")
	}
}
