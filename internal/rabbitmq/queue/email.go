package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/jobden/internal/config"
	"github.com/aliskhannn/jobden/internal/model"
)

// EmailQueue publishes email tasks to RabbitMQ and consumes them in the worker.
//
// Failed tasks are published to a retry queue whose message ttl equals the
// retry delay. Expired messages are dead-lettered back to the task queue, so a
// pending retry survives a worker restart and does not hold a worker.
type EmailQueue struct {
	publisher  *rabbitmq.Publisher
	consumer   *rabbitmq.Consumer
	routingKey string
	retryKey   string
}

// NewEmailQueue declares the exchange, the durable task queue and its retry queue.
func NewEmailQueue(ch *rabbitmq.Channel, cfg config.RabbitMQ, retryDelay time.Duration) (*EmailQueue, error) {
	exchange := rabbitmq.NewExchange(cfg.Exchange, "direct")
	if err := exchange.BindToChannel(ch); err != nil {
		return nil, fmt.Errorf("failed to bind to exchange: %w", err)
	}

	qm := rabbitmq.NewQueueManager(ch)

	retryArgs := map[string]interface{}{
		"x-dead-letter-exchange":    exchange.Name(),
		"x-dead-letter-routing-key": cfg.RoutingKey,
		"x-message-ttl":             retryDelay.Milliseconds(),
	}

	retryQ, err := qm.DeclareQueue(cfg.RetryQueue, rabbitmq.QueueConfig{
		Durable: true,
		Args:    retryArgs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to declare retry queue %s: %w", cfg.RetryQueue, err)
	}

	mainQ, err := qm.DeclareQueue(cfg.Queue, rabbitmq.QueueConfig{Durable: true})
	if err != nil {
		return nil, fmt.Errorf("failed to declare queue %s: %w", cfg.Queue, err)
	}

	if err := ch.QueueBind(mainQ.Name, cfg.RoutingKey, exchange.Name(), false, nil); err != nil {
		return nil, fmt.Errorf("failed to bind the exchange to the queue: %w", err)
	}

	if err := ch.QueueBind(retryQ.Name, cfg.RetryKey, exchange.Name(), false, nil); err != nil {
		return nil, fmt.Errorf("failed to bind the exchange to the retry queue: %w", err)
	}

	return &EmailQueue{
		publisher:  rabbitmq.NewPublisher(ch, exchange.Name()),
		consumer:   rabbitmq.NewConsumer(ch, rabbitmq.NewConsumerConfig(mainQ.Name)),
		routingKey: cfg.RoutingKey,
		retryKey:   cfg.RetryKey,
	}, nil
}

// Publish hands the task to the broker. A nil error means the broker accepted
// the task, not that it was executed.
func (q *EmailQueue) Publish(task model.EmailTask, strategy retry.Strategy) error {
	return q.publish(task, q.routingKey, strategy)
}

// PublishRetry parks the task in the retry queue. It comes back to the task
// queue once the retry delay has passed.
func (q *EmailQueue) PublishRetry(task model.EmailTask, strategy retry.Strategy) error {
	return q.publish(task, q.retryKey, strategy)
}

func (q *EmailQueue) publish(task model.EmailTask, key string, strategy retry.Strategy) error {
	body, err := json.Marshal(task)
	if err != nil {
		return fmt.Errorf("failed to marshal task: %w", err)
	}

	return q.publisher.PublishWithRetry(body, key, "application/json", strategy)
}

// Consume decodes incoming deliveries into out.
//
// Deliveries are acknowledged before they reach out, so once ctx is done every
// decoded task that no worker took is parked in the retry queue instead.
func (q *EmailQueue) Consume(ctx context.Context, out chan<- model.EmailTask, strategy retry.Strategy) error {
	msgChan := make(chan []byte)

	go forward(ctx, msgChan, out, func(task model.EmailTask) {
		if err := q.PublishRetry(task, strategy); err != nil {
			zlog.Logger.Error().Err(err).Str("task_id", task.ID.String()).Msg("failed to requeue task on shutdown")
			return
		}
		zlog.Logger.Info().Str("task_id", task.ID.String()).Msg("task requeued on shutdown")
	})

	return q.consumer.ConsumeWithRetry(msgChan, strategy)
}

// forward runs until in is closed. After ctx is done it stops feeding out and
// passes every task to requeue.
func forward(ctx context.Context, in <-chan []byte, out chan<- model.EmailTask, requeue func(model.EmailTask)) {
	for body := range in {
		var task model.EmailTask
		if err := json.Unmarshal(body, &task); err != nil {
			zlog.Logger.Error().Err(err).Msg("failed to unmarshal task")
			continue
		}

		if ctx.Err() != nil {
			requeue(task)
			continue
		}

		select {
		case out <- task:
		case <-ctx.Done():
			requeue(task)
		}
	}
}
