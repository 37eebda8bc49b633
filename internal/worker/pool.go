package worker

import (
	"context"
	"sync"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/jobden/internal/model"
)

//go:generate mockgen -source=pool.go -destination=../mocks/worker/mock.go -package=mocks

type taskConsumer interface {
	Consume(ctx context.Context, out chan<- model.EmailTask, strategy retry.Strategy) error
}

type taskHandler interface {
	HandleMessage(ctx context.Context, task model.EmailTask)
}

// Pool runs a fixed number of goroutines that execute email tasks from the queue.
type Pool struct {
	consumer taskConsumer
	handler  taskHandler
}

func NewPool(c taskConsumer, h taskHandler) *Pool {
	return &Pool{
		consumer: c,
		handler:  h,
	}
}

// Run consumes tasks and dispatches them to workerCount workers until ctx is done.
// It returns after every worker has finished its current task.
//
// The task channel is unbuffered: a task leaves the consumer only when a worker
// takes it, so nothing acknowledged by the broker sits in a local buffer when
// the pool stops. The consumer is responsible for tasks it still holds.
func (p *Pool) Run(ctx context.Context, strategy retry.Strategy, workerCount int) {
	if workerCount < 1 {
		workerCount = 1
	}

	var wg sync.WaitGroup
	taskChan := make(chan model.EmailTask)

	go func() {
		if err := p.consumer.Consume(ctx, taskChan, strategy); err != nil {
			zlog.Logger.Error().Err(err).Msg("failed to consume tasks")
		}
	}()

	wg.Add(workerCount)
	for i := 0; i < workerCount; i++ {
		go func(id int) {
			defer wg.Done()

			zlog.Logger.Info().Int("worker", id).Msg("worker started")

			for {
				select {
				case <-ctx.Done():
					zlog.Logger.Info().Int("worker", id).Msg("worker shutting down")
					return
				case task, ok := <-taskChan:
					if !ok {
						zlog.Logger.Info().Int("worker", id).Msg("task channel closed, shutting down")
						return
					}

					p.handler.HandleMessage(ctx, task)
				}
			}
		}(i)
	}

	<-ctx.Done()
	wg.Wait()
	zlog.Logger.Info().Msg("worker pool stopped")
}
