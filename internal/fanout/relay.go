// Package fanout relays notification envelopes between API nodes through Redis pub/sub.
//
// Every node publishes envelopes on a shared channel and every node, including the
// publisher, pushes the envelopes it receives to the users connected to it.
package fanout

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"
)

const publishTimeout = 5 * time.Second

type broker interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
	Subscribe(ctx context.Context, channels ...string) *redis.PubSub
}

type localRegistry interface {
	IsOnline(userID int64) bool
	SendToUser(userID int64, message any) int
}

type relayMessage struct {
	UserID  int64           `json:"user_id"`
	Payload json.RawMessage `json:"payload"`
}

// Relay publishes envelopes to every node and delivers incoming ones locally.
type Relay struct {
	client   broker
	channel  string
	local    localRegistry
	strategy retry.Strategy
}

func NewRelay(client broker, channel string, local localRegistry, strategy retry.Strategy) *Relay {
	return &Relay{
		client:   client,
		channel:  channel,
		local:    local,
		strategy: strategy,
	}
}

// SendToUser publishes the message for the user on the relay channel and
// returns the number of nodes that received it.
//
// When publishing fails, or no node is subscribed (this one included), the
// message is delivered to local connections only.
func (r *Relay) SendToUser(userID int64, message any) int {
	payload, err := json.Marshal(message)
	if err != nil {
		zlog.Logger.Error().Err(err).Int64("user_id", userID).Msg("failed to marshal relay payload")
		return 0
	}

	body, err := json.Marshal(relayMessage{UserID: userID, Payload: payload})
	if err != nil {
		zlog.Logger.Error().Err(err).Int64("user_id", userID).Msg("failed to marshal relay message")
		return 0
	}

	var receivers int64
	err = retry.Do(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()

		n, err := r.client.Publish(ctx, r.channel, body).Result()
		if err != nil {
			return err
		}
		receivers = n
		return nil
	}, r.strategy)
	if err != nil {
		zlog.Logger.Warn().Err(err).Int64("user_id", userID).Msg("relay publish failed, delivering locally")
		return r.local.SendToUser(userID, json.RawMessage(payload))
	}

	if receivers == 0 {
		zlog.Logger.Warn().Int64("user_id", userID).Str("channel", r.channel).Msg("relay has no subscribers, delivering locally")
		return r.local.SendToUser(userID, json.RawMessage(payload))
	}

	return int(receivers)
}

// Run subscribes to the relay channel and delivers messages until ctx is done.
func (r *Relay) Run(ctx context.Context) error {
	sub := r.client.Subscribe(ctx, r.channel)
	defer sub.Close()

	if _, err := sub.Receive(ctx); err != nil {
		return fmt.Errorf("subscribe to %s: %w", r.channel, err)
	}

	zlog.Logger.Info().Str("channel", r.channel).Msg("relay subscribed")
	r.consume(ctx, sub.Channel())

	return nil
}

func (r *Relay) consume(ctx context.Context, messages <-chan *redis.Message) {
	for {
		select {
		case <-ctx.Done():
			zlog.Logger.Info().Msg("relay stopped")
			return
		case m, ok := <-messages:
			if !ok {
				zlog.Logger.Warn().Msg("relay channel closed")
				return
			}
			r.deliver(m.Payload)
		}
	}
}

func (r *Relay) deliver(raw string) {
	var msg relayMessage
	if err := json.Unmarshal([]byte(raw), &msg); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to unmarshal relay message")
		return
	}

	if !r.local.IsOnline(msg.UserID) {
		return
	}

	r.local.SendToUser(msg.UserID, msg.Payload)
}
