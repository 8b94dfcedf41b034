package realtime

import (
	"context"
	"log/slog"

	"expertbook/internal/pkg/config"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient builds the shared Redis client from configuration.
func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	options := &redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	}

	return redis.NewClient(options)
}

// Bridge spreads slot events across instances: local publishes go to a Redis
// channel, and the subscription loop relays everything on that channel into
// the local hub. With a single instance the hub alone is enough and the
// bridge is simply not wired.
type Bridge struct {
	client  *redis.Client
	channel string
	hub     *Hub
	cancel  context.CancelFunc
	done    chan struct{}
}

func NewBridge(client *redis.Client, channel string, hub *Hub) *Bridge {
	return &Bridge{
		client:  client,
		channel: channel,
		hub:     hub,
		done:    make(chan struct{}),
	}
}

// Publish sends the event through Redis; the relay loop of every instance
// (this one included) delivers it to local subscribers. Failures are logged,
// never propagated: broadcast is best-effort by contract.
func (b *Bridge) Publish(ev Event) {
	ctx := context.Background()
	if err := b.client.Publish(ctx, b.channel, ev.Marshal()).Err(); err != nil {
		slog.Warn("failed to publish slot event to redis, delivering locally only", "error", err.Error())
		b.hub.Publish(ev)
	}
}

// Start launches the relay loop. Call Stop to terminate it.
func (b *Bridge) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	b.cancel = cancel
	pubsub := b.client.Subscribe(ctx, b.channel)

	go func() {
		defer close(b.done)
		defer func() {
			if err := pubsub.Close(); err != nil {
				slog.Warn("failed to close redis subscription", "error", err.Error())
			}
		}()

		ch := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				ev, err := UnmarshalEvent([]byte(msg.Payload))
				if err != nil {
					slog.Warn("dropping malformed slot event from redis", "error", err.Error())
					continue
				}
				b.hub.Publish(ev)
			}
		}
	}()
}

func (b *Bridge) Stop() {
	if b.cancel != nil {
		b.cancel()
		<-b.done
	}
}
