package bootstrap

import (
	"context"

	"expertbook/internal/pkg/config"
	"expertbook/internal/realtime"
	"expertbook/internal/usecase/commands"

	"go.uber.org/fx"
)

var RealtimeModule = fx.Module("realtime",
	fx.Provide(
		realtime.NewHub,
		NewSlotEventPublisher,
	),
)

// NewSlotEventPublisher picks the broadcast path: with a Redis address the
// bridge relays events across instances, without one the local hub is the
// whole fan-out.
func NewSlotEventPublisher(lc fx.Lifecycle, cfg config.Config, hub *realtime.Hub) commands.SlotEventPublisher {
	if cfg.Redis.Address == "" {
		return hub
	}

	client := realtime.NewRedisClient(cfg.Redis)
	bridge := realtime.NewBridge(client, cfg.Redis.Channel, hub)

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			bridge.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			bridge.Stop()
			return client.Close()
		},
	})

	return bridge
}
