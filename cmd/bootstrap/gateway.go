package bootstrap

import (
	"context"
	"log/slog"

	"thejulge/internal/infra/gateway"
	"thejulge/internal/infra/kv"
	"thejulge/internal/infra/recency"
	"thejulge/internal/infra/session"
	"thejulge/internal/pkg/config"
	"thejulge/internal/usecase/commands"
	"thejulge/internal/usecase/queries"

	"go.uber.org/fx"
)

// GatewayModule wires the remote API client, the client-local session and the
// recently viewed cache. The concrete client satisfies several narrow ports;
// each binding below hands it out under exactly one of them.
var GatewayModule = fx.Module("gateway",
	fx.Provide(
		func(cfg config.Config) config.RemoteConfig { return cfg.Remote },
		NewSession,
		recency.New,
		gateway.NewClient,
		gateway.NewNoticeSnapshots,

		func(c *gateway.Client) queries.NoticeReader { return c },
		func(c *gateway.Client) queries.NoticeDetailReader { return c },
		func(c *gateway.Client) queries.ProfileReader { return c },
		func(c *gateway.Client) commands.ApplicationGateway { return c },
		func(c *gateway.Client) commands.ProfileGateway { return c },
		func(c *gateway.Client) commands.AuthGateway { return c },
		func(a *gateway.NoticeSnapshots) commands.NoticeGateway { return a },
		func(s *session.Session) commands.SessionWriter { return s },
	),
)

// NewSession rehydrates the persisted identity on startup, before the server
// starts accepting requests.
func NewSession(lc fx.Lifecycle, store kv.Store, logger *slog.Logger) *session.Session {
	sess := session.New(store)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := sess.Init(ctx); err != nil {
				logger.Warn("session rehydration failed, starting signed out", "error", err)
			}
			return nil
		},
	})

	return sess
}
