package bootstrap

import (
	"thejulge/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	KVModule,
	GatewayModule,
	components.UseCaseModule,
	components.HandlerModule,
)
