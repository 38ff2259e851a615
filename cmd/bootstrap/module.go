package bootstrap

import (
	"arbitat/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	JWTModule,
	SessionModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
