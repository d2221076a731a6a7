package bootstrap

import (
	"stayhub/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.FeeConfig { return cfg.Fees },
		func(cfg config.Config) config.VerificationConfig { return cfg.Verification },
	),
)
