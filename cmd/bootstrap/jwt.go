package bootstrap

import (
	"time"

	"staybook/internal/pkg/config"
	"staybook/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config) (*jwt.Service, error) {
	duration, err := time.ParseDuration(cfg.JWT.Duration)
	if err != nil {
		return nil, err
	}
	return jwt.NewService(cfg.JWT.Secret, duration, cfg.JWT.Issuer), nil
}
