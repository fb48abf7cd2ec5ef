package dbfx

import (
	"context"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"vibeplan/internal/infra"
)

var Module = fx.Options(
	fx.Provide(provideDatabase),
	fx.Invoke(registerClose),
)

func provideDatabase() *gorm.DB {
	return infra.InitPostgresql()
}

func registerClose(lc fx.Lifecycle, db *gorm.DB) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			infra.ClosePostgresql(db)
			return nil
		},
	})
}
