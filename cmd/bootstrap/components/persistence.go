package components

import (
	"context"

	"pawhaven/internal/infra/store"
	"pawhaven/internal/infra/store/postgres"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		postgres.New,
		func(s *postgres.Store) store.EntityStore { return s },
	),
	fx.Invoke(applySchema),
)

func applySchema(lc fx.Lifecycle, s *postgres.Store) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return s.EnsureSchema(ctx)
		},
	})
}
