// Package persistence selects the backing store for the process.
//
// The decision is made exactly once at startup: when PostgreSQL is
// configured and reachable, the relational repositories are used; otherwise
// the service runs on the in-memory repositories for its whole lifetime.
// No operation ever switches backends per call.
package persistence

import (
	"log/slog"

	"promofinder/config"
	"promofinder/internal/domain/repository"
	"promofinder/internal/infra/persistence/memory"
	"promofinder/internal/infra/persistence/postgres"

	"go.uber.org/fx"
)

// Params defines the required parameters.
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// Stores bundles the repositories of the chosen backend.
type Stores struct {
	fx.Out

	Businesses repository.BusinessRepository
	Offers     repository.OfferRepository
}

// New decides the backing store and constructs both repositories from it.
// A PostgreSQL failure is recovered locally by falling back to memory; it is
// logged as a warning and never propagated.
func New(params Params) Stores {
	if params.Config.Postgres == nil {
		params.Logger.Info("no PostgreSQL configured, using in-memory store")

		return memoryStores()
	}

	db, err := postgres.New(params.Config.Postgres, params.Logger)
	if err != nil {
		params.Logger.Warn("PostgreSQL unavailable, falling back to in-memory store",
			slog.Any("error", err),
		)

		return memoryStores()
	}

	return Stores{
		Businesses: postgres.NewBusinessRepository(db),
		Offers:     postgres.NewOfferRepository(db),
	}
}

func memoryStores() Stores {
	return Stores{
		Businesses: memory.NewBusinessRepository(),
		Offers:     memory.NewOfferRepository(),
	}
}
