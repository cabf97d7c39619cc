package main

import (
	"context"
	"fmt"

	"github.com/zhu4ok/Software-architecture-lab5/internal/config"
	"github.com/zhu4ok/Software-architecture-lab5/internal/platform/mongodb"
	"github.com/zhu4ok/Software-architecture-lab5/internal/platform/postgres"
	"github.com/zhu4ok/Software-architecture-lab5/internal/store"
)

// connectStore opens the configured backend, keeps its handle on app for
// cleanup, and returns the user store built on it.
func (app *application) connectStore(ctx context.Context) (store.UserStore, error) {
	dbCfg := app.config.Database
	url := dbCfg.ConnectionURL()

	switch dbCfg.Driver {
	case config.DriverPostgres:
		db, err := postgres.Open(ctx, url, app.logger)
		if err != nil {
			return nil, err
		}
		if err := postgres.Migrate(ctx, db, app.logger); err != nil {
			_ = db.Close()
			return nil, err
		}
		app.db = db
		return postgres.NewPostgresUserStore(db, app.logger), nil

	case config.DriverMongo:
		client, err := mongodb.Connect(ctx, url, app.logger)
		if err != nil {
			return nil, err
		}
		app.mongoClient = client
		return mongodb.NewMongoUserStore(client.Database(dbCfg.Name), dbCfg.Collection, app.logger), nil

	default:
		return nil, fmt.Errorf("unsupported database driver %q", dbCfg.Driver)
	}
}
