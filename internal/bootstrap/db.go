package bootstrap

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/GoSim-25-26J-441/portfolio-backend/config"
	httpapi "github.com/GoSim-25-26J-441/portfolio-backend/internal/api/http"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/logging"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/projects/repository"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/storage/postgres"
)

// Store is the opened project store plus what the server needs to probe and close it.
type Store struct {
	Repo  repository.Repository
	Ping  httpapi.PingFunc
	Close func(ctx context.Context) error
}

// OpenStore connects the backend selected by STORE_DRIVER and prepares its schema.
func OpenStore(ctx context.Context, cfg *config.DatabaseConfig, log logging.Logger) (*Store, error) {
	switch cfg.Driver {
	case "postgres":
		db, err := postgres.NewConnection(ctx, cfg)
		if err != nil {
			return nil, err
		}
		if err := postgres.Migrate(ctx, db); err != nil {
			db.Close()
			return nil, err
		}
		log.Info(ctx, "project store ready", "driver", "postgres")
		return &Store{
			Repo:  repository.NewProjectRepository(db),
			Ping:  db.PingContext,
			Close: func(context.Context) error { return db.Close() },
		}, nil

	case "mongo":
		cctx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		client, err := mongo.Connect(cctx, options.Client().ApplyURI(cfg.MongoURL))
		if err != nil {
			return nil, fmt.Errorf("mongo connect: %w", err)
		}
		if err := client.Ping(cctx, nil); err != nil {
			client.Disconnect(ctx)
			return nil, fmt.Errorf("mongo ping: %w", err)
		}

		repo := repository.NewMongoRepository(client.Database(cfg.MongoDB))
		if err := repo.EnsureIndexes(cctx); err != nil {
			client.Disconnect(ctx)
			return nil, fmt.Errorf("mongo indexes: %w", err)
		}
		log.Info(ctx, "project store ready", "driver", "mongo", "database", cfg.MongoDB)
		return &Store{
			Repo:  repo,
			Ping:  func(ctx context.Context) error { return client.Ping(ctx, nil) },
			Close: client.Disconnect,
		}, nil

	case "memory":
		log.Warn(ctx, "using in-memory project store; data is lost on restart")
		return &Store{
			Repo:  repository.NewMemoryRepository(),
			Close: func(context.Context) error { return nil },
		}, nil
	}

	return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
}
