package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/GoSim-25-26J-441/portfolio-backend/config"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/logging"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/projects/repository"
)

// OpenRedis returns nil when no URL is configured.
func OpenRedis(ctx context.Context, url string) (*redis.Client, error) {
	if url == "" {
		return nil, nil
	}

	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse REDIS_URL: %w", err)
	}
	client := redis.NewClient(opts)

	pctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}

// WithCache opens Redis when configured and puts the project cache in front of
// repo. It returns repo unchanged and a nil client when caching is disabled.
func WithCache(ctx context.Context, repo repository.Repository, cfg *config.RedisConfig, log logging.Logger) (repository.Repository, *redis.Client, error) {
	client, err := OpenRedis(ctx, cfg.URL)
	if err != nil {
		return nil, nil, err
	}
	if client == nil {
		return repo, nil, nil
	}
	return repository.NewCachedRepository(repo, client, cfg.CacheTTL, log), client, nil
}
