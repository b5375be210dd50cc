package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/logging"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/projects/domain"
)

const (
	allProjectsKey   = "portfolio:projects:all" // JSON array of every project
	projectKeyPrefix = "portfolio:project:"     // JSON of one project: portfolio:project:{id}
	defaultCacheTTL  = 10 * time.Minute
)

// CachedRepository is a read-through Redis cache in front of another Repository.
// Reads fall back to the wrapped store when Redis is unavailable; every
// successful write invalidates the affected keys.
type CachedRepository struct {
	next   Repository
	client *redis.Client
	ttl    time.Duration
	log    logging.Logger
}

func NewCachedRepository(next Repository, client *redis.Client, ttl time.Duration, log logging.Logger) *CachedRepository {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	if log == nil {
		log = logging.Nop()
	}
	return &CachedRepository{next: next, client: client, ttl: ttl, log: log}
}

func (r *CachedRepository) Create(ctx context.Context, draft domain.Fields) (*domain.Project, error) {
	p, err := r.next.Create(ctx, draft)
	if err != nil {
		return nil, err
	}
	r.invalidate(ctx)
	return p, nil
}

func (r *CachedRepository) GetAll(ctx context.Context) ([]domain.Project, error) {
	var cached []domain.Project
	if r.load(ctx, allProjectsKey, &cached) {
		return cached, nil
	}

	items, err := r.next.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	r.store(ctx, allProjectsKey, items)
	return items, nil
}

func (r *CachedRepository) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	var cached domain.Project
	if r.load(ctx, projectKey(id), &cached) {
		return &cached, nil
	}

	p, err := r.next.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	r.store(ctx, projectKey(id), p)
	return p, nil
}

func (r *CachedRepository) Update(ctx context.Context, id string, fields domain.Fields) (*domain.Project, error) {
	p, err := r.next.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	r.invalidate(ctx, projectKey(id))
	return p, nil
}

func (r *CachedRepository) Delete(ctx context.Context, id string) error {
	if err := r.next.Delete(ctx, id); err != nil {
		return err
	}
	r.invalidate(ctx, projectKey(id))
	return nil
}

func (r *CachedRepository) load(ctx context.Context, key string, dst any) bool {
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.log.Warn(ctx, "project cache read failed", "key", key, "error", err)
		}
		return false
	}
	if err := json.Unmarshal(data, dst); err != nil {
		r.log.Warn(ctx, "project cache entry is corrupt", "key", key, "error", err)
		return false
	}
	return true
}

func (r *CachedRepository) store(ctx context.Context, key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := r.client.Set(ctx, key, data, r.ttl).Err(); err != nil {
		r.log.Warn(ctx, "project cache write failed", "key", key, "error", err)
	}
}

func (r *CachedRepository) invalidate(ctx context.Context, keys ...string) {
	keys = append(keys, allProjectsKey)
	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		r.log.Warn(ctx, "project cache invalidation failed", "keys", keys, "error", err)
	}
}

func projectKey(id string) string {
	return projectKeyPrefix + id
}
