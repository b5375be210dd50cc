package main

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoSim-25-26J-441/portfolio-backend/config"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/bootstrap"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/logging"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/projects/domain"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/projects/repository"
)

const sample = `
projects:
  - title: Portfolio
    description: Personal site
    tags: [Go, React]
    images:
      - https://cdn.example.com/portfolio/a.png
    demoUrl: https://example.com
  - title: CLI
    description: A small tool
`

func TestParseSeed(t *testing.T) {
	items, err := parseSeed(strings.NewReader(sample))
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, []string{"Go", "React"}, items[0].Tags)
	assert.Equal(t, "https://example.com", items[0].DemoURL)
	assert.Equal(t, []string{}, items[1].Images)
	assert.Equal(t, []string{}, items[1].Tags)

	_, err = parseSeed(strings.NewReader("projects:\n  - title: only title\n"))
	assert.Error(t, err)
}

func TestSeed_SkipsExistingTitles(t *testing.T) {
	ctx := context.Background()
	items, err := parseSeed(strings.NewReader(sample))
	require.NoError(t, err)

	repo := repository.NewMemoryRepository()
	created, skipped, err := seed(ctx, repo, items)
	require.NoError(t, err)
	assert.Equal(t, 2, created)
	assert.Zero(t, skipped)

	created, skipped, err = seed(ctx, repo, items)
	require.NoError(t, err)
	assert.Zero(t, created)
	assert.Equal(t, 2, skipped)
}

func TestSeed_RefreshesCachedListing(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	redisCfg := &config.RedisConfig{URL: "redis://" + mr.Addr(), CacheTTL: time.Minute}
	store := repository.NewMemoryRepository()

	// A running server has already cached the listing.
	server, serverClient, err := bootstrap.WithCache(ctx, store, redisCfg, logging.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { serverClient.Close() })
	_, err = server.Create(ctx, domain.Fields{Title: "Existing", Description: "d"})
	require.NoError(t, err)
	before, err := server.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, before, 1)

	items, err := parseSeed(strings.NewReader(sample))
	require.NoError(t, err)
	repo, seedClient, err := bootstrap.WithCache(ctx, store, redisCfg, logging.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { seedClient.Close() })

	_, _, err = seed(ctx, repo, items)
	require.NoError(t, err)

	after, err := server.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, after, 3)
}
