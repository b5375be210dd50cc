package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/projects/domain"
)

func TestMemoryRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("round-trips tags and empty images", func(t *testing.T) {
		repo := NewMemoryRepository()
		p, err := repo.Create(ctx, domain.Fields{Title: "Go", Description: "d", Tags: []string{"Go", "Rust"}})
		require.NoError(t, err)

		got, err := repo.GetByID(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{}, got.Images)
		assert.Equal(t, []string{"Go", "Rust"}, got.Tags)
	})

	t.Run("duplicate title on create", func(t *testing.T) {
		repo := NewMemoryRepository()
		_, err := repo.Create(ctx, domain.Fields{Title: "Go", Description: "d"})
		require.NoError(t, err)

		_, err = repo.Create(ctx, domain.Fields{Title: "Go", Description: "different", Tags: []string{"x"}})
		assert.ErrorIs(t, err, domain.ErrDuplicateTitle)

		_, err = repo.Create(ctx, domain.Fields{Title: "go", Description: "d"})
		assert.NoError(t, err, "title match is case-sensitive")
	})

	t.Run("update may duplicate a title", func(t *testing.T) {
		repo := NewMemoryRepository()
		_, err := repo.Create(ctx, domain.Fields{Title: "A", Description: "d"})
		require.NoError(t, err)
		b, err := repo.Create(ctx, domain.Fields{Title: "B", Description: "d"})
		require.NoError(t, err)

		_, err = repo.Update(ctx, b.ID, domain.Fields{Title: "A", Description: "d"})
		require.NoError(t, err)

		items, err := repo.GetAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, "A", items[0].Title)
		assert.Equal(t, "A", items[1].Title)
	})

	t.Run("delete then get is not found", func(t *testing.T) {
		repo := NewMemoryRepository()
		p, err := repo.Create(ctx, domain.Fields{Title: "A", Description: "d"})
		require.NoError(t, err)

		require.NoError(t, repo.Delete(ctx, p.ID))
		_, err = repo.GetByID(ctx, p.ID)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.ErrorIs(t, repo.Delete(ctx, p.ID), domain.ErrNotFound)

		_, err = repo.GetAll(ctx)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("returned projects do not alias the store", func(t *testing.T) {
		repo := NewMemoryRepository()
		p, err := repo.Create(ctx, domain.Fields{Title: "A", Description: "d", Tags: []string{"Go"}})
		require.NoError(t, err)
		p.Tags[0] = "mutated"

		got, err := repo.GetByID(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{"Go"}, got.Tags)
	})
}
