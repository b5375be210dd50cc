package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/projects/domain"
)

var projectRowColumns = []string{
	"id", "title", "description", "images", "demo_url", "github_url", "tags", "created_at", "updated_at",
}

func setupProjectRepo(t *testing.T) (*ProjectRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	return NewProjectRepository(db), mock, db
}

func TestProjectRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("inserts a new project", func(t *testing.T) {
		repo, mock, db := setupProjectRepo(t)
		defer db.Close()

		now := time.Now()
		mock.ExpectBegin()
		mock.ExpectExec(`pg_advisory_xact_lock`).
			WithArgs("Gopher").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(`select exists`).
			WithArgs("Gopher").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectQuery(`insert into projects`).
			WithArgs(
				sqlmock.AnyArg(), // id
				"Gopher",
				"A gopher",
				sqlmock.AnyArg(), // images
				"",
				"https://github.com/x/gopher",
				sqlmock.AnyArg(), // tags
			).
			WillReturnRows(sqlmock.NewRows(projectRowColumns).
				AddRow("prj_1", "Gopher", "A gopher", "{}", "", "https://github.com/x/gopher", "{Go,Rust}", now, now))
		mock.ExpectCommit()

		p, err := repo.Create(ctx, domain.Fields{
			Title:       "Gopher",
			Description: "A gopher",
			GithubURL:   "https://github.com/x/gopher",
			Tags:        []string{"Go", "Rust"},
		})
		require.NoError(t, err)
		assert.Equal(t, "prj_1", p.ID)
		assert.Equal(t, []string{}, p.Images)
		assert.Equal(t, []string{"Go", "Rust"}, p.Tags)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rejects a duplicate title", func(t *testing.T) {
		repo, mock, db := setupProjectRepo(t)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectExec(`pg_advisory_xact_lock`).
			WithArgs("Gopher").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(`select exists`).
			WithArgs("Gopher").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
		mock.ExpectRollback()

		_, err := repo.Create(ctx, domain.Fields{Title: "Gopher", Description: "other"})
		assert.ErrorIs(t, err, domain.ErrDuplicateTitle)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("requires a title", func(t *testing.T) {
		repo, mock, db := setupProjectRepo(t)
		defer db.Close()

		_, err := repo.Create(ctx, domain.Fields{Title: "  "})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProjectRepository_GetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("returns projects in order", func(t *testing.T) {
		repo, mock, db := setupProjectRepo(t)
		defer db.Close()

		now := time.Now()
		mock.ExpectQuery(`select id, title`).
			WillReturnRows(sqlmock.NewRows(projectRowColumns).
				AddRow("prj_1", "One", "first", "{a.png,b.png}", "", "", "{Go}", now, now).
				AddRow("prj_2", "Two", "second", "{}", "https://demo", "", "{}", now, now))

		items, err := repo.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "prj_1", items[0].ID)
		assert.Equal(t, []string{"a.png", "b.png"}, items[0].Images)
		assert.Equal(t, []string{}, items[1].Tags)
		assert.Equal(t, "https://demo", items[1].DemoURL)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty collection is not found", func(t *testing.T) {
		repo, mock, db := setupProjectRepo(t)
		defer db.Close()

		mock.ExpectQuery(`select id, title`).
			WillReturnRows(sqlmock.NewRows(projectRowColumns))

		_, err := repo.GetAll(ctx)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProjectRepository_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("finds a project", func(t *testing.T) {
		repo, mock, db := setupProjectRepo(t)
		defer db.Close()

		now := time.Now()
		mock.ExpectQuery(`from projects`).
			WithArgs("prj_1").
			WillReturnRows(sqlmock.NewRows(projectRowColumns).
				AddRow("prj_1", "One", "first", "{a.png}", "", "", "{Go,Rust}", now, now))

		p, err := repo.GetByID(ctx, "prj_1")
		require.NoError(t, err)
		assert.Equal(t, "One", p.Title)
		assert.Equal(t, []string{"Go", "Rust"}, p.Tags)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing id is not found", func(t *testing.T) {
		repo, mock, db := setupProjectRepo(t)
		defer db.Close()

		mock.ExpectQuery(`from projects`).
			WithArgs("nope").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetByID(ctx, "nope")
		assert.ErrorIs(t, err, domain.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProjectRepository_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("overwrites all fields without a title check", func(t *testing.T) {
		repo, mock, db := setupProjectRepo(t)
		defer db.Close()

		now := time.Now()
		mock.ExpectQuery(`update projects`).
			WithArgs("prj_1", "Same Title", "desc", sqlmock.AnyArg(), "", "", sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows(projectRowColumns).
				AddRow("prj_1", "Same Title", "desc", "{b.png,c.png}", "", "", "{Go}", now, now))

		p, err := repo.Update(ctx, "prj_1", domain.Fields{
			Title:       "Same Title",
			Description: "desc",
			Images:      []string{"b.png", "c.png"},
			Tags:        []string{"Go"},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"b.png", "c.png"}, p.Images)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing id is not found", func(t *testing.T) {
		repo, mock, db := setupProjectRepo(t)
		defer db.Close()

		mock.ExpectQuery(`update projects`).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.Update(ctx, "nope", domain.Fields{Title: "x"})
		assert.ErrorIs(t, err, domain.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProjectRepository_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes an existing project", func(t *testing.T) {
		repo, mock, db := setupProjectRepo(t)
		defer db.Close()

		mock.ExpectExec(`delete from projects`).
			WithArgs("prj_1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.Delete(ctx, "prj_1"))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing id is not found", func(t *testing.T) {
		repo, mock, db := setupProjectRepo(t)
		defer db.Close()

		mock.ExpectExec(`delete from projects`).
			WithArgs("nope").
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(ctx, "nope"), domain.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
