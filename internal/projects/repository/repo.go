package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/projects/domain"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/projects/utils"
)

const projectColumns = `id, title, description, images, demo_url, github_url, tags, created_at, updated_at`

// ProjectRepository provides PostgreSQL persistence for projects.
type ProjectRepository struct {
	db *sql.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *sql.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create inserts a new project. The title check and the insert run in one
// transaction holding an advisory lock on the title, so two concurrent creates
// with the same title cannot both pass the check.
func (r *ProjectRepository) Create(ctx context.Context, draft domain.Fields) (*domain.Project, error) {
	if strings.TrimSpace(draft.Title) == "" {
		return nil, fmt.Errorf("title required: %w", domain.ErrInvalidInput)
	}
	draft = draft.Normalized()

	id, err := utils.NewID("prj")
	if err != nil {
		return nil, err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `select pg_advisory_xact_lock(hashtext($1))`, draft.Title); err != nil {
		return nil, fmt.Errorf("lock title: %w", err)
	}

	var exists bool
	if err := tx.QueryRowContext(ctx, `select exists(select 1 from projects where title = $1)`, draft.Title).
		Scan(&exists); err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateTitle
	}

	const q = `
insert into projects (id, title, description, images, demo_url, github_url, tags)
values ($1, $2, $3, $4, $5, $6, $7)
returning ` + projectColumns + `;
`
	p, err := scanProject(tx.QueryRowContext(ctx, q,
		id, draft.Title, draft.Description, pq.Array(draft.Images),
		draft.DemoURL, draft.GithubURL, pq.Array(draft.Tags),
	))
	if err != nil {
		// unique violation on id
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, fmt.Errorf("project id collision: %w", err)
		}
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return p, nil
}

// GetAll returns every project in creation order.
func (r *ProjectRepository) GetAll(ctx context.Context) ([]domain.Project, error) {
	const q = `
select ` + projectColumns + `
from projects
order by created_at asc, id asc;
`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Project, 0, 16)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, domain.ErrNotFound
	}
	return out, nil
}

// GetByID returns one project.
func (r *ProjectRepository) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	const q = `
select ` + projectColumns + `
from projects
where id = $1;
`
	p, err := scanProject(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

// Update overwrites every mutable field. The title is not re-checked.
func (r *ProjectRepository) Update(ctx context.Context, id string, fields domain.Fields) (*domain.Project, error) {
	fields = fields.Normalized()

	const q = `
update projects
set title = $2, description = $3, images = $4, demo_url = $5, github_url = $6, tags = $7, updated_at = now()
where id = $1
returning ` + projectColumns + `;
`
	p, err := scanProject(r.db.QueryRowContext(ctx, q,
		id, fields.Title, fields.Description, pq.Array(fields.Images),
		fields.DemoURL, fields.GithubURL, pq.Array(fields.Tags),
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

// Delete removes a project permanently.
func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `delete from projects where id = $1;`, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (*domain.Project, error) {
	var p domain.Project
	images := pq.StringArray{}
	tags := pq.StringArray{}
	if err := row.Scan(
		&p.ID, &p.Title, &p.Description, &images,
		&p.DemoURL, &p.GithubURL, &tags,
		&p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	p.Images = nonNil(images)
	p.Tags = nonNil(tags)
	return &p, nil
}

func nonNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
