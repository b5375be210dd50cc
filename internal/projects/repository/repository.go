package repository

import (
	"context"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/projects/domain"
)

// Repository is the project store. Implementations return domain.ErrNotFound
// for missing ids and domain.ErrDuplicateTitle when Create hits an existing title.
type Repository interface {
	Create(ctx context.Context, draft domain.Fields) (*domain.Project, error)
	GetAll(ctx context.Context) ([]domain.Project, error)
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	Update(ctx context.Context, id string, fields domain.Fields) (*domain.Project, error)
	Delete(ctx context.Context, id string) error
}
