package repository

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/projects/domain"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/projects/utils"
)

// MemoryRepository keeps projects in process memory. It backs STORE_DRIVER=memory
// for local development and is used as the store in service and handler tests.
type MemoryRepository struct {
	mu    sync.RWMutex
	items map[string]domain.Project
	order []string
	now   func() time.Time
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		items: make(map[string]domain.Project),
		now:   time.Now,
	}
}

func (r *MemoryRepository) Create(_ context.Context, draft domain.Fields) (*domain.Project, error) {
	if strings.TrimSpace(draft.Title) == "" {
		return nil, fmt.Errorf("title required: %w", domain.ErrInvalidInput)
	}
	draft = draft.Normalized()

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.items {
		if p.Title == draft.Title {
			return nil, domain.ErrDuplicateTitle
		}
	}

	id, err := utils.NewID("prj")
	if err != nil {
		return nil, err
	}
	now := r.now().UTC()
	p := domain.Project{
		ID:          id,
		Title:       draft.Title,
		Description: draft.Description,
		Images:      draft.Images,
		DemoURL:     draft.DemoURL,
		GithubURL:   draft.GithubURL,
		Tags:        draft.Tags,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	r.items[id] = p
	r.order = append(r.order, id)

	return clone(p), nil
}

func (r *MemoryRepository) GetAll(_ context.Context) ([]domain.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.order) == 0 {
		return nil, domain.ErrNotFound
	}
	out := make([]domain.Project, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, *clone(r.items[id]))
	}
	return out, nil
}

func (r *MemoryRepository) GetByID(_ context.Context, id string) (*domain.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return clone(p), nil
}

func (r *MemoryRepository) Update(_ context.Context, id string, fields domain.Fields) (*domain.Project, error) {
	fields = fields.Normalized()

	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	p.Title = fields.Title
	p.Description = fields.Description
	p.Images = fields.Images
	p.DemoURL = fields.DemoURL
	p.GithubURL = fields.GithubURL
	p.Tags = fields.Tags
	p.UpdatedAt = r.now().UTC()
	r.items[id] = p

	return clone(p), nil
}

func (r *MemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func clone(p domain.Project) *domain.Project {
	out := p
	out.Images = append([]string{}, p.Images...)
	out.Tags = append([]string{}, p.Tags...)
	return &out
}
