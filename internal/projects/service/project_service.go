package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/logging"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/projects/domain"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/projects/repository"
)

// Uploader stores incoming images and can remove them again.
// *uploads.Intake satisfies it.
type Uploader interface {
	Store(ctx context.Context, files []*multipart.FileHeader) ([]string, error)
	Discard(ctx context.Context, refs []string)
}

// CreateInput carries the raw multipart fields of a new project. RawTags
// holds every submitted value of the tags field.
type CreateInput struct {
	Title       string
	Description string
	DemoURL     string
	GithubURL   string
	RawTags     []string
	Files       []*multipart.FileHeader
}

// UpdateInput is CreateInput plus the images the client wants to keep.
type UpdateInput struct {
	CreateInput
	RawExistingImages []string
}

// ProjectService handles project-related business logic
type ProjectService struct {
	repo   repository.Repository
	intake Uploader
	log    logging.Logger
}

// NewProjectService creates a new project service
func NewProjectService(repo repository.Repository, intake Uploader, log logging.Logger) *ProjectService {
	if log == nil {
		log = logging.Nop()
	}
	return &ProjectService{repo: repo, intake: intake, log: log}
}

// Create stores the uploaded images and then the project that references them.
func (s *ProjectService) Create(ctx context.Context, in CreateInput) (*domain.Project, error) {
	if err := validate(in); err != nil {
		return nil, err
	}

	uploaded, err := s.intake.Store(ctx, in.Files)
	if err != nil {
		return nil, err
	}

	p, err := s.repo.Create(ctx, domain.Fields{
		Title:       in.Title,
		Description: in.Description,
		Images:      uploaded,
		DemoURL:     in.DemoURL,
		GithubURL:   in.GithubURL,
		Tags:        formList(in.RawTags, domain.ParseStringList),
	})
	if err != nil {
		s.intake.Discard(ctx, uploaded)
		return nil, err
	}

	s.log.Info(ctx, "project created", "project_id", p.ID, "images", len(p.Images))
	return p, nil
}

// Update replaces every field of the project. Images become the retained
// list followed by the new uploads. Titles are not re-checked for duplicates.
func (s *ProjectService) Update(ctx context.Context, id string, in UpdateInput) (*domain.Project, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	if err := validate(in.CreateInput); err != nil {
		return nil, err
	}

	uploaded, err := s.intake.Store(ctx, in.Files)
	if err != nil {
		return nil, err
	}

	p, err := s.repo.Update(ctx, id, domain.Fields{
		Title:       in.Title,
		Description: in.Description,
		Images:      domain.MergeImages(formList(in.RawExistingImages, domain.ParseRetainedList), uploaded),
		DemoURL:     in.DemoURL,
		GithubURL:   in.GithubURL,
		Tags:        formList(in.RawTags, domain.ParseStringList),
	})
	if err != nil {
		s.intake.Discard(ctx, uploaded)
		return nil, err
	}

	s.log.Info(ctx, "project updated", "project_id", p.ID, "images", len(p.Images))
	return p, nil
}

// GetAll returns every project; an empty store is domain.ErrNotFound.
func (s *ProjectService) GetAll(ctx context.Context) ([]domain.Project, error) {
	return s.repo.GetAll(ctx)
}

func (s *ProjectService) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	return s.repo.GetByID(ctx, id)
}

// Delete removes the record only. Stored images are left in place.
func (s *ProjectService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info(ctx, "project deleted", "project_id", id)
	return nil
}

// formList turns the values of a repeated form field into a list. A field
// sent once may itself encode a list, so it goes through parse.
func formList(values []string, parse func(string) []string) []string {
	switch len(values) {
	case 0:
		return []string{}
	case 1:
		return parse(values[0])
	default:
		return append([]string{}, values...)
	}
}

func validate(in CreateInput) error {
	if strings.TrimSpace(in.Title) == "" {
		return fmt.Errorf("title is required: %w", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(in.Description) == "" {
		return fmt.Errorf("description is required: %w", domain.ErrInvalidInput)
	}
	return nil
}
