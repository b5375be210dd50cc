// Command seed loads projects from a YAML file into the configured store.
//
//	go run ./cmd/seed -file projects.yaml
//
// Image entries are stored as given; seed never uploads files. Projects whose
// title already exists are skipped.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/GoSim-25-26J-441/portfolio-backend/config"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/bootstrap"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/logging"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/projects/domain"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/projects/repository"
)

type seedFile struct {
	Projects []seedProject `yaml:"projects"`
}

type seedProject struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Images      []string `yaml:"images"`
	DemoURL     string   `yaml:"demoUrl"`
	GithubURL   string   `yaml:"githubUrl"`
	Tags        []string `yaml:"tags"`
}

func main() {
	file := flag.String("file", "projects.yaml", "YAML file with a top-level projects list")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	log := logging.New(cfg.App.Environment, cfg.App.LogLevel)
	ctx := context.Background()

	f, err := os.Open(*file)
	if err != nil {
		log.Error(ctx, "open seed file", "error", err)
		os.Exit(1)
	}
	defer f.Close()

	items, err := parseSeed(f)
	if err != nil {
		log.Error(ctx, "parse seed file", "file", *file, "error", err)
		os.Exit(1)
	}

	store, err := bootstrap.OpenStore(ctx, &cfg.Database, log)
	if err != nil {
		log.Error(ctx, "open store", "error", err)
		os.Exit(1)
	}
	defer store.Close(ctx)

	// Writing through the cache clears the keys a running server reads from.
	repo, rdb, err := bootstrap.WithCache(ctx, store.Repo, &cfg.Redis, log)
	if err != nil {
		log.Error(ctx, "open cache", "error", err)
		os.Exit(1)
	}
	if rdb != nil {
		defer rdb.Close()
	}

	created, skipped, err := seed(ctx, repo, items)
	if err != nil {
		log.Error(ctx, "seed failed", "created", created, "error", err)
		os.Exit(1)
	}
	log.Info(ctx, "seed finished", "created", created, "skipped", skipped)
}

func parseSeed(r io.Reader) ([]domain.Fields, error) {
	var sf seedFile
	if err := yaml.NewDecoder(r).Decode(&sf); err != nil {
		return nil, err
	}

	out := make([]domain.Fields, 0, len(sf.Projects))
	for i, p := range sf.Projects {
		if p.Title == "" || p.Description == "" {
			return nil, fmt.Errorf("project %d: title and description are required", i+1)
		}
		out = append(out, domain.Fields{
			Title:       p.Title,
			Description: p.Description,
			Images:      p.Images,
			DemoURL:     p.DemoURL,
			GithubURL:   p.GithubURL,
			Tags:        p.Tags,
		}.Normalized())
	}
	return out, nil
}

func seed(ctx context.Context, repo repository.Repository, items []domain.Fields) (created, skipped int, err error) {
	for _, item := range items {
		_, err := repo.Create(ctx, item)
		switch {
		case err == nil:
			created++
		case errors.Is(err, domain.ErrDuplicateTitle):
			skipped++
		default:
			return created, skipped, fmt.Errorf("%s: %w", item.Title, err)
		}
	}
	return created, skipped, nil
}
