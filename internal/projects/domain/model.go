package domain

import "time"

// Project is a single portfolio work item.
// It is storage-agnostic and shared by the repository, service and HTTP layers.
// The id is exposed as "_id" so existing frontends keep working against either store.
type Project struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Images      []string  `json:"images"`
	DemoURL     string    `json:"demoUrl,omitempty"`
	GithubURL   string    `json:"githubUrl,omitempty"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Fields holds every mutable field of a project. It is used both as the creation
// draft and as the full-overwrite payload of an update.
type Fields struct {
	Title       string
	Description string
	Images      []string
	DemoURL     string
	GithubURL   string
	Tags        []string
}

// Normalized returns a copy whose Images and Tags are never nil, so they are
// always persisted and rendered as sequences.
func (f Fields) Normalized() Fields {
	out := f
	out.Images = cloneList(f.Images)
	out.Tags = cloneList(f.Tags)
	return out
}

func cloneList(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
