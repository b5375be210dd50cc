package uploads

import (
	"context"
	"io"
)

// Object describes one accepted image on its way to a Store.
type Object struct {
	OriginalName string
	ContentType  string
	Extension    string
	Size         int64
}

// Store persists image bytes and hands back a publicly reachable URL.
type Store interface {
	Save(ctx context.Context, obj Object, r io.Reader) (string, error)
	// Delete removes an object previously returned by Save. Unknown refs are not an error.
	Delete(ctx context.Context, ref string) error
}
