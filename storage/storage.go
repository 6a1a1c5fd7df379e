package storage

import (
	"context"
	"io"
)

// Uploader writes a blob once and returns a durable fetch URL for it.
type Uploader interface {
	Upload(ctx context.Context, filename string, file io.Reader) (string, error)
}
