package assets

import (
	"context"
	"io"
	"time"

	"github.com/pkg/errors"
)

var (
	ErrNotFound = errors.New("not found")
)

type Type string

// Source gives access to the storefront static images.
type Source interface {
	Open(ctx context.Context, name string) (*Object, error)
}

type Object struct {
	io.ReadCloser

	Name        string
	Size        int64
	ContentType string
	ModTime     time.Time
}
