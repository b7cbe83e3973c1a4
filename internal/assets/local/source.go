package local

import (
	"context"
	"embed"
	"io/fs"
	"mime"
	"os"
	"path"
	"strings"

	"github.com/bornholm/rentacar/internal/assets"
	"github.com/laher/mergefs"
	"github.com/pkg/errors"
)

//go:embed defaults/*.svg
var defaultsFs embed.FS

// Source serves assets from a directory, falling back to the bundled
// default images.
type Source struct {
	fs fs.FS
}

// Open implements assets.Source.
func (s *Source) Open(ctx context.Context, name string) (*assets.Object, error) {
	name = strings.TrimPrefix(path.Clean("/"+name), "/")

	if !fs.ValidPath(name) || name == "." {
		return nil, errors.WithStack(assets.ErrNotFound)
	}

	file, err := s.fs.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.WithStack(assets.ErrNotFound)
		}

		return nil, errors.WithStack(err)
	}

	stat, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, errors.WithStack(err)
	}

	if stat.IsDir() {
		file.Close()
		return nil, errors.WithStack(assets.ErrNotFound)
	}

	return &assets.Object{
		ReadCloser:  file,
		Name:        name,
		Size:        stat.Size(),
		ContentType: mime.TypeByExtension(path.Ext(name)),
		ModTime:     stat.ModTime(),
	}, nil
}

func NewSource(dir string) *Source {
	defaults, err := fs.Sub(defaultsFs, "defaults")
	if err != nil {
		panic(errors.WithStack(err))
	}

	var filesystem fs.FS = defaults
	if dir != "" {
		filesystem = mergefs.Merge(os.DirFS(dir), defaults)
	}

	return &Source{fs: filesystem}
}

var _ assets.Source = &Source{}
