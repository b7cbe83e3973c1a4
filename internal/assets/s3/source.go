package s3

import (
	"context"
	"path"
	"strings"

	"github.com/bornholm/rentacar/internal/assets"
	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
)

type Source struct {
	client *minio.Client
	bucket string
	prefix string
}

// Open implements assets.Source.
func (s *Source) Open(ctx context.Context, name string) (*assets.Object, error) {
	key := strings.TrimPrefix(path.Join("/", s.prefix, path.Clean("/"+name)), "/")

	info, err := s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		if isNotFound(err) {
			return nil, errors.WithStack(assets.ErrNotFound)
		}

		return nil, errors.WithStack(err)
	}

	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &assets.Object{
		ReadCloser:  obj,
		Name:        key,
		Size:        info.Size,
		ContentType: info.ContentType,
		ModTime:     info.LastModified,
	}, nil
}

func isNotFound(err error) bool {
	resp := minio.ToErrorResponse(err)
	return resp.Code == "NoSuchKey" || resp.Code == "NoSuchBucket"
}

func NewSource(client *minio.Client, bucket string, prefix string) *Source {
	return &Source{
		client: client,
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
	}
}

var _ assets.Source = &Source{}
