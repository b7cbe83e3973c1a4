package s3

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/bornholm/rentacar/internal/assets"
	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
	"github.com/testcontainers/testcontainers-go"

	tcminio "github.com/testcontainers/testcontainers-go/modules/minio"
)

func TestSource(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping minio container test in short mode")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	container, err := tcminio.Run(ctx, "minio/minio:RELEASE.2024-01-16T16-07-38Z",
		tcminio.WithUsername("rentacar"),
		tcminio.WithPassword("rentacar-secret"),
	)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(container); err != nil {
			t.Logf("could not terminate container: %+v", errors.WithStack(err))
		}
	})

	endpoint, err := container.ConnectionString(ctx)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	source, err := assets.New(Type, map[string]any{
		"endpoint": endpoint,
		"user":     "rentacar",
		"secret":   "rentacar-secret",
		"secure":   "false",
		"bucket":   "storefront",
		"prefix":   "/images/",
	})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	client := source.(*Source).client

	if err := client.MakeBucket(ctx, "storefront", minio.MakeBucketOptions{}); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	content := "<svg>logo</svg>"

	_, err = client.PutObject(ctx, "storefront", "images/logo.svg", strings.NewReader(content), int64(len(content)), minio.PutObjectOptions{
		ContentType: "image/svg+xml",
	})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	obj, err := source.Open(ctx, "logo.svg")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	defer obj.Close()

	body, err := io.ReadAll(obj)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := content, string(body); e != g {
		t.Errorf("body: expected '%v', got '%v'", e, g)
	}

	if e, g := "image/svg+xml", obj.ContentType; e != g {
		t.Errorf("obj.ContentType: expected '%v', got '%v'", e, g)
	}

	if _, err := source.Open(ctx, "missing.svg"); !errors.Is(err, assets.ErrNotFound) {
		t.Errorf("err: expected '%v', got '%v'", assets.ErrNotFound, err)
	}
}
