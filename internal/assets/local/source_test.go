package local

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/bornholm/rentacar/internal/assets"
	"github.com/pkg/errors"
)

func TestSource(t *testing.T) {
	dir := t.TempDir()

	if err := os.WriteFile(filepath.Join(dir, "logo.svg"), []byte("<svg>custom</svg>"), 0o644); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	source, err := assets.New(Type, map[string]any{"dir": dir})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	ctx := context.Background()

	type testCase struct {
		Name          string
		ExpectedBody  string
		ExpectedError error
	}

	testCases := []testCase{
		{Name: "logo.svg", ExpectedBody: "<svg>custom</svg>"},
		{Name: "/logo.svg", ExpectedBody: "<svg>custom</svg>"},
		{Name: "menu_icon.svg"},
		{Name: "missing.svg", ExpectedError: assets.ErrNotFound},
		{Name: "../../etc/passwd", ExpectedError: assets.ErrNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			obj, err := source.Open(ctx, tc.Name)
			if tc.ExpectedError != nil {
				if !errors.Is(err, tc.ExpectedError) {
					t.Fatalf("err: expected '%v', got '%v'", tc.ExpectedError, err)
				}

				return
			}

			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			defer obj.Close()

			if e, g := "image/svg+xml", obj.ContentType; e != g {
				t.Errorf("obj.ContentType: expected '%v', got '%v'", e, g)
			}

			body, err := io.ReadAll(obj)
			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			if tc.ExpectedBody != "" {
				if e, g := tc.ExpectedBody, string(body); e != g {
					t.Errorf("body: expected '%v', got '%v'", e, g)
				}
			} else if len(body) == 0 {
				t.Errorf("body: expected bundled default, got empty content")
			}
		})
	}
}
