package setup

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/bornholm/rentacar/internal/assets"
	"github.com/bornholm/rentacar/internal/assets/local"
	"github.com/bornholm/rentacar/internal/authn"
	"github.com/bornholm/rentacar/internal/config"
	"github.com/bornholm/rentacar/internal/store"
	"github.com/pkg/errors"
)

func TestCreateFromConfigOnce(t *testing.T) {
	var calls atomic.Int32

	create := createFromConfigOnce(func(ctx context.Context, conf *config.Config) (int32, error) {
		return calls.Add(1), nil
	})

	conf := config.NewDefaultConfig()

	for i := 0; i < 3; i++ {
		value, err := create(context.Background(), conf)
		if err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		if e, g := int32(1), value; e != g {
			t.Errorf("value: expected '%v', got '%v'", e, g)
		}
	}

	if e, g := int32(1), calls.Load(); e != g {
		t.Errorf("calls: expected '%v', got '%v'", e, g)
	}
}

func TestGetVisitorKey(t *testing.T) {
	type testCase struct {
		Name     string
		User     authn.User
		Expected string
	}

	testCases := []testCase{
		{
			Name:     "Anonymous",
			User:     nil,
			Expected: "192.0.2.1",
		},
		{
			Name:     "Authenticated",
			User:     &store.User{Subject: "jdoe", Provider: "github"},
			Expected: "github-jdoe",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/navbar/role", nil)
			if tc.User != nil {
				req = req.WithContext(authn.WithContextUser(req.Context(), tc.User))
			}

			key, err := getVisitorKey(req)
			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			if e, g := tc.Expected, key; e != g {
				t.Errorf("key: expected '%v', got '%v'", e, g)
			}
		})
	}
}

func TestAssetURL(t *testing.T) {
	handler := assets.NewHandler("/assets", local.NewSource(""))

	if e, g := "/assets/logo.svg", assetURL(handler, "logo.svg"); e != g {
		t.Errorf("assetURL: expected '%v', got '%v'", e, g)
	}

	if e, g := "https://cdn.example.com/logo.svg", assetURL(handler, "https://cdn.example.com/logo.svg"); e != g {
		t.Errorf("assetURL: expected '%v', got '%v'", e, g)
	}
}
