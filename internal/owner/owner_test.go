package owner

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bornholm/rentacar/internal/authn"
	"github.com/bornholm/rentacar/internal/store"
	"github.com/bornholm/rentacar/internal/storefront"
	"github.com/bornholm/rentacar/internal/ui/navbar"
	"github.com/goccy/go-json"
	"github.com/gorilla/sessions"
	"github.com/pkg/errors"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()

	s := store.NewStore(filepath.Join(t.TempDir(), "test.db"))

	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Logf("could not close store: %+v", errors.WithStack(err))
		}
	})

	if err := s.HealthCheck(context.Background()); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	return s
}

func withUser(h http.Handler, user *store.User) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if user != nil {
			r = r.WithContext(authn.WithContextUser(r.Context(), user))
		}

		h.ServeHTTP(w, r)
	})
}

func TestChangeRole(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	customer, err := s.FindOrCreateUser(ctx, "customer", "github")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	owner, err := s.FindOrCreateUser(ctx, "owner", "github")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	owner, err = s.SetOwner(ctx, owner.ID, true)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	type testCase struct {
		Name            string
		User            *store.User
		ExpectedStatus  int
		ExpectedSuccess bool
		ExpectedMessage string
	}

	testCases := []testCase{
		{
			Name:            "Anonymous",
			User:            nil,
			ExpectedStatus:  http.StatusUnauthorized,
			ExpectedSuccess: false,
			ExpectedMessage: MessageNotAuthenticated,
		},
		{
			Name:            "Customer",
			User:            customer,
			ExpectedStatus:  http.StatusOK,
			ExpectedSuccess: true,
			ExpectedMessage: MessageRoleChanged,
		},
		{
			Name:            "Owner",
			User:            owner,
			ExpectedStatus:  http.StatusOK,
			ExpectedSuccess: true,
			ExpectedMessage: MessageRoleChanged,
		},
	}

	handler := NewAPIHandler(navbar.DefaultChangeRolePath, s)

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, navbar.DefaultChangeRolePath, nil)
			res := httptest.NewRecorder()

			withUser(handler, tc.User).ServeHTTP(res, req)

			if e, g := tc.ExpectedStatus, res.Code; e != g {
				t.Errorf("res.Code: expected '%v', got '%v'", e, g)
			}

			if e, g := "application/json", res.Header().Get("Content-Type"); e != g {
				t.Errorf("Content-Type: expected '%v', got '%v'", e, g)
			}

			var payload navbar.RoleChangeResponse
			if err := json.Unmarshal(res.Body.Bytes(), &payload); err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			if e, g := tc.ExpectedSuccess, payload.Success; e != g {
				t.Errorf("payload.Success: expected '%v', got '%v'", e, g)
			}

			if e, g := tc.ExpectedMessage, payload.Message; e != g {
				t.Errorf("payload.Message: expected '%v', got '%v'", e, g)
			}
		})
	}

	updated, err := s.GetUserByID(ctx, customer.ID)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if !updated.IsOwner {
		t.Errorf("updated.IsOwner: expected customer to be an owner")
	}

	count, err := s.CountOwners(ctx)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := int64(2), count; e != g {
		t.Errorf("count: expected '%v', got '%v'", e, g)
	}
}

func TestDashboard(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	customer, err := s.FindOrCreateUser(ctx, "customer", "github")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	owner, err := s.FindOrCreateUser(ctx, "owner", "github")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	owner, err = s.SetOwner(ctx, owner.ID, true)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	pages := storefront.NewHandler(sessions.NewCookieStore([]byte("0123456789abcdef0123456789abcdef")))
	handler := NewHandler("/owner", s, pages)

	t.Run("Customer", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/owner", nil)
		res := httptest.NewRecorder()

		withUser(handler, customer).ServeHTTP(res, req)

		if e, g := http.StatusSeeOther, res.Code; e != g {
			t.Errorf("res.Code: expected '%v', got '%v'", e, g)
		}

		if e, g := "/", res.Header().Get("Location"); e != g {
			t.Errorf("Location: expected '%v', got '%v'", e, g)
		}

		if len(res.Result().Cookies()) == 0 {
			t.Errorf("cookies: expected notification to be kept in session")
		}
	})

	t.Run("Owner", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/owner", nil)
		res := httptest.NewRecorder()

		withUser(handler, owner).ServeHTTP(res, req)

		if e, g := http.StatusOK, res.Code; e != g {
			t.Fatalf("res.Code: expected '%v', got '%v'", e, g)
		}

		body := res.Body.String()

		for _, expected := range []string{"Owner dashboard", `id="navbar"`, "Dashboard", "Owner since"} {
			if !strings.Contains(body, expected) {
				t.Errorf("body: expected to contain '%s'", expected)
			}
		}
	})
}
