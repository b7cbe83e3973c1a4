package authn

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
)

type testUser struct {
	subject  string
	provider string
}

func (u *testUser) UserSubject() string  { return u.subject }
func (u *testUser) UserProvider() string { return u.provider }

func TestChain(t *testing.T) {
	jdoe := &testUser{subject: "jdoe", provider: "github"}

	type testCase struct {
		Name            string
		Options         []MiddlewareOptionFunc
		ExpectedStatus  int
		ExpectedSubject string
	}

	authenticated := AuthenticateFunc(func(w http.ResponseWriter, r *http.Request) (User, error) {
		return jdoe, nil
	})

	anonymous := AuthenticateFunc(func(w http.ResponseWriter, r *http.Request) (User, error) {
		return nil, nil
	})

	testCases := []testCase{
		{
			Name:            "Authenticated",
			Options:         []MiddlewareOptionFunc{WithAuthenticators(anonymous, authenticated)},
			ExpectedStatus:  http.StatusOK,
			ExpectedSubject: "jdoe",
		},
		{
			Name:           "Unauthorized",
			Options:        []MiddlewareOptionFunc{WithAuthenticators(anonymous)},
			ExpectedStatus: http.StatusUnauthorized,
		},
		{
			Name:           "Anonymous",
			Options:        []MiddlewareOptionFunc{WithAuthenticators(anonymous), WithAnonymous()},
			ExpectedStatus: http.StatusOK,
		},
		{
			Name: "OnAuthenticatedError",
			Options: []MiddlewareOptionFunc{
				WithAuthenticators(authenticated),
				WithOnAuthenticated(func(r *http.Request, user User) (*http.Request, error) {
					return nil, errors.New("store unavailable")
				}),
			},
			ExpectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			var subject string

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				user, err := ContextUser(r.Context())
				if err == nil {
					subject = user.UserSubject()
				} else if !errors.Is(err, ErrNoUser) {
					t.Errorf("err: expected '%v', got '%v'", ErrNoUser, err)
				}

				w.WriteHeader(http.StatusOK)
			})

			handler := Chain(tc.Options...)(next)

			res := httptest.NewRecorder()
			handler.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/", nil))

			if e, g := tc.ExpectedStatus, res.Code; e != g {
				t.Errorf("res.Code: expected '%v', got '%v'", e, g)
			}

			if e, g := tc.ExpectedSubject, subject; e != g {
				t.Errorf("subject: expected '%v', got '%v'", e, g)
			}
		})
	}
}
