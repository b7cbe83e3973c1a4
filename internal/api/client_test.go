package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
)

func TestVisitorClient(t *testing.T) {
	type testCase struct {
		Name            string
		Handler         http.HandlerFunc
		ExpectedSuccess bool
		ExpectedMessage string
		ExpectError     bool
	}

	testCases := []testCase{
		{
			Name: "Success",
			Handler: func(w http.ResponseWriter, r *http.Request) {
				if e, g := http.MethodPost, r.Method; e != g {
					t.Errorf("r.Method: expected '%v', got '%v'", e, g)
				}

				if e, g := "/api/owner/change-role", r.URL.Path; e != g {
					t.Errorf("r.URL.Path: expected '%v', got '%v'", e, g)
				}

				cookie, err := r.Cookie("rentacar_auth")
				if err != nil || cookie.Value != "session" {
					t.Errorf("cookie: expected visitor cookie to be forwarded, got '%v'", cookie)
				}

				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`{"success":true,"message":"Now you can list cars"}`))
			},
			ExpectedSuccess: true,
			ExpectedMessage: "Now you can list cars",
		},
		{
			Name: "Refused",
			Handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json; charset=utf-8")
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"success":false,"message":"Not authorized"}`))
			},
			ExpectedSuccess: false,
			ExpectedMessage: "Not authorized",
		},
		{
			Name: "ServerError",
			Handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte(`{"success":false,"message":"Could not change role"}`))
			},
			ExpectedSuccess: false,
			ExpectedMessage: "Could not change role",
		},
		{
			Name: "NotJSON",
			Handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "bad gateway", http.StatusBadGateway)
			},
			ExpectError: true,
		},
		{
			Name: "Malformed",
			Handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`{"success":`))
			},
			ExpectError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			server := httptest.NewServer(tc.Handler)
			defer server.Close()

			client, err := NewClient(server.URL, 5*time.Second)
			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			req := httptest.NewRequest(http.MethodPost, "/navbar/role", nil)
			req.AddCookie(&http.Cookie{Name: "rentacar_auth", Value: "session"})

			res, err := client.ForRequest(req).Post(context.Background(), "/api/owner/change-role")
			if tc.ExpectError {
				if err == nil {
					t.Fatalf("err: expected error, got response '%v'", res)
				}

				return
			}

			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			if e, g := tc.ExpectedSuccess, res.Success; e != g {
				t.Errorf("res.Success: expected '%v', got '%v'", e, g)
			}

			if e, g := tc.ExpectedMessage, res.Message; e != g {
				t.Errorf("res.Message: expected '%v', got '%v'", e, g)
			}
		})
	}
}

func TestClientUnreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	client, err := NewClient(url, time.Second)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	_, err = client.ForRequest(httptest.NewRequest(http.MethodPost, "/", nil)).Post(context.Background(), "/api/owner/change-role")
	if err == nil {
		t.Fatalf("err: expected transport error")
	}

	if !strings.HasPrefix(err.Error(), "could not reach api") {
		t.Errorf("err: expected transport error description, got '%v'", err)
	}
}

func TestNewClientInvalidScheme(t *testing.T) {
	if _, err := NewClient("ftp://example.com", time.Second); err == nil {
		t.Errorf("err: expected error for unsupported scheme")
	}
}
