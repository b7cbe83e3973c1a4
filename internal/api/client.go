package api

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bornholm/rentacar/internal/ui/navbar"
	"github.com/bornholm/rentacar/pkg/log"
	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

const maxResponseSize = 1 << 20

// Client calls the storefront API on behalf of visitors.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
}

// ForRequest returns a client authenticated as the visitor of the given
// request, by forwarding its cookies.
func (c *Client) ForRequest(r *http.Request) *VisitorClient {
	return &VisitorClient{
		client:  c,
		cookies: r.Cookies(),
	}
}

func (c *Client) post(ctx context.Context, path string, cookies []*http.Cookie) (*navbar.RoleChangeResponse, error) {
	endpoint := c.baseURL.JoinPath(path)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	req.Header.Set("Accept", "application/json")

	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "could not reach api")
	}

	defer res.Body.Close()

	body, err := io.ReadAll(io.LimitReader(res.Body, maxResponseSize))
	if err != nil {
		return nil, errors.Wrap(err, "could not read api response")
	}

	if !strings.HasPrefix(res.Header.Get("Content-Type"), "application/json") {
		return nil, errors.Errorf("unexpected api response (%s)", res.Status)
	}

	// JSON answers carry the server message whatever their status
	var payload navbar.RoleChangeResponse

	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, errors.Wrap(err, "could not decode api response")
	}

	slog.DebugContext(ctx, "api response", log.ScrubbedURL("url", endpoint.String()), slog.Int("status", res.StatusCode), slog.Bool("success", payload.Success))

	return &payload, nil
}

type VisitorClient struct {
	client  *Client
	cookies []*http.Cookie
}

// Post implements navbar.HTTPClient.
func (c *VisitorClient) Post(ctx context.Context, path string) (*navbar.RoleChangeResponse, error) {
	return c.client.post(ctx, path, c.cookies)
}

var _ navbar.HTTPClient = &VisitorClient{}

func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, errors.Wrapf(err, "could not parse api base url '%s'", baseURL)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, errors.New(fmt.Sprintf("unsupported api base url scheme '%s'", u.Scheme))
	}

	return &Client{
		baseURL: u,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}
