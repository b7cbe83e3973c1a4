package storefront

import (
	"net/http"

	"github.com/bornholm/rentacar/internal/ui/navbar"
)

// LogoutFunc ends the authenticated session of the visitor.
type LogoutFunc func(w http.ResponseWriter, r *http.Request) error

// ClientFunc returns the HTTP client used on behalf of the visitor.
type ClientFunc func(r *http.Request) navbar.HTTPClient

type Options struct {
	SessionName    string
	Prefix         string
	LoginURL       string
	LogoutRedirect string
	Logout         LogoutFunc
	Client         ClientFunc
	Navbar         []navbar.OptionFunc
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		SessionName:    "rentacar_navbar",
		Prefix:         "/navbar",
		LoginURL:       "/auth/login",
		LogoutRedirect: "/",
		Logout: func(w http.ResponseWriter, r *http.Request) error {
			return nil
		},
		Client: func(r *http.Request) navbar.HTTPClient {
			return nil
		},
		Navbar: make([]navbar.OptionFunc, 0),
	}

	for _, fn := range funcs {
		fn(opts)
	}

	return opts
}

func WithSessionName(name string) OptionFunc {
	return func(opts *Options) {
		opts.SessionName = name
	}
}

func WithPrefix(prefix string) OptionFunc {
	return func(opts *Options) {
		opts.Prefix = prefix
	}
}

func WithLoginURL(url string) OptionFunc {
	return func(opts *Options) {
		opts.LoginURL = url
	}
}

func WithLogoutRedirect(path string) OptionFunc {
	return func(opts *Options) {
		opts.LogoutRedirect = path
	}
}

func WithLogout(fn LogoutFunc) OptionFunc {
	return func(opts *Options) {
		opts.Logout = fn
	}
}

func WithClient(fn ClientFunc) OptionFunc {
	return func(opts *Options) {
		opts.Client = fn
	}
}

// WithNavbarOptions sets the options applied to every rendered navbar.
func WithNavbarOptions(funcs ...navbar.OptionFunc) OptionFunc {
	return func(opts *Options) {
		opts.Navbar = funcs
	}
}
