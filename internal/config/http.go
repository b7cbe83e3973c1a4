package config

import (
	"time"

	"github.com/goccy/go-yaml"
)

type HTTP struct {
	Address InterpolatedString `yaml:"address"`
	BaseURL InterpolatedString `yaml:"baseUrl"`
	Session Session            `yaml:"session"`
	Debug   InterpolatedBool   `yaml:"debug"`
}

type Session struct {
	Name   InterpolatedString      `yaml:"name"`
	Keys   InterpolatedStringSlice `yaml:"keys"`
	Cookie Cookie                  `yaml:"cookie"`
}

type Cookie struct {
	Path     InterpolatedString    `yaml:"path"`
	HTTPOnly InterpolatedBool      `yaml:"httpOnly"`
	Secure   InterpolatedBool      `yaml:"secure"`
	MaxAge   *InterpolatedDuration `yaml:"maxAge"`
}

func NewDefaultHTTPConfig() HTTP {
	return HTTP{
		Address: "${RENTACAR_HTTP_ADDRESS:-:8080}",
		BaseURL: "${RENTACAR_HTTP_BASE_URL:-http://localhost:8080}",
		Session: Session{
			Name: "${RENTACAR_HTTP_SESSION_NAME:-rentacar}",
			Keys: InterpolatedStringSlice{},
			Cookie: Cookie{
				Path:     "/",
				HTTPOnly: true,
				Secure:   false,
				MaxAge:   NewInterpolatedDuration(24 * time.Hour),
			},
		},
		Debug: false,
	}
}

func NewHTTPConfigCommentMap() yaml.CommentMap {
	return yaml.CommentMap{
		"":                       []*yaml.Comment{yaml.HeadComment(" Webserver configuration")},
		".address":               []*yaml.Comment{yaml.HeadComment(" Webserver's listening address")},
		".baseUrl":               []*yaml.Comment{yaml.HeadComment(" Public base URL, used to build OAuth2 callback URLs")},
		".session.name":          []*yaml.Comment{yaml.HeadComment(" Prefix of the session cookies names")},
		".session.keys":          []*yaml.Comment{yaml.HeadComment(" Session signing keys", " A random key is generated at startup if empty")},
		".session.cookie.maxAge": []*yaml.Comment{yaml.HeadComment(" Session cookies lifetime")},
		".debug":                 []*yaml.Comment{yaml.HeadComment(" Expose health and profiling endpoints under /debug")},
	}
}
