package config

import (
	"time"

	"github.com/goccy/go-yaml"
)

type Storefront struct {
	MenuLinks      []MenuLink         `yaml:"menuLinks"`
	Images         Images             `yaml:"images"`
	OwnerRoute     InterpolatedString `yaml:"ownerRoute"`
	ChangeRolePath InterpolatedString `yaml:"changeRolePath"`
	API            API                `yaml:"api"`
	RateLimit      RateLimit          `yaml:"rateLimit"`
}

type MenuLink struct {
	Name        InterpolatedString `yaml:"name"`
	Path        InterpolatedString `yaml:"path"`
	VisibleWhen InterpolatedString `yaml:"visibleWhen,omitempty"`
}

// Images maps the navbar images to assets names.
type Images struct {
	Logo       InterpolatedString `yaml:"logo"`
	SearchIcon InterpolatedString `yaml:"searchIcon"`
	MenuIcon   InterpolatedString `yaml:"menuIcon"`
	CloseIcon  InterpolatedString `yaml:"closeIcon"`
}

type API struct {
	BaseURL InterpolatedString    `yaml:"baseUrl"`
	Timeout *InterpolatedDuration `yaml:"timeout"`
}

type RateLimit struct {
	Rate  InterpolatedFloat `yaml:"rate"`
	Burst InterpolatedInt   `yaml:"burst"`
}

func NewDefaultStorefrontConfig() Storefront {
	return Storefront{
		MenuLinks: []MenuLink{
			{Name: "Home", Path: "/"},
			{Name: "Cars", Path: "/cars"},
			{Name: "My Bookings", Path: "/my-bookings"},
			{Name: "Contact", Path: "/contact"},
		},
		Images: Images{
			Logo:       "logo.svg",
			SearchIcon: "search_icon.svg",
			MenuIcon:   "menu_icon.svg",
			CloseIcon:  "close_icon.svg",
		},
		OwnerRoute:     "/owner",
		ChangeRolePath: "/api/owner/change-role",
		API: API{
			BaseURL: "${RENTACAR_API_BASE_URL:-http://localhost:8080}",
			Timeout: NewInterpolatedDuration(10 * time.Second),
		},
		RateLimit: RateLimit{
			Rate:  5,
			Burst: 10,
		},
	}
}

func NewStorefrontConfigCommentMap() yaml.CommentMap {
	menuLinksComment := yaml.HeadComment(
		" Navigation links, rendered in the given order",
		" An optional 'visibleWhen' expression (https://expr-lang.org) restricts a link,",
		" ie. 'user != nil' or '!isOwner'. Variables: user (name, email), isOwner, route",
	)

	return yaml.CommentMap{
		"":                []*yaml.Comment{yaml.HeadComment(" Storefront navigation configuration")},
		".menuLinks":      []*yaml.Comment{menuLinksComment},
		".images":         []*yaml.Comment{yaml.HeadComment(" Navbar images, as names in the assets source")},
		".ownerRoute":     []*yaml.Comment{yaml.HeadComment(" Route of the owner dashboard")},
		".changeRolePath": []*yaml.Comment{yaml.HeadComment(" Path of the role elevation endpoint, relative to api.baseUrl")},
		".api.baseUrl":    []*yaml.Comment{yaml.HeadComment(" Base URL of the API serving the role elevation endpoint")},
		".api.timeout":    []*yaml.Comment{yaml.HeadComment(" API requests timeout")},
		".rateLimit":      []*yaml.Comment{yaml.HeadComment(" Per visitor rate limit of the navbar actions (requests per second and burst)")},
	}
}
