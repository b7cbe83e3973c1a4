package config

import "github.com/goccy/go-yaml"

type Auth struct {
	Providers AuthProviders `yaml:"providers"`
}

type AuthProviders struct {
	Google OAuth2Provider `yaml:"google"`
	Github OAuth2Provider `yaml:"github"`
	Gitea  GiteaProvider  `yaml:"gitea"`
	OIDC   OIDCProvider   `yaml:"oidc"`
}

type OAuth2Provider struct {
	Key    InterpolatedString      `yaml:"key"`
	Secret InterpolatedString      `yaml:"secret"`
	Scopes InterpolatedStringSlice `yaml:"scopes"`
}

type OIDCProvider struct {
	OAuth2Provider `yaml:",inline"`
	DiscoveryURL   InterpolatedString `yaml:"discoveryUrl"`
	Icon           InterpolatedString `yaml:"icon"`
	Label          InterpolatedString `yaml:"label"`
}

type GiteaProvider struct {
	OAuth2Provider `yaml:",inline"`
	TokenURL       InterpolatedString `yaml:"tokenUrl"`
	AuthURL        InterpolatedString `yaml:"authUrl"`
	ProfileURL     InterpolatedString `yaml:"profileUrl"`
	Label          InterpolatedString `yaml:"label"`
}

func NewDefaultAuthConfig() Auth {
	return Auth{
		Providers: AuthProviders{
			Google: OAuth2Provider{
				Key:    "${RENTACAR_AUTH_GOOGLE_KEY}",
				Secret: "${RENTACAR_AUTH_GOOGLE_SECRET}",
				Scopes: InterpolatedStringSlice{"email", "profile"},
			},
			Github: OAuth2Provider{
				Key:    "${RENTACAR_AUTH_GITHUB_KEY}",
				Secret: "${RENTACAR_AUTH_GITHUB_SECRET}",
				Scopes: InterpolatedStringSlice{"user:email"},
			},
			Gitea: GiteaProvider{
				OAuth2Provider: OAuth2Provider{
					Key:    "${RENTACAR_AUTH_GITEA_KEY}",
					Secret: "${RENTACAR_AUTH_GITEA_SECRET}",
					Scopes: InterpolatedStringSlice{},
				},
				Label: "Gitea",
			},
			OIDC: OIDCProvider{
				OAuth2Provider: OAuth2Provider{
					Key:    "${RENTACAR_AUTH_OIDC_KEY}",
					Secret: "${RENTACAR_AUTH_OIDC_SECRET}",
					Scopes: InterpolatedStringSlice{"openid", "email", "profile"},
				},
				DiscoveryURL: "${RENTACAR_AUTH_OIDC_DISCOVERY_URL}",
				Icon:         "fa-openid",
				Label:        "OpenID Connect",
			},
		},
	}
}

func NewAuthConfigCommentMap() yaml.CommentMap {
	return yaml.CommentMap{
		"":                 []*yaml.Comment{yaml.HeadComment(" Auth configuration")},
		".providers":       []*yaml.Comment{yaml.HeadComment(" OAuth2 identity providers", " A provider is enabled when both key and secret are set")},
		".providers.gitea": []*yaml.Comment{yaml.HeadComment(" Gitea provider, with custom instance URLs")},
		".providers.oidc":  []*yaml.Comment{yaml.HeadComment(" Generic OpenID Connect provider")},
	}
}
