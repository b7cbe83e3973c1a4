package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/bornholm/rentacar/internal/assets"
	"github.com/bornholm/rentacar/internal/assets/local"
	"github.com/bornholm/rentacar/internal/assets/s3"
	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"
)

type Assets struct {
	Type    InterpolatedString `yaml:"type"`
	Options *InterpolatedMap   `yaml:"options"`
}

func NewDefaultAssetsConfig() Assets {
	return Assets{
		Type: InterpolatedString(fmt.Sprintf("${RENTACAR_ASSETS_TYPE:-%s}", local.Type)),
		Options: &InterpolatedMap{
			Data: map[string]any{
				"dir": "${RENTACAR_ASSETS_DIR:-./assets}",
			},
		},
	}
}

func NewAssetsConfigCommentMap() yaml.CommentMap {
	return yaml.CommentMap{
		"":      []*yaml.Comment{yaml.HeadComment(" Storefront images (logo, icons) source")},
		".type": []*yaml.Comment{yaml.HeadComment(" Source type", fmt.Sprintf(" Available: %v", assets.Registered()))},
		".options": []*yaml.Comment{
			yaml.HeadComment(" Source options"),
			getAssetsOptionComment("S3 source", s3.Options{}),
		},
	}
}

func getAssetsOptionComment(message string, opts any) *yaml.Comment {
	rawOpts, err := yaml.Marshal(opts)
	if err != nil {
		panic(errors.WithStack(err))
	}

	comments := []string{message, "options:"}
	comments = append(comments, slices.Collect(func(yield func(string) bool) {
		for _, str := range strings.Split(strings.TrimSpace(string(rawOpts)), "\n") {
			if !yield("  " + str) {
				return
			}
		}
	})...)

	return yaml.FootComment(comments...)
}
