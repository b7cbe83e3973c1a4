package local

import (
	"github.com/bornholm/rentacar/internal/assets"
	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"
)

const (
	Type assets.Type = "local"
)

func init() {
	assets.Register(Type, CreateSourceFromOptions)
}

type Options struct {
	Dir string `mapstructure:"dir" yaml:"dir"`
}

func CreateSourceFromOptions(options any) (assets.Source, error) {
	opts := Options{}

	if err := mapstructure.Decode(options, &opts); err != nil {
		return nil, errors.Wrapf(err, "could not parse '%s' assets source options", Type)
	}

	return NewSource(opts.Dir), nil
}
