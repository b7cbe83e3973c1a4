package config

import (
	"os"
	"strconv"
	"time"

	"github.com/drone/envsubst"
	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"
)

var getEnv = os.Getenv

// unmarshalInterpolated decodes a scalar as a string, expands environment
// variables references and hands the result to parse.
func unmarshalInterpolated[T any](unmarshal func(any) error, parse func(string) (T, error)) (T, error) {
	var (
		str  string
		zero T
	)

	if err := unmarshal(&str); err != nil {
		return zero, errors.WithStack(err)
	}

	str, err := envsubst.Eval(str, getEnv)
	if err != nil {
		return zero, errors.WithStack(err)
	}

	value, err := parse(str)
	if err != nil {
		return zero, errors.WithStack(err)
	}

	return value, nil
}

type InterpolatedString string

// UnmarshalYAML implements yaml.InterfaceUnmarshaler.
func (is *InterpolatedString) UnmarshalYAML(unmarshal func(any) error) error {
	value, err := unmarshalInterpolated(unmarshal, func(s string) (string, error) { return s, nil })
	if err != nil {
		return errors.WithStack(err)
	}

	*is = InterpolatedString(value)

	return nil
}

var _ yaml.InterfaceUnmarshaler = new(InterpolatedString)

type InterpolatedInt int

// UnmarshalYAML implements yaml.InterfaceUnmarshaler.
func (ii *InterpolatedInt) UnmarshalYAML(unmarshal func(any) error) error {
	value, err := unmarshalInterpolated(unmarshal, func(s string) (int64, error) {
		return strconv.ParseInt(s, 10, 32)
	})
	if err != nil {
		return errors.WithStack(err)
	}

	*ii = InterpolatedInt(value)

	return nil
}

var _ yaml.InterfaceUnmarshaler = new(InterpolatedInt)

type InterpolatedFloat float64

// UnmarshalYAML implements yaml.InterfaceUnmarshaler.
func (ifl *InterpolatedFloat) UnmarshalYAML(unmarshal func(any) error) error {
	value, err := unmarshalInterpolated(unmarshal, func(s string) (float64, error) {
		return strconv.ParseFloat(s, 64)
	})
	if err != nil {
		return errors.WithStack(err)
	}

	*ifl = InterpolatedFloat(value)

	return nil
}

var _ yaml.InterfaceUnmarshaler = new(InterpolatedFloat)

type InterpolatedBool bool

// UnmarshalYAML implements yaml.InterfaceUnmarshaler.
func (ib *InterpolatedBool) UnmarshalYAML(unmarshal func(any) error) error {
	value, err := unmarshalInterpolated(unmarshal, strconv.ParseBool)
	if err != nil {
		return errors.WithStack(err)
	}

	*ib = InterpolatedBool(value)

	return nil
}

var _ yaml.InterfaceUnmarshaler = new(InterpolatedBool)

type InterpolatedStringSlice []string

// UnmarshalYAML implements yaml.InterfaceUnmarshaler.
func (iss *InterpolatedStringSlice) UnmarshalYAML(unmarshal func(any) error) error {
	var data []string

	if err := unmarshal(&data); err != nil {
		return errors.WithStack(err)
	}

	for index, value := range data {
		value, err := envsubst.Eval(value, getEnv)
		if err != nil {
			return errors.WithStack(err)
		}

		data[index] = value
	}

	*iss = data

	return nil
}

var _ yaml.InterfaceUnmarshaler = new(InterpolatedStringSlice)

type InterpolatedMap struct {
	Data map[string]any
}

// UnmarshalYAML implements yaml.InterfaceUnmarshaler.
func (im *InterpolatedMap) UnmarshalYAML(unmarshal func(any) error) error {
	var data map[string]any

	if err := unmarshal(&data); err != nil {
		return errors.WithStack(err)
	}

	interpolated, err := interpolateRecursive(data)
	if err != nil {
		return errors.WithStack(err)
	}

	im.Data, _ = interpolated.(map[string]any)

	return nil
}

func (im *InterpolatedMap) MarshalYAML() (any, error) {
	return im.Data, nil
}

func interpolateRecursive(data any) (any, error) {
	switch typ := data.(type) {
	case map[string]any:
		for key, value := range typ {
			value, err := interpolateRecursive(value)
			if err != nil {
				return nil, errors.WithStack(err)
			}

			typ[key] = value
		}

	case []any:
		for idx := range typ {
			value, err := interpolateRecursive(typ[idx])
			if err != nil {
				return nil, errors.WithStack(err)
			}

			typ[idx] = value
		}

	case string:
		value, err := envsubst.Eval(typ, getEnv)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		return value, nil
	}

	return data, nil
}

type InterpolatedDuration time.Duration

// UnmarshalYAML implements yaml.InterfaceUnmarshaler.
func (id *InterpolatedDuration) UnmarshalYAML(unmarshal func(any) error) error {
	value, err := unmarshalInterpolated(unmarshal, parseDuration)
	if err != nil {
		return errors.WithStack(err)
	}

	*id = InterpolatedDuration(value)

	return nil
}

// Durations may be expressed either with units ("30s") or as nanoseconds.
func parseDuration(str string) (time.Duration, error) {
	duration, err := time.ParseDuration(str)
	if err == nil {
		return duration, nil
	}

	nanoseconds, err := strconv.ParseInt(str, 10, 64)
	if err != nil {
		return 0, errors.WithStack(err)
	}

	return time.Duration(nanoseconds), nil
}

var _ yaml.InterfaceUnmarshaler = new(InterpolatedDuration)

// MarshalYAML implements yaml.InterfaceMarshaler.
func (id *InterpolatedDuration) MarshalYAML() (any, error) {
	return time.Duration(*id).String(), nil
}

var _ yaml.InterfaceMarshaler = new(InterpolatedDuration)

func NewInterpolatedDuration(d time.Duration) *InterpolatedDuration {
	id := InterpolatedDuration(d)
	return &id
}
