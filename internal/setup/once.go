package setup

import (
	"context"
	"sync"

	"github.com/bornholm/rentacar/internal/config"
	"github.com/pkg/errors"
)

// createFromConfigOnce memoizes the first result of the given factory, so
// that components shared by several handlers are built a single time.
func createFromConfigOnce[T any](factory func(ctx context.Context, conf *config.Config) (T, error)) func(ctx context.Context, conf *config.Config) (T, error) {
	var (
		once   sync.Once
		result T
		err    error
	)

	return func(ctx context.Context, conf *config.Config) (T, error) {
		once.Do(func() {
			result, err = factory(ctx, conf)
			if err != nil {
				err = errors.WithStack(err)
			}
		})

		return result, err
	}
}
