package setup

import (
	"context"
	"log/slog"

	"github.com/bornholm/rentacar/internal/assets"
	"github.com/bornholm/rentacar/internal/config"
	"github.com/pkg/errors"
)

var NewAssetsHandlerFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*assets.Handler, error) {
	source, err := assets.New(assets.Type(conf.Assets.Type), conf.Assets.Options.Data)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	slog.DebugContext(ctx, "assets source configured", slog.String("type", string(conf.Assets.Type)))

	return assets.NewHandler("/assets", source), nil
})
