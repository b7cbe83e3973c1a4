package setup

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/bornholm/rentacar/internal/api"
	"github.com/bornholm/rentacar/internal/assets"
	"github.com/bornholm/rentacar/internal/authn"
	"github.com/bornholm/rentacar/internal/condition"
	"github.com/bornholm/rentacar/internal/config"
	"github.com/bornholm/rentacar/internal/debug"
	"github.com/bornholm/rentacar/internal/owner"
	"github.com/bornholm/rentacar/internal/ratelimit"
	"github.com/bornholm/rentacar/internal/storefront"
	"github.com/bornholm/rentacar/internal/ui/navbar"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"

	sloghttp "github.com/samber/slog-http"
)

func NewHandlerFromConfig(ctx context.Context, conf *config.Config) (http.Handler, error) {
	mux := &http.ServeMux{}

	slogMiddleware := sloghttp.New(slog.Default())

	oauth2Handler, err := NewOAuth2HandlerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	mux.Handle("/auth/", slogMiddleware(oauth2Handler))

	assetsHandler, err := NewAssetsHandlerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	mux.Handle("/assets/", assetsHandler)

	store, err := NewStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	onAuthenticated, err := NewOnAuthenticatedFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	storefrontHandler, err := NewStorefrontHandlerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	uiAuth := authn.Chain(
		authn.WithAuthenticators(
			oauth2Handler.Authenticator(false),
		),
		authn.WithOnAuthenticated(onAuthenticated),
		authn.WithAnonymous(),
	)

	ownerAuth := authn.Chain(
		authn.WithAuthenticators(
			oauth2Handler.Authenticator(true),
		),
		authn.WithOnAuthenticated(onAuthenticated),
	)

	apiAuth := authn.Chain(
		authn.WithAuthenticators(
			oauth2Handler.Authenticator(false),
		),
		authn.WithOnAuthenticated(onAuthenticated),
		authn.WithUnauthorizedHandler(http.HandlerFunc(owner.Unauthorized)),
	)

	rateLimiter := ratelimit.New(rate.Limit(conf.Storefront.RateLimit.Rate), int(conf.Storefront.RateLimit.Burst))
	rateLimiterMiddleware := rateLimiter.Middleware(getVisitorKey)

	changeRolePath := string(conf.Storefront.ChangeRolePath)
	mux.Handle(changeRolePath, apiAuth(slogMiddleware(rateLimiterMiddleware(owner.NewAPIHandler(changeRolePath, store)))))

	mux.Handle("/navbar/", uiAuth(slogMiddleware(rateLimiterMiddleware(storefrontHandler))))

	ownerRoute := string(conf.Storefront.OwnerRoute)
	mux.Handle(ownerRoute, ownerAuth(slogMiddleware(owner.NewHandler(ownerRoute, store, storefrontHandler))))

	mux.Handle("/", uiAuth(slogMiddleware(storefrontHandler)))

	if conf.HTTP.Debug {
		slog.WarnContext(ctx, "debug endpoints enabled", slog.String("prefix", "/debug"))
		mux.Handle("/debug/", debug.NewHandler("/debug", store.HealthCheck))
	}

	return mux, nil
}

var NewStorefrontHandlerFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*storefront.Handler, error) {
	sessionStore, err := NewSessionStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	oauth2Handler, err := NewOAuth2HandlerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	assetsHandler, err := NewAssetsHandlerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	client, err := api.NewClient(string(conf.Storefront.API.BaseURL), time.Duration(*conf.Storefront.API.Timeout))
	if err != nil {
		return nil, errors.WithStack(err)
	}

	links := make([]navbar.MenuLink, 0, len(conf.Storefront.MenuLinks))
	for _, l := range conf.Storefront.MenuLinks {
		link := navbar.MenuLink{
			Name: string(l.Name),
			Path: string(l.Path),
		}

		if l.VisibleWhen != "" {
			cond := condition.New(string(l.VisibleWhen))
			if err := cond.Compile(); err != nil {
				return nil, errors.Wrapf(err, "invalid condition of menu link '%s'", l.Name)
			}

			link.When = cond
		}

		links = append(links, link)
	}

	images := conf.Storefront.Images

	handler := storefront.NewHandler(
		sessionStore,
		storefront.WithSessionName(string(conf.HTTP.Session.Name)+"_navbar"),
		storefront.WithLoginURL(oauth2Handler.LoginURL()),
		storefront.WithLogout(oauth2Handler.Logout),
		storefront.WithClient(func(r *http.Request) navbar.HTTPClient {
			return client.ForRequest(r)
		}),
		storefront.WithNavbarOptions(
			navbar.WithMenuLinks(links...),
			navbar.WithAssets(navbar.Assets{
				Logo:       assetURL(assetsHandler, string(images.Logo)),
				SearchIcon: assetURL(assetsHandler, string(images.SearchIcon)),
				MenuIcon:   assetURL(assetsHandler, string(images.MenuIcon)),
				CloseIcon:  assetURL(assetsHandler, string(images.CloseIcon)),
			}),
			navbar.WithOwnerRoute(string(conf.Storefront.OwnerRoute)),
			navbar.WithChangeRolePath(string(conf.Storefront.ChangeRolePath)),
		),
	)

	return handler, nil
})

// assetURL keeps absolute URLs untouched and resolves other names against
// the assets handler.
func assetURL(h *assets.Handler, name string) string {
	if strings.Contains(name, "://") {
		return name
	}

	return h.URL(name)
}

// getVisitorKey identifies authenticated users by their account and
// anonymous visitors by their remote address.
func getVisitorKey(r *http.Request) (string, error) {
	user, err := authn.ContextUser(r.Context())
	if err == nil {
		return user.UserProvider() + "-" + user.UserSubject(), nil
	}

	if !errors.Is(err, authn.ErrNoUser) {
		return "", errors.WithStack(err)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr, nil
	}

	return host, nil
}
