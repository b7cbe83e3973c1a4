package setup

import (
	"context"
	"net/http"

	"github.com/bornholm/rentacar/internal/authn"
	"github.com/bornholm/rentacar/internal/authn/oauth2"
	"github.com/bornholm/rentacar/internal/config"
	"github.com/pkg/errors"
)

// NewOnAuthenticatedFromConfig returns the hook replacing the session user
// by its store counterpart, keeping the profile attributes up to date.
func NewOnAuthenticatedFromConfig(ctx context.Context, conf *config.Config) (func(r *http.Request, user authn.User) (*http.Request, error), error) {
	store, err := NewStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return func(r *http.Request, user authn.User) (*http.Request, error) {
		ctx := r.Context()

		oauth2User, ok := user.(*oauth2.User)
		if !ok {
			return nil, errors.Errorf("unexpected user type '%T'", user.(any))
		}

		storeUser, err := store.FindOrCreateUser(ctx, user.UserSubject(), user.UserProvider())
		if err != nil {
			return nil, errors.WithStack(err)
		}

		storeUser, err = store.UpdateProfile(ctx, storeUser.ID, oauth2User.Nickname, oauth2User.FullName, oauth2User.Email)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		ctx = authn.WithContextUser(ctx, storeUser)

		return r.WithContext(ctx), nil
	}, nil
}
