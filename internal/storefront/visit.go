package storefront

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/bornholm/rentacar/internal/authn"
	"github.com/bornholm/rentacar/internal/store"
	"github.com/bornholm/rentacar/internal/ui/navbar"
	"github.com/bornholm/rentacar/pkg/log"
	"github.com/goccy/go-json"
	"github.com/gorilla/sessions"
	"github.com/pkg/errors"
	"golang.org/x/sync/singleflight"
)

const (
	sessionKeyMobileMenuOpen    = "mobileMenuOpen"
	sessionKeyProfileDrawerOpen = "profileDrawerOpen"
	sessionKeyVisitor           = "visitor"
)

// Visit is the request scoped application context of the navbar.
type Visit struct {
	handler *Handler
	w       http.ResponseWriter
	r       *http.Request
	session *sessions.Session

	user    *store.User
	isOwner bool
	state   navbar.State

	redirect      string
	notifications []navbar.Notification
}

func (h *Handler) newVisit(w http.ResponseWriter, r *http.Request) *Visit {
	ctx := r.Context()

	sess, err := h.sessionStore.Get(r, h.sessionName)
	if err != nil {
		// Unreadable cookies (rotated keys, tampering) start a fresh state
		slog.WarnContext(ctx, "could not decode navbar session", log.Error(errors.WithStack(err)))
	}

	visit := &Visit{
		handler: h,
		w:       w,
		r:       r,
		session: sess,
	}

	visit.user = contextStoreUser(ctx)
	if visit.user != nil {
		visit.isOwner = visit.user.IsOwner
	}

	// A new visitor mounts a fresh navbar
	if visitor, _ := sess.Values[sessionKeyVisitor].(string); visitor != visit.visitorKey() {
		return visit
	}

	visit.state.MobileMenuOpen, _ = sess.Values[sessionKeyMobileMenuOpen].(bool)

	if visit.user != nil {
		visit.state.ProfileDrawerOpen, _ = sess.Values[sessionKeyProfileDrawerOpen].(bool)
	}

	return visit
}

func contextStoreUser(ctx context.Context) *store.User {
	user, err := authn.ContextUser(ctx)
	if err != nil {
		if !errors.Is(err, authn.ErrNoUser) {
			slog.ErrorContext(ctx, "could not retrieve user from context", log.Error(errors.WithStack(err)))
		}

		return nil
	}

	storeUser, ok := user.(*store.User)
	if !ok {
		slog.ErrorContext(ctx, "unexpected user type", slog.String("type", fmt.Sprintf("%T", user)))
		return nil
	}

	return storeUser
}

func (v *Visit) visitorKey() string {
	if v.user == nil {
		return "anonymous"
	}

	return fmt.Sprintf("%s@%s", v.user.Subject, v.user.Provider)
}

func (v *Visit) Navbar(funcs ...navbar.OptionFunc) *navbar.Navbar {
	opts := []navbar.OptionFunc{
		navbar.WithActions(navbar.NewActions(v.handler.prefix)),
		navbar.WithNavigator(v),
		navbar.WithNotifier(v),
		navbar.WithState(v.state),
	}

	opts = append(opts, v.handler.navbarOptions...)
	opts = append(opts, funcs...)

	return navbar.New(v, opts...)
}

// CurrentUser implements navbar.AppContext.
func (v *Visit) CurrentUser() *navbar.User {
	if v.user == nil {
		return nil
	}

	return &navbar.User{
		FullName: v.user.FullName,
		Username: v.user.Nickname,
		Email:    v.user.Email,
	}
}

// IsOwner implements navbar.AppContext.
func (v *Visit) IsOwner() bool {
	return v.isOwner
}

// SetIsOwner implements navbar.AppContext.
func (v *Visit) SetIsOwner(isOwner bool) {
	v.isOwner = isOwner
}

// RequestLogin implements navbar.AppContext.
func (v *Visit) RequestLogin() {
	v.Navigate(v.handler.loginURL)
}

// Logout implements navbar.AppContext.
func (v *Visit) Logout(ctx context.Context) error {
	if err := v.handler.logout(v.w, v.r); err != nil {
		slog.ErrorContext(ctx, "could not logout", log.Error(errors.WithStack(err)))
		v.Notify(navbar.NewNotification(navbar.LevelError, "Logout failed, please retry"))
		return errors.WithStack(err)
	}

	v.user = nil
	v.isOwner = false
	v.Navigate(v.handler.logoutRedirect)

	return nil
}

// HTTPClient implements navbar.AppContext.
func (v *Visit) HTTPClient() navbar.HTTPClient {
	client := v.handler.client(v.r)
	if client == nil {
		return nil
	}

	return &sharedClient{
		group:  &v.handler.roleChanges,
		key:    v.visitorKey(),
		client: client,
	}
}

// Navigate implements navbar.Navigator.
func (v *Visit) Navigate(path string) {
	v.redirect = path
}

// Notify implements navbar.Notifier.
func (v *Visit) Notify(notification navbar.Notification) {
	v.notifications = append(v.notifications, notification)
}

// ConsumeFlashes moves the notifications kept from previous requests into
// the pending notifications of the visit.
func (v *Visit) ConsumeFlashes() {
	ctx := v.r.Context()

	for _, flash := range v.session.Flashes() {
		raw, ok := flash.(string)
		if !ok {
			continue
		}

		var notification navbar.Notification
		if err := json.Unmarshal([]byte(raw), &notification); err != nil {
			slog.WarnContext(ctx, "could not decode notification", log.Error(errors.WithStack(err)))
			continue
		}

		v.notifications = append(v.notifications, notification)
	}
}

// Save persists the navbar state. Pending notifications are kept as flashes
// for the next rendered page when deferred is true.
func (v *Visit) Save(deferred bool) error {
	v.session.Values[sessionKeyMobileMenuOpen] = v.state.MobileMenuOpen
	v.session.Values[sessionKeyProfileDrawerOpen] = v.state.ProfileDrawerOpen
	v.session.Values[sessionKeyVisitor] = v.visitorKey()

	if deferred {
		for _, notification := range v.notifications {
			raw, err := json.Marshal(notification)
			if err != nil {
				return errors.WithStack(err)
			}

			v.session.AddFlash(string(raw))
		}

		v.notifications = nil
	}

	if err := v.session.Save(v.r, v.w); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (v *Visit) Toasts(outOfBand bool) navbar.Toasts {
	return navbar.Toasts{
		Notifications: v.notifications,
		OutOfBand:     outOfBand,
	}
}

var (
	_ navbar.AppContext = &Visit{}
	_ navbar.Navigator  = &Visit{}
	_ navbar.Notifier   = &Visit{}
)

// sharedClient collapses concurrent calls of a same visitor to a same path
// into a single request.
type sharedClient struct {
	group  *singleflight.Group
	key    string
	client navbar.HTTPClient
}

// Post implements navbar.HTTPClient. The shared request is detached from the
// cancellation of the caller which started it and is bounded by the client
// timeout. Each caller stops waiting when its own context is done.
func (c *sharedClient) Post(ctx context.Context, path string) (*navbar.RoleChangeResponse, error) {
	detached := context.WithoutCancel(ctx)

	results := c.group.DoChan(c.key+" "+path, func() (any, error) {
		return c.client.Post(detached, path)
	})

	select {
	case <-ctx.Done():
		return nil, errors.WithStack(ctx.Err())

	case result := <-results:
		if result.Err != nil {
			return nil, result.Err
		}

		if result.Shared {
			slog.DebugContext(ctx, "shared in-flight request", slog.String("path", path))
		}

		res, _ := result.Val.(*navbar.RoleChangeResponse)

		return res, nil
	}
}
