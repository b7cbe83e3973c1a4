package navbar

import (
	"context"
	"log/slog"

	"github.com/bornholm/rentacar/pkg/log"
	"github.com/pkg/errors"
)

// MenuLink is a primary navigation link.
type MenuLink struct {
	Name string
	Path string
	// When, if set, must match for the link to be shown.
	When Condition
}

type Condition interface {
	Eval(env map[string]any) (bool, error)
}

// Assets holds the URLs of the navbar images.
type Assets struct {
	Logo       string
	SearchIcon string
	MenuIcon   string
	CloseIcon  string
}

// State is the navbar local UI state. Its zero value is the state of a
// freshly mounted navbar.
type State struct {
	MobileMenuOpen    bool
	ProfileDrawerOpen bool
}

// RoleChangeResponse is the payload answered by the role elevation endpoint.
type RoleChangeResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type HTTPClient interface {
	Post(ctx context.Context, path string) (*RoleChangeResponse, error)
}

// AppContext is the set of capabilities the navbar consumes from the
// surrounding application.
type AppContext interface {
	CurrentUser() *User
	IsOwner() bool
	SetIsOwner(isOwner bool)
	RequestLogin()
	Logout(ctx context.Context) error
	HTTPClient() HTTPClient
}

type Navbar struct {
	app       AppContext
	navigator Navigator
	notifier  Notifier

	links          []MenuLink
	assets         Assets
	ownerRoute     string
	changeRolePath string
	currentRoute   string
	actions        Actions

	state State
}

func New(app AppContext, funcs ...OptionFunc) *Navbar {
	opts := NewOptions(funcs...)

	return &Navbar{
		app:            app,
		navigator:      opts.Navigator,
		notifier:       opts.Notifier,
		links:          opts.MenuLinks,
		assets:         opts.Assets,
		ownerRoute:     opts.OwnerRoute,
		changeRolePath: opts.ChangeRolePath,
		currentRoute:   opts.CurrentRoute,
		actions:        opts.Actions,
		state:          opts.State,
	}
}

func (n *Navbar) State() State {
	return n.state
}

func (n *Navbar) ToggleMobileMenu() {
	n.state.MobileMenuOpen = !n.state.MobileMenuOpen
}

func (n *Navbar) OpenProfileDrawer() {
	n.state.ProfileDrawerOpen = true
}

func (n *Navbar) CloseProfileDrawer() {
	n.state.ProfileDrawerOpen = false
}

func (n *Navbar) RequestLogin() {
	n.app.RequestLogin()
}

// RequestRoleChange sends an owner to its dashboard. For any other visitor it
// asks the API to elevate the current user to the owner role. Every call
// ending with a request emits exactly one notification.
func (n *Navbar) RequestRoleChange(ctx context.Context) {
	if n.app.IsOwner() {
		n.navigator.Navigate(n.ownerRoute)
		return
	}

	res, err := n.postRoleChange(ctx)
	if err != nil {
		slog.WarnContext(ctx, "role change request failed", log.Error(err))
		n.notifier.Notify(NewNotification(LevelError, err.Error()))
		return
	}

	if !res.Success {
		n.notifier.Notify(NewNotification(LevelError, res.Message))
		return
	}

	n.app.SetIsOwner(true)
	n.notifier.Notify(NewNotification(LevelSuccess, res.Message))
}

func (n *Navbar) postRoleChange(ctx context.Context) (*RoleChangeResponse, error) {
	client := n.app.HTTPClient()
	if client == nil {
		return nil, errors.New("no http client available")
	}

	res, err := client.Post(ctx, n.changeRolePath)
	if err != nil {
		return nil, err
	}

	if res == nil {
		return nil, errors.New("empty response")
	}

	return res, nil
}

// Logout delegates to the application logout capability and closes the
// profile drawer whatever its outcome. The returned error is the one of the
// capability, which already reported it to the visitor.
func (n *Navbar) Logout(ctx context.Context) error {
	defer n.CloseProfileDrawer()

	return n.app.Logout(ctx)
}

func (n *Navbar) DisplayName() string {
	return n.app.CurrentUser().DisplayName()
}

func (n *Navbar) DisplayEmail() string {
	return n.app.CurrentUser().DisplayEmail()
}

func (n *Navbar) RoleLabel() string {
	return RoleLabel(n.app.IsOwner())
}

func (n *Navbar) AvatarInitial() string {
	return n.app.CurrentUser().AvatarInitial()
}

func (n *Navbar) ActionLabel() string {
	if n.app.IsOwner() {
		return "Dashboard"
	}

	return "List cars"
}
