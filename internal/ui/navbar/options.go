package navbar

const (
	DefaultOwnerRoute     = "/owner"
	DefaultChangeRolePath = "/api/owner/change-role"
)

// Actions holds the endpoints the rendered controls post to.
type Actions struct {
	ToggleMenu   string
	OpenProfile  string
	CloseProfile string
	Login        string
	ChangeRole   string
	Logout       string
}

func NewActions(prefix string) Actions {
	return Actions{
		ToggleMenu:   prefix + "/menu/toggle",
		OpenProfile:  prefix + "/profile/open",
		CloseProfile: prefix + "/profile/close",
		Login:        prefix + "/login",
		ChangeRole:   prefix + "/role",
		Logout:       prefix + "/logout",
	}
}

type Options struct {
	MenuLinks      []MenuLink
	Assets         Assets
	OwnerRoute     string
	ChangeRolePath string
	CurrentRoute   string
	Actions        Actions
	State          State
	Navigator      Navigator
	Notifier       Notifier
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		MenuLinks:      make([]MenuLink, 0),
		OwnerRoute:     DefaultOwnerRoute,
		ChangeRolePath: DefaultChangeRolePath,
		CurrentRoute:   "/",
		Actions:        NewActions("/navbar"),
		Navigator:      NavigatorFunc(func(path string) {}),
		Notifier:       NotifierFunc(func(notification Notification) {}),
	}

	for _, fn := range funcs {
		fn(opts)
	}

	return opts
}

func WithMenuLinks(links ...MenuLink) OptionFunc {
	return func(opts *Options) {
		opts.MenuLinks = links
	}
}

func WithAssets(assets Assets) OptionFunc {
	return func(opts *Options) {
		opts.Assets = assets
	}
}

func WithOwnerRoute(route string) OptionFunc {
	return func(opts *Options) {
		opts.OwnerRoute = route
	}
}

func WithChangeRolePath(path string) OptionFunc {
	return func(opts *Options) {
		opts.ChangeRolePath = path
	}
}

func WithCurrentRoute(route string) OptionFunc {
	return func(opts *Options) {
		opts.CurrentRoute = route
	}
}

func WithActions(actions Actions) OptionFunc {
	return func(opts *Options) {
		opts.Actions = actions
	}
}

func WithState(state State) OptionFunc {
	return func(opts *Options) {
		opts.State = state
	}
}

func WithNavigator(navigator Navigator) OptionFunc {
	return func(opts *Options) {
		opts.Navigator = navigator
	}
}

func WithNotifier(notifier Notifier) OptionFunc {
	return func(opts *Options) {
		opts.Notifier = notifier
	}
}
