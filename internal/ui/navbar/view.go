package navbar

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/bornholm/rentacar/pkg/log"
	"github.com/pkg/errors"
)

type DrawerRow struct {
	Label string
	Value string
}

// ViewData is the navbar template data. It is recomputed on each call to
// View and never cached.
type ViewData struct {
	Links          []MenuLink
	Assets         Assets
	Actions        Actions
	CurrentRoute   string
	IsRoot         bool
	MobileMenuOpen bool
	IsOwner        bool
	ActionLabel    string

	ShowLogin     bool
	ShowProfile   bool
	DrawerVisible bool

	DisplayName   string
	DisplayEmail  string
	RoleLabel     string
	AvatarInitial string
	DrawerRows    []DrawerRow
}

func (n *Navbar) View() ViewData {
	user := n.app.CurrentUser()
	isOwner := n.app.IsOwner()

	data := ViewData{
		Links:          n.visibleLinks(user, isOwner),
		Assets:         n.assets,
		Actions:        n.actions,
		CurrentRoute:   n.currentRoute,
		IsRoot:         n.currentRoute == "/",
		MobileMenuOpen: n.state.MobileMenuOpen,
		IsOwner:        isOwner,
		ActionLabel:    n.ActionLabel(),
		ShowLogin:      user == nil,
		ShowProfile:    user != nil,
		DrawerVisible:  user != nil && n.state.ProfileDrawerOpen,
	}

	if user == nil {
		return data
	}

	data.DisplayName = n.DisplayName()
	data.DisplayEmail = n.DisplayEmail()
	data.RoleLabel = n.RoleLabel()
	data.AvatarInitial = n.AvatarInitial()

	if data.DrawerVisible {
		data.DrawerRows = []DrawerRow{
			{Label: "Name", Value: data.DisplayName},
			{Label: "Email", Value: data.DisplayEmail},
			{Label: "Role", Value: data.RoleLabel},
		}
	}

	return data
}

// visibleLinks filters the menu links with their conditions, preserving
// their order. Links with failing conditions are hidden.
func (n *Navbar) visibleLinks(user *User, isOwner bool) []MenuLink {
	env := map[string]any{
		"user":    nil,
		"isOwner": isOwner,
		"route":   n.currentRoute,
	}

	if user != nil {
		env["user"] = map[string]any{
			"name":  user.DisplayName(),
			"email": user.Email,
		}
	}

	links := make([]MenuLink, 0, len(n.links))
	for _, l := range n.links {
		if l.When == nil {
			links = append(links, l)
			continue
		}

		visible, err := l.When.Eval(env)
		if err != nil {
			slog.Warn("could not evaluate menu link condition", slog.String("link", l.Name), slog.String("condition", fmt.Sprintf("%v", l.When)), log.Error(err))
			continue
		}

		if visible {
			links = append(links, l)
		}
	}

	return links
}

func (n *Navbar) Render(w io.Writer) error {
	if err := templates.ExecuteTemplate(w, "navbar", n.View()); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
