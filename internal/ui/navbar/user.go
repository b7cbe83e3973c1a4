package navbar

import (
	"unicode"
	"unicode/utf8"
)

const (
	DefaultDisplayName  = "User"
	DefaultDisplayEmail = "user@example.com"

	RoleLabelOwner    = "Owner"
	RoleLabelCustomer = "Customer"
)

// User is the authenticated visitor, as exposed by the application context.
type User struct {
	Name     string
	FullName string
	Username string
	Email    string
}

// DisplayName returns the first non-empty of name, full name and username.
func (u *User) DisplayName() string {
	if u == nil {
		return DefaultDisplayName
	}

	for _, candidate := range []string{u.Name, u.FullName, u.Username} {
		if candidate != "" {
			return candidate
		}
	}

	return DefaultDisplayName
}

func (u *User) DisplayEmail() string {
	if u == nil || u.Email == "" {
		return DefaultDisplayEmail
	}

	return u.Email
}

// AvatarInitial returns the upper-cased first character of the display name.
func (u *User) AvatarInitial() string {
	r, _ := utf8.DecodeRuneInString(u.DisplayName())
	if r == utf8.RuneError {
		return ""
	}

	return string(unicode.ToUpper(r))
}

func RoleLabel(isOwner bool) string {
	if isOwner {
		return RoleLabelOwner
	}

	return RoleLabelCustomer
}
