package oauth2

import "github.com/bornholm/rentacar/internal/authn"

type User struct {
	Subject  string
	Provider string

	Nickname string
	FullName string
	Email    string
}

// UserProvider implements authn.User.
func (u *User) UserProvider() string {
	return u.Provider
}

// UserSubject implements authn.User.
func (u *User) UserSubject() string {
	return u.Subject
}

var _ authn.User = &User{}
