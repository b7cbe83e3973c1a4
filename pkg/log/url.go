package log

import (
	"log/slog"
	"net/url"
)

// ScrubbedURL masks the password part of the given URL, if any.
func ScrubbedURL(name string, rawURL string) slog.Attr {
	u, err := url.Parse(rawURL)
	if err != nil || u.User == nil {
		return slog.String(name, rawURL)
	}

	scrubbed := *u
	if _, hasPassword := u.User.Password(); hasPassword {
		scrubbed.User = url.UserPassword(u.User.Username(), "xxx")
	}

	return slog.String(name, scrubbed.String())
}
