package navbar

import "github.com/rs/xid"

type NotificationLevel string

const (
	LevelSuccess NotificationLevel = "success"
	LevelError   NotificationLevel = "error"
)

// Notification is a transient message shown to the visitor (a "toast").
type Notification struct {
	ID      string            `json:"id"`
	Level   NotificationLevel `json:"level"`
	Message string            `json:"message"`
}

func NewNotification(level NotificationLevel, message string) Notification {
	return Notification{
		ID:      xid.New().String(),
		Level:   level,
		Message: message,
	}
}

type Notifier interface {
	Notify(notification Notification)
}

type NotifierFunc func(notification Notification)

// Notify implements Notifier.
func (fn NotifierFunc) Notify(notification Notification) {
	fn(notification)
}

type Navigator interface {
	Navigate(path string)
}

type NavigatorFunc func(path string)

// Navigate implements Navigator.
func (fn NavigatorFunc) Navigate(path string) {
	fn(path)
}

// Toasts is the data of the "toasts" template.
type Toasts struct {
	Notifications []Notification
	OutOfBand     bool
}
