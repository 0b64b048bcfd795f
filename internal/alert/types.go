// Package alert decides which scheduled alerts are due and which
// (user, backend) pairs should receive an alert of a given type.
//
// Preferences are explicit per-user overrides; any (alert type, backend)
// pair without an override resolves to the alert type's default for that
// backend.
package alert

import "time"

type AlertTypeID string
type BackendID string

// AlertType is a category of alert with a default delivery preference per
// backend. Backends missing from Defaults fall back to Default.
type AlertType struct {
	ID          AlertTypeID        `yaml:"id"`
	Title       string             `yaml:"title"`
	Description string             `yaml:"description"`
	Default     bool               `yaml:"default"`
	Defaults    map[BackendID]bool `yaml:"defaults"`
}

func (t AlertType) GetDefault(backend BackendID) bool {
	if pref, ok := t.Defaults[backend]; ok {
		return pref
	}

	return t.Default
}

// Backend is a delivery channel such as email or sms.
type Backend struct {
	ID    BackendID `yaml:"id"`
	Title string    `yaml:"title"`
}

type Preference struct {
	UserID    string
	AlertType AlertTypeID
	Backend   BackendID
	Enabled   bool
}

type PrefKey struct {
	AlertType AlertTypeID
	Backend   BackendID
}

type Prefs map[PrefKey]bool

type Alert struct {
	ID        string
	UserID    string
	AlertType AlertTypeID
	Backend   BackendID
	Title     string
	Body      string
	When      time.Time
	IsSent    bool
	SentAt    *time.Time
}

type User struct {
	ID string
}

var Anonymous = User{}

func (u User) IsAuthenticated() bool {
	return u.ID != ""
}

// AlertUser is someone alerts can be addressed to. User is nil when the
// recipient has no account and is only reachable through Email.
type AlertUser struct {
	User  *User
	Email string
}

func (au AlertUser) userID() (string, bool) {
	if au.User == nil || !au.User.IsAuthenticated() {
		return "", false
	}

	return au.User.ID, true
}

type Recipient struct {
	AlertUser AlertUser
	Backend   Backend
}
