package auth

type Scope string
type Header string

const (
	User        Scope  = "alerts/user"
	Publisher   Scope  = "alerts/publisher"
	Admin       Scope  = "alerts/admin"
	UserHeader  Header = "X-User-Id"
	ScopeHeader Header = "X-User-Scope"
)
