package models

// Session is a browser's authentication state. Token and User are either
// both set or both empty.
type Session struct {
	Token string `json:"-"`
	User  *User  `json:"user,omitempty"`
}

func (s Session) IsAuthenticated() bool {
	return s.Token != "" && s.User != nil
}

func (s Session) Role() Role {
	if s.User == nil {
		return ""
	}
	return s.User.Role
}

// Snapshot copies the session so callers cannot mutate the manager's user.
func (s Session) Snapshot() Session {
	return Session{Token: s.Token, User: s.User.Clone()}
}

type SessionEvent int

const (
	SessionAuthenticated SessionEvent = iota + 1
	SessionUnauthenticated
)

func (e SessionEvent) String() string {
	switch e {
	case SessionAuthenticated:
		return "authenticated"
	case SessionUnauthenticated:
		return "unauthenticated"
	}
	return "unknown"
}
