package entity

import "time"

// SessionUser is the snapshot of the signed-in account stored next to
// the session token. The guard only checks its presence; it never
// revalidates the account against the remote backend.
type SessionUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Session is the local marker written at login and consulted by the
// session guard. Validity is purely local: all three parts present and
// LoginAt younger than the configured timeout.
type Session struct {
	Token   string       `json:"token"`
	User    *SessionUser `json:"user"`
	LoginAt time.Time    `json:"loginAt"`
}

// Complete reports whether every part of the marker is present.
func (s *Session) Complete() bool {
	return s != nil && s.Token != "" && s.User != nil && !s.LoginAt.IsZero()
}
