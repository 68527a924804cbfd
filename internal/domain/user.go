package domain

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is a registered account. PasswordHash is a bcrypt hash and is
// never serialized into API responses.
type User struct {
	Email          string    `json:"email"`
	PasswordHash   string    `json:"passwordHash"`
	Name           string    `json:"name"`
	Address        string    `json:"address"`
	Phone          string    `json:"phone"`
	SecondaryPhone string    `json:"secondaryPhone,omitempty"`
	Gender         string    `json:"gender"`
	Role           string    `json:"role"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Session identifies the authenticated actor for a single request. It is
// constructed by the auth middleware and threaded explicitly; nothing
// reads the current user from ambient state.
type Session struct {
	Email   string `json:"email"`
	Role    string `json:"role"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// Admin reports whether the session belongs to the administrative actor.
func (s Session) Admin() bool {
	return s.Role == RoleAdmin
}
