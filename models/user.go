package models

import "time"

// User represents an account entity used for authentication and authorization.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Login is the unique user login identifier.
	Login string `json:"login"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// PasswordHash is the bcrypt hash of the user's password.
	// It is never exposed via JSON.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"createdAt"`
}

var userFields = []string{"id", "login", "name", "createdAt"}

// Fields returns the default set of fields exposed for a user.
func (u *User) Fields() []string {
	return userFields
}

// ToMap renders the user into a field map.
func (u *User) ToMap(fields, expand []string, recursive bool) map[string]any {
	all := map[string]any{
		"id":        u.UserID,
		"login":     u.Login,
		"name":      u.Name,
		"createdAt": u.CreatedAt,
	}
	return pick(all, userFields, nil, fields, expand, recursive)
}

// Identity returns the request principal for this user.
func (u *User) Identity() Identity {
	return Identity{UserID: u.UserID, Login: u.Login}
}

// Credentials is the payload of login and registration requests.
type Credentials struct {
	Login    string `json:"login" validate:"required,min=3,max=64"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Name     string `json:"name" validate:"omitempty,max=128"`
}
