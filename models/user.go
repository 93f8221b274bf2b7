package models

import "time"

// User represents a staff account of the fuel station back office.
// It carries identity attributes, the credential hash and the role that
// decides which dashboard reports the account may read.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Login is the unique user login identifier.
	// Typically used during authentication.
	Login string `json:"login"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Password is the plain-text password received from the client on
	// registration or login. It is never persisted and never serialized back.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash of the password stored in the database.
	PasswordHash string `json:"-"`

	// Role is the access role of the user.
	Role Role `json:"role"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
