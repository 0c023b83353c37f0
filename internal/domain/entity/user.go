// Package entity defines the core business entities for the domain layer.
package entity

// DefaultUserName is the display name given to users who log in rather
// than sign up.
const DefaultUserName = "User"

// User is the session owner persisted in durable storage.
type User struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// NewUser creates a new User.
func NewUser(name, email string) *User {
	return &User{
		Name:  name,
		Email: email,
	}
}
