package domain

import (
	"time"
)

// User represents a community member, created the first time an email address
// registers for an event. Fields are set on first creation and are not
// overwritten by later registrations.
// swagger:model User
type User struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Age       int       `json:"age"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewUser returns a new User with the given fields. ID is assigned by the
// store on create.
func NewUser(firstName, lastName, email string, age int, createdAt, updatedAt time.Time) *User {
	return &User{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Age:       age,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// FullName returns the user's display name for confirmation messages.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
