package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common validation errors
var (
	ErrEmptyUserID    = errors.New("user ID cannot be empty")
	ErrEmptyFirstName = errors.New("first name cannot be empty")
	ErrEmptyLastName  = errors.New("last name cannot be empty")
	ErrZeroBirthdate  = errors.New("birthdate cannot be zero")
	ErrEmptyPassword  = errors.New("password cannot be empty")
)

// User represents an account-holding customer of the bank.
// The identity triple (FirstName, LastName, Birthdate) is unique across all
// users in addition to the ID itself; both constraints are enforced by the
// store, not here.
type User struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Birthdate time.Time `json:"birthdate"`
	Password  string    `json:"-"` // Stored as given; never exposed in JSON
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewUser creates a new User with a generated ID.
// Timestamps are left zero; the repository stamps them at persist time.
// Returns an error if validation fails.
func NewUser(firstName, lastName string, birthdate time.Time, password string) (*User, error) {
	user := &User{
		ID:        uuid.New(),
		FirstName: firstName,
		LastName:  lastName,
		Birthdate: birthdate,
		Password:  password,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrEmptyUserID
	}
	if u.FirstName == "" {
		return ErrEmptyFirstName
	}
	if u.LastName == "" {
		return ErrEmptyLastName
	}
	if u.Birthdate.IsZero() {
		return ErrZeroBirthdate
	}
	if u.Password == "" {
		return ErrEmptyPassword
	}
	return nil
}
