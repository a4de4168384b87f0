package domain

import (
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
)

// User-specific validation errors
var (
	// ErrUserIDEmpty is returned when a user ID is empty or nil.
	ErrUserIDEmpty = errors.New("user ID cannot be empty")

	// ErrUserNameEmpty is returned when a user's display name is empty.
	ErrUserNameEmpty = errors.New("user name cannot be empty")
)

// emailPattern is a pragmatic email shape check, not a full RFC 5322 parser.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// User represents an account that owns topics, flashcards and quizzes.
// Credential handling lives outside this core.
type User struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// NewUser creates a new User with the given name and email.
// Returns an error if validation fails.
func NewUser(name, email string) (*User, error) {
	user := &User{
		ID:        uuid.New(),
		Name:      name,
		Email:     email,
		CreatedAt: time.Now().UTC(),
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
		return ErrUserIDEmpty
	}

	if u.Name == "" {
		return ErrUserNameEmpty
	}

	if !emailPattern.MatchString(u.Email) {
		return ErrInvalidEmail
	}

	return nil
}
