package queries

import (
	"errors"
	"strings"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrAuthenticateDriverQueryIsNotConstructed = errors.New(
	"AuthenticateDriverQuery must be created via NewAuthenticateDriverQuery constructor",
)

// AuthenticateDriverQuery verifies driver login credentials.
type AuthenticateDriverQuery struct {
	username string
	password string

	guard guard.ConstructorGuard
}

// NewAuthenticateDriverQuery creates a credential check for the given login.
func NewAuthenticateDriverQuery(username, password string) (AuthenticateDriverQuery, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return AuthenticateDriverQuery{}, errs.NewValueIsRequiredError("username")
	}
	if password == "" {
		return AuthenticateDriverQuery{}, errs.NewValueIsRequiredError("password")
	}

	return AuthenticateDriverQuery{
		username: username,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q AuthenticateDriverQuery) Validate() error {
	return q.guard.Validate(ErrAuthenticateDriverQueryIsNotConstructed)
}

// Username returns the login name, trimmed.
func (q AuthenticateDriverQuery) Username() string {
	return q.username
}

// Password returns the plaintext password to verify.
func (q AuthenticateDriverQuery) Password() string {
	return q.password
}
