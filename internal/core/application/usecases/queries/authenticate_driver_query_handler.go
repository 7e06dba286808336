package queries

import (
	"context"
	"database/sql"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrInvalidCredentials is returned for a wrong username or password. The two
// cases are deliberately indistinguishable to the caller.
var ErrInvalidCredentials = errors.New("invalid username or password")

// AuthenticateDriverQueryResponse is the identity handed back on a successful
// login.
type AuthenticateDriverQueryResponse struct {
	DriverID kernel.UUID
	Username string
	FullName string
}

// AuthenticateDriverQueryHandler verifies login credentials against the
// stored hash. Only the hash ever leaves the database; comparison happens
// through the hasher.
type AuthenticateDriverQueryHandler struct {
	db     *gorm.DB
	hasher ports.PasswordHasher
}

// NewAuthenticateDriverQueryHandler creates a handler for driver login.
func NewAuthenticateDriverQueryHandler(db *gorm.DB, hasher ports.PasswordHasher) AuthenticateDriverQueryHandler {
	return AuthenticateDriverQueryHandler{db: db, hasher: hasher}
}

// Handle verifies the credentials and returns the driver identity, or
// ErrInvalidCredentials when the username is unknown or the password does not
// match.
func (h AuthenticateDriverQueryHandler) Handle(
	ctx context.Context,
	query AuthenticateDriverQuery,
) (AuthenticateDriverQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return AuthenticateDriverQueryResponse{}, err
	}

	var id uuid.UUID
	var username, passwordHash, fullName string

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			username,
			password_hash,
			full_name
		FROM drivers
		WHERE username = ?
	`, query.Username()).Row()

	if err := row.Scan(&id, &username, &passwordHash, &fullName); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return AuthenticateDriverQueryResponse{}, ErrInvalidCredentials
		}
		return AuthenticateDriverQueryResponse{}, err
	}

	if err := h.hasher.Compare(passwordHash, query.Password()); err != nil {
		return AuthenticateDriverQueryResponse{}, ErrInvalidCredentials
	}

	driverID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return AuthenticateDriverQueryResponse{}, err
	}

	return AuthenticateDriverQueryResponse{
		DriverID: driverID,
		Username: username,
		FullName: fullName,
	}, nil
}
