package queries_test

import (
	"context"
	"testing"

	"marketplace/internal/adapters/out/crypto"
	"marketplace/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/suite"
)

type AuthenticateDriverQueryHandlerTestSuite struct {
	queryHandlerSuite
	hasher  crypto.BcryptPasswordHasher
	handler queries.AuthenticateDriverQueryHandler
}

func (s *AuthenticateDriverQueryHandlerTestSuite) SetupSuite() {
	s.queryHandlerSuite.SetupSuite()
	s.hasher = crypto.NewBcryptPasswordHasher()
	s.handler = queries.NewAuthenticateDriverQueryHandler(s.db, s.hasher)
}

func (s *AuthenticateDriverQueryHandlerTestSuite) TestHandle_ValidCredentials_ReturnsIdentity() {
	hash, err := s.hasher.Hash("hunter2secret")
	s.Require().NoError(err)
	d := s.seedDriver("dave42", hash)

	query, err := queries.NewAuthenticateDriverQuery("dave42", "hunter2secret")
	s.Require().NoError(err)

	identity, err := s.handler.Handle(context.Background(), query)

	s.Require().NoError(err)
	s.Equal(d.ID(), identity.DriverID)
	s.Equal("dave42", identity.Username)
	s.Equal("Dave Porter", identity.FullName)
}

func (s *AuthenticateDriverQueryHandlerTestSuite) TestHandle_WrongPassword_ReturnsInvalidCredentials() {
	hash, err := s.hasher.Hash("hunter2secret")
	s.Require().NoError(err)
	s.seedDriver("dave42", hash)

	query, err := queries.NewAuthenticateDriverQuery("dave42", "wrongpassword")
	s.Require().NoError(err)

	_, err = s.handler.Handle(context.Background(), query)

	s.Require().Error(err)
	s.ErrorIs(err, queries.ErrInvalidCredentials)
}

func (s *AuthenticateDriverQueryHandlerTestSuite) TestHandle_UnknownUsername_ReturnsInvalidCredentials() {
	query, err := queries.NewAuthenticateDriverQuery("nobody", "hunter2secret")
	s.Require().NoError(err)

	_, err = s.handler.Handle(context.Background(), query)

	s.Require().Error(err)
	s.ErrorIs(err, queries.ErrInvalidCredentials)
}

func (s *AuthenticateDriverQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	_, err := s.handler.Handle(context.Background(), queries.AuthenticateDriverQuery{})

	s.Require().Error(err)
	s.Contains(err.Error(), "must be created via NewAuthenticateDriverQuery constructor")
}

func TestAuthenticateDriverQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AuthenticateDriverQueryHandlerTestSuite))
}
