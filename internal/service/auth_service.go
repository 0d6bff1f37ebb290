package service

import (
	"context"

	"usersvc/internal/auth"
	apperrors "usersvc/internal/errors"
)

// AuthService handles authentication operations.
type AuthService interface {
	Login(ctx context.Context, userName, password string) (*auth.AuthBody, error)
}

type authService struct {
	jwtService *auth.JWTService
	userName   string
	password   string
}

// NewAuthService creates an authentication service validating against the
// configured credential pair. There is no credential store in this scope.
func NewAuthService(jwtService *auth.JWTService, userName, password string) AuthService {
	return &authService{
		jwtService: jwtService,
		userName:   userName,
		password:   password,
	}
}

// Login validates the credential pair and issues a bearer token for the
// authenticated subject.
func (s *authService) Login(_ context.Context, userName, password string) (*auth.AuthBody, error) {
	if userName == "" || password == "" {
		return nil, apperrors.ErrMissingCredentials
	}

	if userName != s.userName || password != s.password {
		return nil, apperrors.ErrWrongCredentials
	}

	body, err := s.jwtService.GenerateTokens(userName)
	if err != nil {
		return nil, apperrors.ErrTokenCreation
	}
	return body, nil
}
