package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"usersvc/internal/auth"
	apperrors "usersvc/internal/errors"
)

func TestAuthService_Login(t *testing.T) {
	tests := []struct {
		name          string
		userName      string
		password      string
		expectedError error
	}{
		{
			name:     "successful login",
			userName: "foo",
			password: "bar",
		},
		{
			name:          "wrong password",
			userName:      "foo",
			password:      "nope",
			expectedError: apperrors.ErrWrongCredentials,
		},
		{
			name:          "wrong username",
			userName:      "someone",
			password:      "bar",
			expectedError: apperrors.ErrWrongCredentials,
		},
		{
			name:          "missing username",
			userName:      "",
			password:      "bar",
			expectedError: apperrors.ErrMissingCredentials,
		},
		{
			name:          "missing password",
			userName:      "foo",
			password:      "",
			expectedError: apperrors.ErrMissingCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jwtService := auth.NewJWTService("test-secret")
			svc := NewAuthService(jwtService, "foo", "bar")

			body, err := svc.Login(context.Background(), tt.userName, tt.password)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, body)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, body)
				assert.NotEmpty(t, body.AccessToken)
				assert.Equal(t, auth.TokenType, body.TokenType)
			}
		})
	}
}
