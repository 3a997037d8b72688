package service

import (
	"context"
	"testing"
	"time"

	"github.com/granjatech/granja-api/internal/config"
	"github.com/granjatech/granja-api/pkg/apperror"
	"github.com/granjatech/granja-api/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthFixture(t *testing.T) (*AuthService, *utils.JWTManager) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)

	jwtManager := utils.NewJWTManager("test-secret", time.Hour)
	svc := NewAuthService(config.AdminConfig{
		Username:     "operator",
		PasswordHash: string(hash),
	}, jwtManager)
	return svc, jwtManager
}

func TestLoginIssuesValidToken(t *testing.T) {
	svc, jwtManager := newAuthFixture(t)

	result, err := svc.Login(context.Background(), "operator", "correct-horse")
	require.NoError(t, err)
	assert.Equal(t, "Bearer", result.TokenType)

	claims, err := jwtManager.ValidateAccessToken(result.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "operator", claims.Username)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.Login(context.Background(), "operator", "wrong")
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)
}

func TestLoginUnknownUsername(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.Login(context.Background(), "root", "correct-horse")
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)
}
