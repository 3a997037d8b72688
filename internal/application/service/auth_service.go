package service

import (
	"context"

	"github.com/granjatech/granja-api/internal/config"
	"github.com/granjatech/granja-api/pkg/apperror"
	"github.com/granjatech/granja-api/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles single-operator authentication. Credentials live in
// configuration; there is no user table.
type AuthService struct {
	admin      config.AdminConfig
	jwtManager *utils.JWTManager
}

// NewAuthService creates a new auth service
func NewAuthService(admin config.AdminConfig, jwtManager *utils.JWTManager) *AuthService {
	return &AuthService{admin: admin, jwtManager: jwtManager}
}

// LoginResult represents a successful login
type LoginResult struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Login validates the operator credentials and issues an access token
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	if username != s.admin.Username {
		return nil, apperror.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.admin.PasswordHash), []byte(password)); err != nil {
		return nil, apperror.ErrInvalidCredentials
	}

	token, err := s.jwtManager.GenerateAccessToken(username)
	if err != nil {
		return nil, err
	}

	return &LoginResult{AccessToken: token, TokenType: "Bearer"}, nil
}
