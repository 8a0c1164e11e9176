package service

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"talenthub/internal/model"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// AuthService handles HR dashboard authentication
type AuthService struct {
	hrUsername string
	hrPassword string
	jwtSecret  []byte
}

// NewAuthService creates a new auth service
func NewAuthService() *AuthService {
	username := os.Getenv("HR_USERNAME")
	if username == "" {
		username = "admin"
	}
	password := os.Getenv("HR_PASSWORD")
	if password == "" {
		password = "password123"
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "super-secret-key-change-in-production"
	}

	return &AuthService{
		hrUsername: username,
		hrPassword: password,
		jwtSecret:  []byte(secret),
	}
}

// Login validates credentials and returns a session token
func (s *AuthService) Login(username, password string) (*model.LoginResponse, error) {
	if username != s.hrUsername || password != s.hrPassword {
		return nil, ErrInvalidCredentials
	}

	userID := "hr_" + uuid.New().String()[:8]

	claims := &model.HRClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, err
	}

	return &model.LoginResponse{
		Token:  tokenString,
		UserID: userID,
	}, nil
}

// ValidateToken validates an HR JWT and returns its claims
func (s *AuthService) ValidateToken(tokenString string) (*model.HRClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &model.HRClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*model.HRClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
