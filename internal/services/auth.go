package services

import (
	"errors"
	"time"

	"github.com/ArtemTurin1/miniapp/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

// AuthService issues and validates tokens for email/password accounts.
// Account storage and credential checks live in the UserService.
type AuthService struct {
	users     *UserService
	jwtSecret []byte
}

func NewAuthService(users *UserService, jwtSecret string) *AuthService {
	return &AuthService{users: users, jwtSecret: []byte(jwtSecret)}
}

func (s *AuthService) Register(email, password, name string) (string, error) {
	user, err := s.users.RegisterByEmail(email, password, name)
	if err != nil {
		return "", err
	}
	return s.GenerateToken(user.ID)
}

func (s *AuthService) Login(email, password string) (string, error) {
	user, err := s.users.CheckCredentials(email, password)
	if err != nil {
		return "", err
	}
	return s.GenerateToken(user.ID)
}

func (s *AuthService) GenerateToken(userID uint) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

func (s *AuthService) ValidateToken(tokenString string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return 0, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errors.New("invalid claims")
	}

	userIDFloat, ok := claims["user_id"].(float64)
	if !ok {
		return 0, errors.New("invalid user_id in token")
	}

	return uint(userIDFloat), nil
}

// Profile is the /api/me payload: the account plus its quiz stats.
type Profile struct {
	User  *models.User `json:"user"`
	Stats *UserStats   `json:"stats"`
}
