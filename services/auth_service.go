package services

import (
	"fmt"
	"strings"
	"time"

	"taskping/taskping/broker"
	"taskping/taskping/database"
	"taskping/taskping/models"
	"taskping/taskping/utils/token"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Use the SessionClaims from token package
type SessionClaims = token.SessionClaims

type AuthServiceInterface interface {
	Register(db *database.Database, email, password, confirm string) (models.User, error)
	Login(db *database.Database, email, password string) (string, error)
	ValidateSession(tokenString string) (*SessionClaims, error)
	HashPassword(password string) (string, error)
	ComparePasswords(hashedPassword, password string) error
}

type AuthService struct {
	sessionSecret []byte
	sessionTTL    time.Duration
}

func NewAuthService(sessionSecret string, sessionTTLHours int) *AuthService {
	return &AuthService{
		sessionSecret: []byte(sessionSecret),
		sessionTTL:    time.Duration(sessionTTLHours) * time.Hour,
	}
}

func (s *AuthService) Register(db *database.Database, email, password, confirm string) (models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if email == "" || password == "" {
		return models.User{}, fmt.Errorf("%w: email and password are required", ErrValidation)
	}
	if password != confirm {
		return models.User{}, fmt.Errorf("%w: passwords do not match", ErrValidation)
	}

	var existing int64
	if err := db.DB.Model(&models.User{}).Where("email = ?", email).Count(&existing).Error; err != nil {
		return models.User{}, err
	}
	if existing > 0 {
		return models.User{}, ErrEmailTaken
	}

	hash, err := s.HashPassword(password)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
	}

	if err := db.DB.Create(&user).Error; err != nil {
		return models.User{}, err
	}

	broker.PublishEvent(broker.UserEventsSubject, string(broker.UserRegistered), map[string]interface{}{
		"user_id": user.ID.String(),
		"email":   user.Email,
	})

	return user, nil
}

func (s *AuthService) Login(db *database.Database, email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user models.User
	if err := db.DB.Where("email = ?", email).First(&user).Error; err != nil {
		// Same error for unknown email and bad password.
		return "", ErrInvalidCredentials
	}

	if err := s.ComparePasswords(user.PasswordHash, password); err != nil {
		return "", ErrInvalidCredentials
	}

	tokenString, err := token.GenerateToken(user.ID, user.Email, s.sessionSecret, s.sessionTTL)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ValidateSession uses the token utility to validate session tokens
func (s *AuthService) ValidateSession(tokenString string) (*SessionClaims, error) {
	return token.ValidateToken(tokenString, s.sessionSecret)
}

func (s *AuthService) HashPassword(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

func (s *AuthService) ComparePasswords(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

var AuthServiceInstance AuthServiceInterface
