package service

import (
	"fmt"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/wealthflow/wealthflow-backend/internal/apperrors"
	"github.com/wealthflow/wealthflow-backend/internal/model"
	"github.com/wealthflow/wealthflow-backend/internal/repository"
)

const minPasswordLength = 6

// AuthService handles registration, login and session token validation.
type AuthService struct {
	userRepo  *repository.UserRepository
	jwtSecret string
}

// NewAuthService creates a new AuthService with the provided dependencies.
func NewAuthService(userRepo *repository.UserRepository, jwtSecret string) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
	}
}

// Register creates a new user with a hashed password and seeds exactly one
// default cash account (name 預設現金帳戶, balance 0, TWD) in the same store
// write. No demo stocks or transactions are created. Returns the user and a
// session token.
func (s *AuthService) Register(email, password, displayName string) (model.User, string, error) {
	if len(password) < minPasswordLength {
		return model.User{}, "", apperrors.ErrWeakPassword
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return model.User{}, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := model.User{
		ID:           uuid.New().String(),
		Email:        email,
		DisplayName:  displayName,
		PasswordHash: string(hashedPassword),
	}

	seed := model.Account{
		ID:       uuid.New().String(),
		UserID:   user.ID,
		Name:     model.DefaultAccountName,
		Type:     model.AccountTypeCash,
		Balance:  0,
		Currency: "TWD",
	}

	if err := s.userRepo.CreateUserWithSeedAccount(user, seed); err != nil {
		return model.User{}, "", err
	}

	token, err := s.generateToken(user.ID)
	if err != nil {
		return model.User{}, "", err
	}

	log.Printf("user registered: %s", user.Email)
	return user, token, nil
}

// Login authenticates a user by email and password and returns a session
// token. Unknown emails and wrong passwords are indistinguishable to the
// caller.
func (s *AuthService) Login(email, password string) (model.User, string, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return model.User{}, "", apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return model.User{}, "", apperrors.ErrInvalidCredentials
	}

	token, err := s.generateToken(user.ID)
	if err != nil {
		return model.User{}, "", err
	}

	log.Printf("user logged in: %s", user.Email)
	return user, token, nil
}

// GetUser returns the user for a given ID.
func (s *AuthService) GetUser(userID string) (model.User, error) {
	return s.userRepo.FindByID(userID)
}

// ValidateToken verifies a session token and returns the user ID it was
// issued for.
func (s *AuthService) ValidateToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return "", apperrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", apperrors.ErrInvalidToken
	}

	return claims.Subject, nil
}

func (s *AuthService) generateToken(userID string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	})

	tokenString, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	return tokenString, nil
}
