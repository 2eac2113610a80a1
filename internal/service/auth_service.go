package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"vlearn-backend/internal/models"
	"vlearn-backend/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

const sessionTTL = 24 * time.Hour

var ErrInvalidCredentials = errors.New("invalid email or password")

type SessionStore interface {
	Set(ctx context.Context, token, userID string, ttl time.Duration) error
	Exists(ctx context.Context, token string) (bool, error)
	Delete(ctx context.Context, token string) error
}

type AuthService struct {
	users    UserStore
	sessions SessionStore
}

func NewAuthService(users UserStore, sessions SessionStore) *AuthService {
	return &AuthService{users: users, sessions: sessions}
}

// SignUp registers a new user and signs them in.
func (s *AuthService) SignUp(ctx context.Context, email, password, name string) (*models.User, string, error) {
	if email == "" || password == "" || name == "" {
		return nil, "", fmt.Errorf("email, password and name are required")
	}

	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil && err != mongo.ErrNoDocuments {
		return nil, "", fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, "", fmt.Errorf("an account with email %s already exists", email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := &models.User{
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.openSession(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// SignIn verifies credentials and opens a session.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (*models.User, string, error) {
	if email == "" || password == "" {
		return nil, "", fmt.Errorf("email and password are required")
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err == mongo.ErrNoDocuments {
		return nil, "", ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.openSession(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// SignOut revokes the session behind the token.
func (s *AuthService) SignOut(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}

// SessionAlive reports whether a token's session has not been revoked.
func (s *AuthService) SessionAlive(ctx context.Context, token string) (bool, error) {
	return s.sessions.Exists(ctx, token)
}

func (s *AuthService) GetUser(ctx context.Context, userID string) (*models.User, error) {
	return s.users.FindByID(ctx, userID)
}

func (s *AuthService) openSession(ctx context.Context, userID string) (string, error) {
	token, err := utils.GenerateJWT(userID)
	if err != nil {
		return "", err
	}
	if err := s.sessions.Set(ctx, token, userID, sessionTTL); err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}
	return token, nil
}
