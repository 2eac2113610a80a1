package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"vlearn-backend/configs"
)

type fakeSessionStore struct {
	sessions map[string]string
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[string]string)}
}

func (s *fakeSessionStore) Set(ctx context.Context, token, userID string, ttl time.Duration) error {
	s.sessions[token] = userID
	return nil
}

func (s *fakeSessionStore) Exists(ctx context.Context, token string) (bool, error) {
	_, ok := s.sessions[token]
	return ok, nil
}

func (s *fakeSessionStore) Delete(ctx context.Context, token string) error {
	delete(s.sessions, token)
	return nil
}

func newAuthFixture(t *testing.T) (*AuthService, *fakeSessionStore) {
	t.Helper()
	if configs.AppConfig == nil {
		configs.AppConfig = &configs.Config{JWTSecret: "test-secret"}
	}
	sessions := newFakeSessionStore()
	return NewAuthService(newFakeUserStore(), sessions), sessions
}

func TestSignUpAndSignIn(t *testing.T) {
	auth, _ := newAuthFixture(t)
	ctx := context.Background()

	user, token, err := auth.SignUp(ctx, "ada@example.com", "hunter22", "Ada")
	if err != nil {
		t.Fatalf("SignUp: %v", err)
	}
	if user.ID == "" || token == "" {
		t.Fatalf("user = %+v token = %q", user, token)
	}
	if user.PasswordHash == "hunter22" {
		t.Error("password stored in plain text")
	}
	if alive, _ := auth.SessionAlive(ctx, token); !alive {
		t.Error("session not opened on sign up")
	}

	signedIn, token2, err := auth.SignIn(ctx, "ada@example.com", "hunter22")
	if err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	if signedIn.ID != user.ID {
		t.Errorf("signed in as %q, want %q", signedIn.ID, user.ID)
	}
	if alive, _ := auth.SessionAlive(ctx, token2); !alive {
		t.Error("session not opened on sign in")
	}

	if err := auth.SignOut(ctx, token2); err != nil {
		t.Fatalf("SignOut: %v", err)
	}
	if alive, _ := auth.SessionAlive(ctx, token2); alive {
		t.Error("session survived sign out")
	}
}

func TestSignUpDuplicateEmail(t *testing.T) {
	auth, _ := newAuthFixture(t)
	ctx := context.Background()

	if _, _, err := auth.SignUp(ctx, "ada@example.com", "hunter22", "Ada"); err != nil {
		t.Fatal(err)
	}
	if _, _, err := auth.SignUp(ctx, "ada@example.com", "other", "Ada Again"); err == nil {
		t.Error("expected error for duplicate email")
	}
}

func TestSignInWrongCredentials(t *testing.T) {
	auth, _ := newAuthFixture(t)
	ctx := context.Background()

	if _, _, err := auth.SignUp(ctx, "ada@example.com", "hunter22", "Ada"); err != nil {
		t.Fatal(err)
	}

	if _, _, err := auth.SignIn(ctx, "ada@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password error = %v, want ErrInvalidCredentials", err)
	}
	if _, _, err := auth.SignIn(ctx, "nobody@example.com", "hunter22"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown email error = %v, want ErrInvalidCredentials", err)
	}
}

func TestSignUpValidation(t *testing.T) {
	auth, _ := newAuthFixture(t)
	if _, _, err := auth.SignUp(context.Background(), "", "", ""); err == nil {
		t.Error("expected error for empty fields")
	}
}
