package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"cinepass/internal/shared/config"
	"cinepass/internal/users"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type mockAuthRepo struct {
	usersByID       map[string]*users.User
	usersByUsername map[string]*users.User
	usersByEmail    map[string]*users.User
	roles           map[users.RoleName]users.Role
}

func newMockAuthRepo() *mockAuthRepo {
	repo := &mockAuthRepo{
		usersByID:       make(map[string]*users.User),
		usersByUsername: make(map[string]*users.User),
		usersByEmail:    make(map[string]*users.User),
		roles:           make(map[users.RoleName]users.Role),
	}
	for _, name := range users.AllRoleNames() {
		repo.roles[name] = users.Role{ID: uuid.New(), Name: name}
	}
	return repo
}

func (m *mockAuthRepo) CreateUser(ctx context.Context, user *users.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	m.usersByID[user.ID.String()] = user
	m.usersByUsername[user.Username] = user
	m.usersByEmail[user.Email] = user
	return nil
}

func (m *mockAuthRepo) GetUserByUsername(ctx context.Context, username string) (*users.User, error) {
	user, ok := m.usersByUsername[username]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (m *mockAuthRepo) GetUserByEmail(ctx context.Context, email string) (*users.User, error) {
	user, ok := m.usersByEmail[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (m *mockAuthRepo) GetUserByID(ctx context.Context, id string) (*users.User, error) {
	user, ok := m.usersByID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (m *mockAuthRepo) GetRolesByNames(ctx context.Context, names []users.RoleName) ([]users.Role, error) {
	var result []users.Role
	for _, name := range names {
		if role, ok := m.roles[name]; ok {
			result = append(result, role)
		}
	}
	return result, nil
}

func (m *mockAuthRepo) UpdatePassword(ctx context.Context, id string, passwordHash string) error {
	user, ok := m.usersByID[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	user.Password = passwordHash
	return nil
}

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:           "test-secret",
		JWTExpiresIn:     time.Hour,
		RefreshExpiresIn: 24 * time.Hour,
	}
}

func TestSignupDefaultsToUserRole(t *testing.T) {
	repo := newMockAuthRepo()
	svc := NewService(repo, testJWTConfig())

	resp, err := svc.Signup(context.Background(), &SignupRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(resp.User.Roles) != 1 || resp.User.Roles[0] != "user" {
		t.Errorf("expected default role [user], got %v", resp.User.Roles)
	}
	if resp.Tokens.AccessToken == "" || resp.Tokens.RefreshToken == "" {
		t.Error("expected both tokens to be issued")
	}
}

func TestSignupRejectsUnknownRole(t *testing.T) {
	repo := newMockAuthRepo()
	svc := NewService(repo, testJWTConfig())

	_, err := svc.Signup(context.Background(), &SignupRequest{
		Username: "mallory",
		Email:    "mallory@example.com",
		Password: "password123",
		Roles:    []string{"superuser"},
	})
	if !errors.Is(err, ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestSignupDuplicateChecks(t *testing.T) {
	repo := newMockAuthRepo()
	svc := NewService(repo, testJWTConfig())

	first := &SignupRequest{Username: "alice", Email: "alice@example.com", Password: "password123"}
	if _, err := svc.Signup(context.Background(), first); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := svc.Signup(context.Background(), &SignupRequest{
		Username: "alice", Email: "other@example.com", Password: "password123",
	})
	if !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}

	_, err = svc.Signup(context.Background(), &SignupRequest{
		Username: "alice2", Email: "alice@example.com", Password: "password123",
	})
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestSigninVerifiesPassword(t *testing.T) {
	repo := newMockAuthRepo()
	svc := NewService(repo, testJWTConfig())

	if _, err := svc.Signup(context.Background(), &SignupRequest{
		Username: "alice", Email: "alice@example.com", Password: "password123",
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := svc.Signin(context.Background(), &SigninRequest{Username: "alice", Password: "password123"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := svc.Signin(context.Background(), &SigninRequest{Username: "alice", Password: "wrong"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	if _, err := svc.Signin(context.Background(), &SigninRequest{Username: "nobody", Password: "password123"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestRefreshTokenRejectsAccessToken(t *testing.T) {
	repo := newMockAuthRepo()
	svc := NewService(repo, testJWTConfig())

	resp, err := svc.Signup(context.Background(), &SignupRequest{
		Username: "alice", Email: "alice@example.com", Password: "password123",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := svc.RefreshToken(context.Background(), resp.Tokens.RefreshToken); err != nil {
		t.Fatalf("expected refresh token to be accepted, got %v", err)
	}

	if _, err := svc.RefreshToken(context.Background(), resp.Tokens.AccessToken); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for access token, got %v", err)
	}

	if _, err := svc.RefreshToken(context.Background(), "not.a.token"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for garbage, got %v", err)
	}
}

func TestChangePassword(t *testing.T) {
	repo := newMockAuthRepo()
	svc := NewService(repo, testJWTConfig())

	resp, err := svc.Signup(context.Background(), &SignupRequest{
		Username: "alice", Email: "alice@example.com", Password: "password123",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	userID := resp.User.ID

	err = svc.ChangePassword(context.Background(), userID, &ChangePasswordRequest{
		CurrentPassword: "wrong",
		NewPassword:     "newpassword456",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	err = svc.ChangePassword(context.Background(), userID, &ChangePasswordRequest{
		CurrentPassword: "password123",
		NewPassword:     "newpassword456",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := svc.Signin(context.Background(), &SigninRequest{Username: "alice", Password: "newpassword456"}); err != nil {
		t.Fatalf("expected signin with new password to work, got %v", err)
	}
}

func TestResolveRoleNames(t *testing.T) {
	names, err := resolveRoleNames([]string{" Admin ", "user", "admin"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(names) != 2 {
		t.Fatalf("expected deduped [admin user], got %v", names)
	}

	if _, err := resolveRoleNames([]string{"ghost"}); !errors.Is(err, ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}
