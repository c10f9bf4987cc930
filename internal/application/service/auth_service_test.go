package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mamisoa/girofle-api/internal/domain/entity"
	"github.com/mamisoa/girofle-api/pkg/utils"
)

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func newTestAuthService() (*AuthService, *fakeUserRepo) {
	userRepo := newFakeUserRepo()
	jwtManager := utils.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	return NewAuthService(userRepo, jwtManager), userRepo
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newTestAuthService()

	user, err := svc.Register(context.Background(), &RegisterInput{
		FirstName: "Miora",
		LastName:  "Andrian",
		Email:     "miora@example.com",
		Password:  "s3cret-pass",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.Password == "s3cret-pass" {
		t.Error("password stored in clear")
	}

	loggedIn, tokens, err := svc.Login(context.Background(), "miora@example.com", "s3cret-pass")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if loggedIn.ID != user.ID {
		t.Errorf("logged-in user %v, want %v", loggedIn.ID, user.ID)
	}
	if tokens.AccessToken == "" || tokens.RefreshToken == "" {
		t.Error("expected both tokens to be issued")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newTestAuthService()

	input := &RegisterInput{FirstName: "Miora", LastName: "Andrian", Email: "miora@example.com", Password: "s3cret-pass"}
	if _, err := svc.Register(context.Background(), input); err != nil {
		t.Fatalf("first Register: %v", err)
	}

	_, err := svc.Register(context.Background(), input)
	appErr := asAppError(t, err)
	if appErr.Code != 409 {
		t.Errorf("code = %d, want 409", appErr.Code)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newTestAuthService()

	if _, err := svc.Register(context.Background(), &RegisterInput{
		FirstName: "Miora", LastName: "Andrian", Email: "miora@example.com", Password: "s3cret-pass",
	}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, _, err := svc.Login(context.Background(), "miora@example.com", "wrong-pass")
	appErr := asAppError(t, err)
	if appErr.Code != 401 {
		t.Errorf("code = %d, want 401", appErr.Code)
	}
}

func TestRefreshIssuesNewPair(t *testing.T) {
	svc, _ := newTestAuthService()

	if _, err := svc.Register(context.Background(), &RegisterInput{
		FirstName: "Miora", LastName: "Andrian", Email: "miora@example.com", Password: "s3cret-pass",
	}); err != nil {
		t.Fatalf("Register: %v", err)
	}
	_, tokens, err := svc.Login(context.Background(), "miora@example.com", "s3cret-pass")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	refreshed, err := svc.Refresh(context.Background(), tokens.RefreshToken)
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if refreshed.AccessToken == "" {
		t.Error("expected a new access token")
	}

	if _, err := svc.Refresh(context.Background(), "not-a-token"); err == nil {
		t.Error("expected an error for a malformed refresh token")
	}
}
