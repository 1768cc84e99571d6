package services

import (
	"errors"
	"testing"

	"print_shop/internal/models"
	"print_shop/internal/repository/mocks"

	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func TestCreateUserHashesPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepository(ctrl)
	svc := NewUserService(users)

	var created *models.User
	users.EXPECT().Create(gomock.Any()).DoAndReturn(func(u *models.User) error {
		created = u
		return nil
	})

	user := &models.User{Username: "alice", OrganizationID: 1}
	if err := svc.CreateUser(user, "s3cret"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.PasswordHash == "s3cret" || created.PasswordHash == "" {
		t.Fatal("the password must be stored hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("s3cret")); err != nil {
		t.Errorf("stored hash does not verify: %v", err)
	}
}

func TestAuthenticate(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hashing fixture password: %v", err)
	}

	t.Run("valid credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mocks.NewMockUserRepository(ctrl)
		svc := NewUserService(users)

		users.EXPECT().GetByUsername("alice").Return(&models.User{
			ID: 7, Username: "alice", PasswordHash: string(hash), IsActive: true,
		}, nil)

		user, err := svc.Authenticate("alice", "s3cret")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.ID != 7 {
			t.Errorf("user id = %d, want 7", user.ID)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mocks.NewMockUserRepository(ctrl)
		svc := NewUserService(users)

		users.EXPECT().GetByUsername("alice").Return(&models.User{
			Username: "alice", PasswordHash: string(hash), IsActive: true,
		}, nil)

		if _, err := svc.Authenticate("alice", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("inactive account", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mocks.NewMockUserRepository(ctrl)
		svc := NewUserService(users)

		users.EXPECT().GetByUsername("alice").Return(&models.User{
			Username: "alice", PasswordHash: string(hash), IsActive: false,
		}, nil)

		if _, err := svc.Authenticate("alice", "s3cret"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("unknown user is indistinguishable from a bad password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mocks.NewMockUserRepository(ctrl)
		svc := NewUserService(users)

		users.EXPECT().GetByUsername("bob").Return(nil, gorm.ErrRecordNotFound)
		if _, err := svc.Authenticate("bob", "s3cret"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})
}
