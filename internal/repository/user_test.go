package repository_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stridehq/stride/internal/model"
	"github.com/stridehq/stride/internal/repository"
)

func newUser(externalID, email string) *model.User {
	return &model.User{
		ID:         uuid.New().String(),
		ExternalID: externalID,
		Email:      email,
		CreatedAt:  time.Now().UTC(),
	}
}

func TestUserRepository_CreateAndByExternalID(t *testing.T) {
	repo := repository.NewUserRepository(newTestDB(t))

	created := newUser("idp_123", "alice@example.com")
	err := repo.Create(created)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	fetched, err := repo.ByExternalID("idp_123")
	if err != nil {
		t.Fatalf("by external id: %v", err)
	}
	if fetched.ID != created.ID {
		t.Fatalf("expected id %q, got %q", created.ID, fetched.ID)
	}
	if fetched.Email != "alice@example.com" {
		t.Fatalf("unexpected email: %q", fetched.Email)
	}
}

func TestUserRepository_Create_DuplicateExternalID(t *testing.T) {
	repo := repository.NewUserRepository(newTestDB(t))

	err := repo.Create(newUser("idp_dup", "first@example.com"))
	if err != nil {
		t.Fatalf("first create: %v", err)
	}

	err = repo.Create(newUser("idp_dup", "second@example.com"))
	if !errors.Is(err, repository.ErrDuplicateExternalID) {
		t.Fatalf("expected ErrDuplicateExternalID, got %v", err)
	}
}

func TestUserRepository_ByExternalID_NotFound(t *testing.T) {
	repo := repository.NewUserRepository(newTestDB(t))

	_, err := repo.ByExternalID("idp_missing")
	if !errors.Is(err, repository.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserRepository_ByID(t *testing.T) {
	repo := repository.NewUserRepository(newTestDB(t))

	created := newUser("idp_byid", "byid@example.com")
	err := repo.Create(created)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	fetched, err := repo.ByID(created.ID)
	if err != nil {
		t.Fatalf("by id: %v", err)
	}
	if fetched.ExternalID != "idp_byid" {
		t.Fatalf("unexpected external id: %q", fetched.ExternalID)
	}

	_, err = repo.ByID("missing")
	if !errors.Is(err, repository.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
