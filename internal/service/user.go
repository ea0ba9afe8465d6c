package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stridehq/stride/internal/model"
	"github.com/stridehq/stride/internal/repository"
	"github.com/stridehq/stride/internal/validation"
)

var (
	ErrExternalIDRequired = errors.New("external id is required")
	ErrInvalidEmail       = errors.New("invalid email address")
)

type UserService struct {
	userRepository repository.UserRepository
}

func NewUserService(userRepository repository.UserRepository) *UserService {
	return &UserService{
		userRepository: userRepository,
	}
}

// EnsureUser maps an identity-provider subject to the internal user row,
// creating it on first sight. The mapping is idempotent: the same external
// id always resolves to the same row, and the email captured at creation is
// not refreshed on later calls.
func (s *UserService) EnsureUser(externalID, email string) (*model.User, error) {
	externalID = strings.TrimSpace(externalID)
	if externalID == "" {
		return nil, ErrExternalIDRequired
	}

	err := validation.ValidateEmail(email)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEmail, err)
	}

	user, err := s.userRepository.ByExternalID(externalID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	user = &model.User{
		ID:         uuid.New().String(),
		ExternalID: externalID,
		Email:      strings.TrimSpace(strings.ToLower(email)),
		CreatedAt:  time.Now().UTC(),
	}

	err = s.userRepository.Create(user)
	if errors.Is(err, repository.ErrDuplicateExternalID) {
		// Lost a concurrent first-sight race. The unique constraint on
		// external_id guarantees a winner exists, so read that row back.
		user, err = s.userRepository.ByExternalID(externalID)
		if err != nil {
			return nil, fmt.Errorf("failed to read user after create race: %w", err)
		}
		return user, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// ByExternalID resolves an already-registered identity without creating a
// row. Read paths use this so user creation stays write-triggered.
func (s *UserService) ByExternalID(externalID string) (*model.User, error) {
	return s.userRepository.ByExternalID(externalID)
}
