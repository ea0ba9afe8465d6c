package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stridehq/stride/internal/model"
	"github.com/stridehq/stride/internal/repository"
)

var (
	ErrTitleRequired   = errors.New("title is required")
	ErrUnknownGoalType = errors.New("unknown goal type")
	ErrInvalidDeadline = errors.New("invalid deadline date")
)

// IsValidationError reports whether err is a payload problem rather than an
// infrastructure failure. The boundary logs the distinction but surfaces a
// single generic failure either way.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrTitleRequired) ||
		errors.Is(err, ErrUnknownGoalType) ||
		errors.Is(err, ErrInvalidDeadline)
}

type GoalService struct {
	repo repository.GoalRepository
}

func NewGoalService(repo repository.GoalRepository) *GoalService {
	return &GoalService{
		repo: repo,
	}
}

// Create validates and persists a new goal owned by ownerID. One durable
// write, no retries: a failed insert is reported, never reattempted.
func (s *GoalService) Create(ownerID, title, description, goalType, deadline string) (*model.Goal, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	if !model.ValidGoalType(goalType) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGoalType, goalType)
	}

	due, err := ParseDeadline(deadline)
	if err != nil {
		return nil, err
	}

	goal := &model.Goal{
		ID:          uuid.New().String(),
		UserID:      ownerID,
		Title:       title,
		Description: strings.TrimSpace(description),
		Type:        goalType,
		Deadline:    due,
		CreatedAt:   time.Now().UTC(),
	}

	err = s.repo.Create(goal)
	if err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	return goal, nil
}

func (s *GoalService) Goals(ownerID string) ([]*model.Goal, error) {
	return s.repo.Goals(ownerID)
}

func (s *GoalService) ByID(ownerID, goalID string) (*model.Goal, error) {
	return s.repo.ByID(ownerID, goalID)
}

func (s *GoalService) CountUserGoals(ownerID string) (int, error) {
	return s.repo.CountUserGoals(ownerID)
}

// ParseDeadline normalizes an optional deadline to a UTC calendar date.
// Empty means no deadline. Accepts YYYY-MM-DD (datepickers) or RFC 3339;
// anything else is a validation failure, never stored as free text.
func ParseDeadline(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}

	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		t, err = time.Parse(time.RFC3339, value)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidDeadline, value)
		}
	}

	date := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return &date, nil
}
