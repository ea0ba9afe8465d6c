package repository_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stridehq/stride/internal/model"
	"github.com/stridehq/stride/internal/repository"
)

func seedOwner(t *testing.T, database *sqlx.DB) *model.User {
	t.Helper()

	owner := newUser("idp_owner_"+uuid.New().String(), "owner@example.com")
	err := repository.NewUserRepository(database).Create(owner)
	if err != nil {
		t.Fatalf("seed owner: %v", err)
	}
	return owner
}

func newGoal(ownerID, title string, createdAt time.Time) *model.Goal {
	return &model.Goal{
		ID:        uuid.New().String(),
		UserID:    ownerID,
		Title:     title,
		Type:      model.GoalTypeShortTerm,
		CreatedAt: createdAt,
	}
}

func TestGoalRepository_CreateAndList_CreationOrder(t *testing.T) {
	database := newTestDB(t)
	repo := repository.NewGoalRepository(database)
	owner := seedOwner(t, database)

	base := time.Now().UTC()
	for i, title := range []string{"A", "B", "C"} {
		err := repo.Create(newGoal(owner.ID, title, base.Add(time.Duration(i)*time.Second)))
		if err != nil {
			t.Fatalf("create %q: %v", title, err)
		}
	}

	goals, err := repo.Goals(owner.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(goals) != 3 {
		t.Fatalf("expected 3 goals, got %d", len(goals))
	}
	for i, want := range []string{"A", "B", "C"} {
		if goals[i].Title != want {
			t.Fatalf("position %d: expected %q, got %q", i, want, goals[i].Title)
		}
	}
}

func TestGoalRepository_List_Empty(t *testing.T) {
	database := newTestDB(t)
	repo := repository.NewGoalRepository(database)
	owner := seedOwner(t, database)

	goals, err := repo.Goals(owner.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if goals == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(goals) != 0 {
		t.Fatalf("expected no goals, got %d", len(goals))
	}
}

func TestGoalRepository_Create_UnknownOwner(t *testing.T) {
	repo := repository.NewGoalRepository(newTestDB(t))

	err := repo.Create(newGoal("no-such-user", "Orphan", time.Now().UTC()))
	if err == nil {
		t.Fatal("expected foreign key violation for unknown owner")
	}
}

func TestGoalRepository_Create_PersistsDeadline(t *testing.T) {
	database := newTestDB(t)
	repo := repository.NewGoalRepository(database)
	owner := seedOwner(t, database)

	deadline := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	goal := newGoal(owner.ID, "Run 5k", time.Now().UTC())
	goal.Deadline = &deadline

	err := repo.Create(goal)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	fetched, err := repo.ByID(owner.ID, goal.ID)
	if err != nil {
		t.Fatalf("by id: %v", err)
	}
	if fetched.Deadline == nil {
		t.Fatal("expected deadline to be persisted")
	}
	if !fetched.Deadline.Equal(deadline) {
		t.Fatalf("expected deadline %v, got %v", deadline, fetched.Deadline)
	}
}

func TestGoalRepository_ByID_ScopedToOwner(t *testing.T) {
	database := newTestDB(t)
	repo := repository.NewGoalRepository(database)
	owner := seedOwner(t, database)
	other := seedOwner(t, database)

	goal := newGoal(owner.ID, "Private", time.Now().UTC())
	err := repo.Create(goal)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	_, err = repo.ByID(other.ID, goal.ID)
	if !errors.Is(err, repository.ErrGoalNotFound) {
		t.Fatalf("expected ErrGoalNotFound for other owner, got %v", err)
	}
}

func TestGoalRepository_CountUserGoals(t *testing.T) {
	database := newTestDB(t)
	repo := repository.NewGoalRepository(database)
	owner := seedOwner(t, database)

	count, err := repo.CountUserGoals(owner.ID)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected 0, got %d", count)
	}

	for i := range 3 {
		err = repo.Create(newGoal(owner.ID, "G", time.Now().UTC().Add(time.Duration(i)*time.Second)))
		if err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	count, err = repo.CountUserGoals(owner.ID)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 3 {
		t.Fatalf("expected 3, got %d", count)
	}
}
