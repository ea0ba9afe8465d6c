package model

import (
	"time"
)

const (
	GoalTypeShortTerm = "SHORT_TERM"
	GoalTypeLongTerm  = "LONG_TERM"
)

// ValidGoalType reports whether t is a recognized goal category.
// Unrecognized types are rejected rather than silently defaulted.
func ValidGoalType(t string) bool {
	return t == GoalTypeShortTerm || t == GoalTypeLongTerm
}

type Goal struct {
	ID          string     `db:"id" json:"id"`
	UserID      string     `db:"user_id" json:"userId"`
	Title       string     `db:"title" json:"title"`
	Description string     `db:"description" json:"description"`
	Type        string     `db:"type" json:"type"`
	Deadline    *time.Time `db:"deadline" json:"deadline"`
	CreatedAt   time.Time  `db:"created_at" json:"createdAt"`
}
