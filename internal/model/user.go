package model

import (
	"time"
)

// User maps an identity-provider subject to an internal account.
// Rows are created lazily on first write and never mutated afterwards;
// the provider stays the source of truth for the current email.
type User struct {
	ID         string    `db:"id" json:"id"`
	ExternalID string    `db:"external_id" json:"externalId"`
	Email      string    `db:"email" json:"email"`
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`
}
