package model

import "time"

// CreateUserRequest is the payload for registering a user identity with
// the auth service.
type CreateUserRequest struct {
	UserID string `json:"userId" validate:"required"`
}

// User identifies the author of a review. Both fields are optional and
// passed through to the review service untouched.
type User struct {
	ID       string `json:"id,omitempty"`
	Username string `json:"username,omitempty"`
}

type Review struct {
	ID      string  `json:"id,omitempty"`
	Comment string  `json:"comment,omitempty"`
	Rating  float64 `json:"rating"`
	User    *User   `json:"user,omitempty"`
}

// AuditEvent is published to kafka after a successful write operation.
type AuditEvent struct {
	EventID    string    `json:"eventId"`
	Kind       string    `json:"kind"`
	EntityID   string    `json:"entityId"`
	UserID     string    `json:"userId"`
	OccurredAt time.Time `json:"occurredAt"`
}
