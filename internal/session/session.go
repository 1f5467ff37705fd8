package session

import (
	"context"
	"time"
)

// Lifetime is the absolute session lifetime. A session is never
// extended; 24 hours after login it is gone regardless of activity.
const Lifetime = 24 * time.Hour

// Session is the server-side identity attached to a cookie. It carries
// the user fields handlers need so no database round-trip is required
// to render the logged-in state.
type Session struct {
	ID        string    `json:"id"`
	UserID    int64     `json:"user_id"`
	Fullname  string    `json:"fullname"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (s Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// Store persists sessions. Get returns (nil, nil) when no session
// exists for the ID; expired sessions count as absent.
type Store interface {
	Create(ctx context.Context, s Session) error
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
}

// New builds a session for the given user with the full lifetime ahead
// of it. The caller persists it and issues the cookie.
func New(userID int64, fullname, email string) (Session, error) {
	id, err := GenerateID()
	if err != nil {
		return Session{}, err
	}
	now := time.Now()
	return Session{
		ID:        id,
		UserID:    userID,
		Fullname:  fullname,
		Email:     email,
		CreatedAt: now,
		ExpiresAt: now.Add(Lifetime),
	}, nil
}
