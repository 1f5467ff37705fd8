package session

import (
	"context"
	"testing"
	"time"
)

func TestMemoryStoreLifecycle(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	sess, err := New(42, "Alice Smith", "alice@example.com")
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	if err := store.Create(ctx, sess); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := store.Get(ctx, sess.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatalf("expected session to exist")
	}
	if got.UserID != 42 || got.Fullname != "Alice Smith" || got.Email != "alice@example.com" {
		t.Fatalf("unexpected session contents: %+v", got)
	}

	if err := store.Delete(ctx, sess.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	got, err = store.Get(ctx, sess.ID)
	if err != nil {
		t.Fatalf("get after delete: %v", err)
	}
	if got != nil {
		t.Fatalf("expected deleted session to be gone")
	}
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	sess := Session{
		ID:        "expired",
		UserID:    1,
		CreatedAt: time.Now().Add(-25 * time.Hour),
		ExpiresAt: time.Now().Add(-time.Hour),
	}
	if err := store.Create(ctx, sess); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := store.Get(ctx, "expired")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != nil {
		t.Fatalf("expected expired session to count as absent")
	}
}

func TestSessionLifetime(t *testing.T) {
	sess, err := New(1, "Bob", "bob@example.com")
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	if got := sess.ExpiresAt.Sub(sess.CreatedAt); got != Lifetime {
		t.Fatalf("expected %s lifetime, got %s", Lifetime, got)
	}
	if sess.Expired(sess.CreatedAt.Add(Lifetime + time.Second)) != true {
		t.Fatalf("expected session to expire after its lifetime")
	}
}
