package store_test

import (
	"context"
	"fmt"
	"testing"

	"trailerhub/internal/db"
	"trailerhub/internal/store"

	_ "github.com/mattn/go-sqlite3"
)

const testSchema = `
CREATE TABLE users (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	fullname TEXT NOT NULL,
	email TEXT NOT NULL UNIQUE,
	password TEXT NOT NULL,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE TABLE trailers (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL,
	description TEXT,
	video_url TEXT,
	thumbnail_url TEXT,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE TABLE reviews (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id INTEGER NOT NULL,
	trailer_id INTEGER NOT NULL,
	review TEXT NOT NULL,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (user_id) REFERENCES users(id),
	FOREIGN KEY (trailer_id) REFERENCES trailers(id)
);
`

func newTestStore(t *testing.T) (*store.Store, *db.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", t.Name())
	database, err := db.Open(context.Background(), "sqlite3", dsn)
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })

	if _, err := database.ExecContext(context.Background(), testSchema); err != nil {
		t.Fatalf("schema: %v", err)
	}
	return store.New(database), database
}

func TestCreateUserAndLookup(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	id, err := s.CreateUser(ctx, "Alice Smith", "alice@example.com", "hashed")
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if id == 0 {
		t.Fatalf("expected generated id")
	}

	u, err := s.UserByEmail(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if u.ID != id || u.Fullname != "Alice Smith" || u.Password != "hashed" {
		t.Fatalf("unexpected user: %+v", u)
	}
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	if _, err := s.CreateUser(ctx, "Alice", "alice@example.com", "h1"); err != nil {
		t.Fatalf("first insert: %v", err)
	}
	_, err := s.CreateUser(ctx, "Other Alice", "alice@example.com", "h2")
	if !db.IsDuplicateEntry(err) {
		t.Fatalf("expected duplicate entry error, got %v", err)
	}
}

func TestUserByEmailNotFound(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.UserByEmail(context.Background(), "nobody@example.com")
	if !db.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestLatestTrailer(t *testing.T) {
	s, database := newTestStore(t)
	ctx := context.Background()

	if _, err := s.LatestTrailer(ctx); !db.IsNotFound(err) {
		t.Fatalf("expected not found on empty table, got %v", err)
	}

	_, err := database.ExecContext(ctx, `
		INSERT INTO trailers (title, created_at) VALUES
		('Old Trailer', '2024-01-01 10:00:00'),
		('New Trailer', '2024-06-01 10:00:00')
	`)
	if err != nil {
		t.Fatalf("seed trailers: %v", err)
	}

	trailer, err := s.LatestTrailer(ctx)
	if err != nil {
		t.Fatalf("latest trailer: %v", err)
	}
	if trailer.Title != "New Trailer" {
		t.Fatalf("expected trailer with latest created_at, got %s", trailer.Title)
	}
}

func TestReviewsNewestFirstWithFullname(t *testing.T) {
	s, database := newTestStore(t)
	ctx := context.Background()

	userID, err := s.CreateUser(ctx, "Alice Smith", "alice@example.com", "h")
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if _, err := database.ExecContext(ctx, `INSERT INTO trailers (title) VALUES ('Trailer')`); err != nil {
		t.Fatalf("seed trailer: %v", err)
	}

	if err := s.CreateReview(ctx, userID, "1", "first review"); err != nil {
		t.Fatalf("create review: %v", err)
	}
	if err := s.CreateReview(ctx, userID, "1", "second review"); err != nil {
		t.Fatalf("create review: %v", err)
	}

	reviews, err := s.ReviewsByTrailer(ctx, "1")
	if err != nil {
		t.Fatalf("list reviews: %v", err)
	}
	if len(reviews) != 2 {
		t.Fatalf("expected 2 reviews, got %d", len(reviews))
	}
	if reviews[0].Review != "second review" {
		t.Fatalf("expected newest review first, got %q", reviews[0].Review)
	}
	if reviews[0].Fullname != "Alice Smith" {
		t.Fatalf("expected poster fullname, got %q", reviews[0].Fullname)
	}
}

func TestReviewsUnknownTrailerIsEmpty(t *testing.T) {
	s, _ := newTestStore(t)

	reviews, err := s.ReviewsByTrailer(context.Background(), "999")
	if err != nil {
		t.Fatalf("list reviews: %v", err)
	}
	if reviews == nil || len(reviews) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", reviews)
	}
}

func TestCreateReviewForeignKey(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	userID, err := s.CreateUser(ctx, "Alice", "alice@example.com", "h")
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	err = s.CreateReview(ctx, userID, "999", "review of nothing")
	if !db.IsForeignKey(err) {
		t.Fatalf("expected foreign key error, got %v", err)
	}
}
