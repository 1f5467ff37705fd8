package store

import (
	"context"

	"trailerhub/internal/db"
)

// Store runs the SQL behind every endpoint. Each operation is a single
// parameterized statement; there are no multi-statement transactions.
type Store struct {
	db *db.DB
}

func New(database *db.DB) *Store {
	return &Store{db: database}
}

// CreateUser inserts a user row and returns its generated ID. The
// password must already be hashed. A duplicate email surfaces as
// db.ErrDuplicateEntry.
func (s *Store) CreateUser(ctx context.Context, fullname, email, passwordHash string) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO users (fullname, email, password)
		VALUES (?, ?, ?)
	`, fullname, email, passwordHash)
	if err != nil {
		return 0, db.Map(err)
	}
	return res.LastInsertId()
}

// UserByEmail looks a user up by exact email match.
func (s *Store) UserByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := s.db.QueryRowContext(ctx, `
		SELECT id, fullname, email, password, created_at
		FROM users
		WHERE email = ?
	`, email).Scan(&u.ID, &u.Fullname, &u.Email, &u.Password, &u.CreatedAt)
	if err != nil {
		return nil, db.Map(err)
	}
	return &u, nil
}

// LatestTrailer returns the most recently created trailer, the one the
// home page features. db.ErrNotFound when the table is empty.
func (s *Store) LatestTrailer(ctx context.Context) (*Trailer, error) {
	var t Trailer
	err := s.db.QueryRowContext(ctx, `
		SELECT id, title, COALESCE(description, ''), COALESCE(video_url, ''),
		       COALESCE(thumbnail_url, ''), created_at
		FROM trailers
		ORDER BY created_at DESC, id DESC
		LIMIT 1
	`).Scan(&t.ID, &t.Title, &t.Description, &t.VideoURL, &t.ThumbnailURL, &t.CreatedAt)
	if err != nil {
		return nil, db.Map(err)
	}
	return &t, nil
}

// ReviewsByTrailer lists a trailer's reviews newest-first, joined with
// each poster's fullname. The trailer ID is passed through to the
// query as given. An unknown trailer yields an empty (non-nil) slice.
func (s *Store) ReviewsByTrailer(ctx context.Context, trailerID string) ([]Review, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT r.id, r.user_id, r.trailer_id, r.review, r.created_at, u.fullname
		FROM reviews r
		JOIN users u ON r.user_id = u.id
		WHERE r.trailer_id = ?
		ORDER BY r.created_at DESC, r.id DESC
	`, trailerID)
	if err != nil {
		return nil, db.Map(err)
	}
	defer rows.Close()

	reviews := []Review{}
	for rows.Next() {
		var r Review
		if err := rows.Scan(&r.ID, &r.UserID, &r.TrailerID, &r.Review, &r.CreatedAt, &r.Fullname); err != nil {
			return nil, db.Map(err)
		}
		reviews = append(reviews, r)
	}
	if err := rows.Err(); err != nil {
		return nil, db.Map(err)
	}
	return reviews, nil
}

// CreateReview inserts one review row for the given user. A trailer ID
// that references no trailer fails the foreign key constraint and
// surfaces as db.ErrForeignKey.
func (s *Store) CreateReview(ctx context.Context, userID int64, trailerID, review string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO reviews (user_id, trailer_id, review)
		VALUES (?, ?, ?)
	`, userID, trailerID, review)
	return db.Map(err)
}
