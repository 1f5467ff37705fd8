package store

import "time"

type User struct {
	ID        int64     `json:"id"`
	Fullname  string    `json:"fullname"`
	Email     string    `json:"email"`
	Password  string    `json:"-"` // bcrypt hash, never serialized
	CreatedAt time.Time `json:"created_at"`
}

type Trailer struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	VideoURL     string    `json:"video_url"`
	ThumbnailURL string    `json:"thumbnail_url"`
	CreatedAt    time.Time `json:"created_at"`
}

// Review is a review row joined with the posting user's fullname.
type Review struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	TrailerID int64     `json:"trailer_id"`
	Review    string    `json:"review"`
	CreatedAt time.Time `json:"created_at"`
	Fullname  string    `json:"fullname"`
}
