package postservice

import (
	"database/sql"
	"time"
)

const (
	StatusDraft     = "draft"
	StatusPublished = "published"

	DefaultCategory = "General"

	// Sentinel author snapshot used when a post is created without a
	// resolved identity. The sentinel id never parses as a UUID, so such
	// posts fail every ownership check.
	AnonymousAuthorID    = "anonymous"
	AnonymousAuthorName  = "Anonymous"
	AnonymousAuthorEmail = "anonymous@example.com"
)

type Post struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Excerpt string `json:"excerpt"`
	// AuthorID is the canonical UUID string of the author when one was
	// supplied at creation, otherwise the raw value (e.g. "anonymous").
	AuthorID string `json:"author_id"`
	// AuthorName and AuthorEmail are snapshots taken at creation time.
	// They are never re-synced with the users table.
	AuthorName    string     `json:"author_name"`
	AuthorEmail   string     `json:"author_email"`
	Category      string     `json:"category"`
	Tags          []string   `json:"tags"`
	FeaturedImage *string    `json:"featured_image,omitempty"`
	Status        string     `json:"status"`
	PublishedAt   *time.Time `json:"published_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	ReadTime      int        `json:"read_time"`
	Likes         int        `json:"likes"`
	Views         int        `json:"views"`
}

type Comment struct {
	ID          string    `json:"id"`
	PostID      string    `json:"post_id"`
	AuthorID    string    `json:"author_id"`
	AuthorName  string    `json:"author_name"`
	AuthorEmail string    `json:"author_email"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// LikeResult is the outcome of a successful like toggle: the membership
// state after the flip and the post's like counter after the adjustment.
type LikeResult struct {
	Liked      bool `json:"liked"`
	LikesCount int  `json:"likes_count"`
}

type PostModel struct {
	db *sql.DB
}

type CommentModel struct {
	db *sql.DB
}

type LikeModel struct {
	db *sql.DB
}

type PostService struct {
	posts    *PostModel
	comments *CommentModel
	likes    *LikeModel
}
