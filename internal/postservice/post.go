package postservice

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrUserForeignKey = errors.New("user_id does not exist")
)

func newPostModel(db *sql.DB) *PostModel {
	return &PostModel{db: db}
}

// ForeignKeyError is a helper function to check if the error is a foreign key constraint error.
func ForeignKeyError(err error, name string) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		if pqErr.Code == "23503" && pqErr.Constraint == name {
			return true
		}
	}

	return false
}

const postColumns = `id, title, content, excerpt, author_id, author_name, author_email, category, tags, featured_image, status, published_at, created_at, updated_at, read_time, likes, views`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(row rowScanner) (*Post, error) {
	var (
		p             Post
		featuredImage sql.NullString
		publishedAt   sql.NullTime
	)

	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Content,
		&p.Excerpt,
		&p.AuthorID,
		&p.AuthorName,
		&p.AuthorEmail,
		&p.Category,
		pq.Array(&p.Tags),
		&featuredImage,
		&p.Status,
		&publishedAt,
		&p.CreatedAt,
		&p.UpdatedAt,
		&p.ReadTime,
		&p.Likes,
		&p.Views,
	)
	if err != nil {
		return nil, err
	}

	if featuredImage.Valid {
		p.FeaturedImage = &featuredImage.String
	}
	if publishedAt.Valid {
		t := publishedAt.Time
		p.PublishedAt = &t
	}

	return &p, nil
}

func collectPosts(rows *sql.Rows) ([]Post, error) {
	defer rows.Close()

	posts := []Post{}
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, *p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return posts, nil
}

func (m *PostModel) insert(ctx context.Context, p *Post) error {
	query := `
		INSERT INTO posts (title, content, excerpt, author_id, author_name, author_email, category, tags, featured_image, status, published_at, read_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at, updated_at`

	args := []any{
		p.Title,
		p.Content,
		p.Excerpt,
		p.AuthorID,
		p.AuthorName,
		p.AuthorEmail,
		p.Category,
		pq.Array(p.Tags),
		p.FeaturedImage,
		p.Status,
		p.PublishedAt,
		p.ReadTime,
	}

	return m.db.QueryRowContext(ctx, query, args...).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

// getByID returns the post without touching its view counter.
func (m *PostModel) getByID(ctx context.Context, id uuid.UUID) (*Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE id = $1`

	post, err := scanPost(m.db.QueryRowContext(ctx, query, id))
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}

	return post, nil
}

// getAndCountView returns the post and bumps its view counter in the same
// statement, so concurrent readers never lose an increment.
func (m *PostModel) getAndCountView(ctx context.Context, id uuid.UUID) (*Post, error) {
	query := `
		UPDATE posts
		SET views = views + 1
		WHERE id = $1
		RETURNING ` + postColumns

	post, err := scanPost(m.db.QueryRowContext(ctx, query, id))
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}

	return post, nil
}

// update applies the non-nil fields of req. A status value of "published"
// refreshes published_at even when the post is already published; this
// mirrors the platform's long-standing republish behavior. Reports whether
// a row matched: Postgres counts an identical-value write as an update, so
// a no-op patch on an existing post still returns true.
func (m *PostModel) update(ctx context.Context, id uuid.UUID, req *UpdatePostRequest) (bool, error) {
	query := `
		UPDATE posts
		SET title = COALESCE($1, title),
			content = COALESCE($2, content),
			excerpt = COALESCE($3, excerpt),
			category = COALESCE($4, category),
			tags = COALESCE($5, tags),
			featured_image = COALESCE($6, featured_image),
			status = COALESCE($7, status),
			published_at = CASE WHEN $7 = 'published' THEN now() ELSE published_at END,
			updated_at = now()
		WHERE id = $8`

	var tags any
	if req.Tags != nil {
		tags = pq.Array(req.Tags)
	}

	args := []any{
		req.Title,
		req.Content,
		req.Excerpt,
		req.Category,
		tags,
		req.FeaturedImage,
		req.Status,
		id,
	}

	res, err := m.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return rows > 0, nil
}

func (m *PostModel) delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := m.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return false, err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return rows > 0, nil
}

// listPublished pages through published posts, newest first. Listing is not
// viewing: the view counter is untouched.
func (m *PostModel) listPublished(ctx context.Context, limit, offset int) ([]Post, error) {
	query := `
		SELECT ` + postColumns + `
		FROM posts
		WHERE status = 'published'
		ORDER BY published_at DESC
		LIMIT $1 OFFSET $2`

	rows, err := m.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}

	return collectPosts(rows)
}

// listByAuthor returns every post of the author regardless of status.
// Drafts have no published_at and sort as a single bucket before the
// published posts (NULLS FIRST).
func (m *PostModel) listByAuthor(ctx context.Context, authorID string) ([]Post, error) {
	query := `
		SELECT ` + postColumns + `
		FROM posts
		WHERE author_id = $1
		ORDER BY published_at DESC NULLS FIRST`

	rows, err := m.db.QueryContext(ctx, query, authorID)
	if err != nil {
		return nil, err
	}

	return collectPosts(rows)
}

func (m *PostModel) search(ctx context.Context, query string, limit int) ([]Post, error) {
	stmt := `
		SELECT ` + postColumns + `
		FROM posts
		WHERE status = 'published'
			AND (title ILIKE $1 OR content ILIKE $1 OR array_to_string(tags, ' ') ILIKE $1)
		ORDER BY published_at DESC
		LIMIT $2`

	rows, err := m.db.QueryContext(ctx, stmt, "%"+query+"%", limit)
	if err != nil {
		return nil, err
	}

	return collectPosts(rows)
}

// getByIDs returns the posts for the given ids, newest published first.
func (m *PostModel) getByIDs(ctx context.Context, ids []uuid.UUID) ([]Post, error) {
	query := `
		SELECT ` + postColumns + `
		FROM posts
		WHERE id = ANY($1)
		ORDER BY published_at DESC NULLS FIRST`

	strIDs := make([]string, len(ids))
	for i, id := range ids {
		strIDs[i] = id.String()
	}

	rows, err := m.db.QueryContext(ctx, query, pq.Array(strIDs))
	if err != nil {
		return nil, err
	}

	return collectPosts(rows)
}
