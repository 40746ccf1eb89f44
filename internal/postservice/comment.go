package postservice

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
)

var ErrPostForeignKey = errors.New("post_id does not exist")

func newCommentModel(db *sql.DB) *CommentModel {
	return &CommentModel{db: db}
}

func (m *CommentModel) insert(ctx context.Context, c *Comment) error {
	query := `
		INSERT INTO comments (post_id, author_id, author_name, author_email, content)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`

	args := []any{
		c.PostID,
		c.AuthorID,
		c.AuthorName,
		c.AuthorEmail,
		c.Content,
	}

	err := m.db.QueryRowContext(ctx, query, args...).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		switch {
		case ForeignKeyError(err, "comments_post_id_fkey"):
			return ErrPostForeignKey
		default:
			return err
		}
	}

	return nil
}

// listByPost returns the post's comments oldest first, the display order.
func (m *CommentModel) listByPost(ctx context.Context, postID uuid.UUID) ([]Comment, error) {
	query := `
		SELECT id, post_id, author_id, author_name, author_email, content, created_at, updated_at
		FROM comments
		WHERE post_id = $1
		ORDER BY created_at ASC`

	rows, err := m.db.QueryContext(ctx, query, postID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := []Comment{}
	for rows.Next() {
		var c Comment
		err := rows.Scan(&c.ID, &c.PostID, &c.AuthorID, &c.AuthorName, &c.AuthorEmail, &c.Content, &c.CreatedAt, &c.UpdatedAt)
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return comments, nil
}

// delete removes the comment only when it belongs to the requesting user.
// Comments are always authored by authenticated identities, so this is a
// direct match on the stored id, not the two-path comparison.
func (m *CommentModel) delete(ctx context.Context, id, requestingUserID uuid.UUID) (bool, error) {
	res, err := m.db.ExecContext(ctx, `DELETE FROM comments WHERE id = $1 AND author_id = $2`, id, requestingUserID)
	if err != nil {
		return false, err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return rows > 0, nil
}
