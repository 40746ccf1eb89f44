package postservice

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
)

func newLikeModel(db *sql.DB) *LikeModel {
	return &LikeModel{db: db}
}

// toggle flips the (post, user) like membership and keeps the post's like
// counter in step, all inside one transaction. The unique index on
// (post_id, user_id) is what makes the check-then-act safe: when two
// toggles for the same pair race, exactly one insert wins and the loser
// observes the conflict instead of double-counting. Toggles for different
// pairs touch different index entries and do not contend.
func (m *LikeModel) toggle(ctx context.Context, postID, userID uuid.UUID) (*LikeResult, error) {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `DELETE FROM likes WHERE post_id = $1 AND user_id = $2`, postID, userID)
	if err != nil {
		return nil, err
	}

	removed, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}

	var likes int

	if removed > 0 {
		// Unlike. The counter never drops below zero even if it has
		// drifted from the ledger.
		err = tx.QueryRowContext(ctx, `UPDATE posts SET likes = GREATEST(likes - 1, 0) WHERE id = $1 RETURNING likes`, postID).Scan(&likes)
		if err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				return nil, ErrRecordNotFound
			default:
				return nil, err
			}
		}

		if err := tx.Commit(); err != nil {
			return nil, err
		}

		return &LikeResult{Liked: false, LikesCount: likes}, nil
	}

	// Like.
	res, err = tx.ExecContext(ctx, `
		INSERT INTO likes (post_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (post_id, user_id) DO NOTHING`, postID, userID)
	if err != nil {
		switch {
		case ForeignKeyError(err, "likes_post_id_fkey"):
			return nil, ErrRecordNotFound
		case ForeignKeyError(err, "likes_user_id_fkey"):
			return nil, ErrUserForeignKey
		default:
			return nil, err
		}
	}

	inserted, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}

	if inserted > 0 {
		err = tx.QueryRowContext(ctx, `UPDATE posts SET likes = likes + 1 WHERE id = $1 RETURNING likes`, postID).Scan(&likes)
	} else {
		// A concurrent toggle inserted this pair first; the ledger already
		// holds the like and the counter was adjusted by the winner.
		err = tx.QueryRowContext(ctx, `SELECT likes FROM posts WHERE id = $1`, postID).Scan(&likes)
	}
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &LikeResult{Liked: true, LikesCount: likes}, nil
}

func (m *LikeModel) exists(ctx context.Context, postID, userID uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM likes WHERE post_id = $1 AND user_id = $2
		)`

	var liked bool
	err := m.db.QueryRowContext(ctx, query, postID, userID).Scan(&liked)
	if err != nil {
		return false, err
	}

	return liked, nil
}

// likedPostIDs returns the ids of every post the user currently likes,
// most recently liked first.
func (m *LikeModel) likedPostIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	query := `
		SELECT post_id
		FROM likes
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := m.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return ids, nil
}
