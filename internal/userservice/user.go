package userservice

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrDuplicateEmail = errors.New("duplicate email")
	ErrNotFound       = errors.New("user not found")
)

func newUserModel(db *sql.DB) *DBModel {
	return &DBModel{db: db}
}

func (m *DBModel) insertUser(ctx context.Context, u *User) error {
	query := `
		INSERT INTO users (name, email, password, telegram, phone)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, role, created_at, updated_at, version`

	args := []any{
		u.Name,
		u.Email,
		u.Password.hash,
		u.Telegram,
		u.Phone,
	}

	err := m.db.QueryRowContext(ctx, query, args...).Scan(&u.ID, &u.Role, &u.CreatedAt, &u.UpdatedAt, &u.Version)
	if err != nil {
		switch {
		case err.Error() == "pq: duplicate key value violates unique constraint \"users_email_key\"":
			return ErrDuplicateEmail
		default:
			return err
		}
	}
	return nil
}

func (m *DBModel) getUserByEmail(ctx context.Context, email string) (*User, error) {
	query := `
		SELECT id, name, email, password, activated, version
		FROM users
		WHERE email = $1`

	var u User

	err := m.db.QueryRowContext(ctx, query, email).Scan(&u.ID, &u.Name, &u.Email, &u.Password.hash, &u.Activated, &u.Version)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrNotFound
		default:
			return nil, err
		}
	}

	return &u, nil
}

func (m *DBModel) getUserByID(ctx context.Context, id uuid.UUID) (*User, error) {
	query := `
		SELECT id, name, email, telegram, phone, role, activated, created_at, updated_at, version
		FROM users
		WHERE id = $1`

	var u User

	err := m.db.QueryRowContext(ctx, query, id).Scan(&u.ID, &u.Name, &u.Email, &u.Telegram, &u.Phone, &u.Role, &u.Activated, &u.CreatedAt, &u.UpdatedAt, &u.Version)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrNotFound
		default:
			return nil, err
		}
	}

	return &u, nil
}

func (m *DBModel) activateUserAccount(tx *sql.Tx, ctx context.Context, id uuid.UUID, version int) error {
	query := `
		UPDATE users
		SET activated = true, updated_at = now(), version = version + 1
		WHERE id = $1 AND version = $2`

	res, err := tx.ExecContext(ctx, query, id, version)
	if err != nil {
		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows != 1 {
		switch {
		case rows == 0:
			return ErrNotFound
		default:
			return errors.New("too many rows affected")
		}
	}

	return nil
}

func (m *DBModel) updateUserPassword(ctx context.Context, pwd Password, id uuid.UUID, version int) error {
	query := `
		UPDATE users
		SET password = $1, updated_at = now()
		WHERE id = $2 AND version = $3`

	_, err := m.db.ExecContext(ctx, query, pwd.hash, id, version)
	if err != nil {
		return err
	}

	return nil
}

func (m *DBModel) getUserByAccessToken(ctx context.Context, token []byte) (*User, error) {
	var u User

	query := `
		SELECT u.id, u.name, u.email, u.role, u.activated, u.version, p.permission
		FROM users u
		INNER JOIN auth_tokens t ON u.id = t.user_id
		LEFT JOIN user_permissions p ON u.id = p.user_id
		WHERE t.access_token = $1 AND t.access_token_expiry > $2`

	rows, err := m.db.QueryContext(ctx, query, token, time.Now())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	found := false
	for rows.Next() {
		var p sql.NullString
		err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Role, &u.Activated, &u.Version, &p)
		if err != nil {
			return nil, err
		}

		if p.Valid {
			u.Permissions = append(u.Permissions, Permission(p.String))
		}
		found = true
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if !found {
		return nil, ErrNotFound
	}

	return &u, nil
}
