package userservice

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

func (m *DBModel) addUserPermission(tx *sql.Tx, ctx context.Context, id uuid.UUID, permissions ...Permission) error {
	for _, p := range permissions {
		_, err := tx.ExecContext(ctx, "INSERT INTO user_permissions (user_id, permission) VALUES ($1, $2) ON CONFLICT DO NOTHING", id, p)
		if err != nil {
			return err
		}
	}

	return nil
}
