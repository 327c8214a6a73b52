// Package roles reads user roles through the platform's SQL functions and
// the user_roles table.
package roles

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/citylifes/internal/common"
	"github.com/dmitrijs2005/citylifes/internal/dbx"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) HasRole(ctx context.Context, userID, role string) (*bool, error) {
	var has sql.NullBool
	if err := r.db.QueryRowContext(ctx, `SELECT has_role($1, $2)`, userID, role).Scan(&has); err != nil {
		return nil, fmt.Errorf("has_role: %w", err)
	}
	if !has.Valid {
		return nil, nil
	}
	return &has.Bool, nil
}

func (r *PostgresRepository) FindRole(ctx context.Context, userID, role string) (string, error) {
	var found string
	err := r.db.QueryRowContext(ctx,
		`SELECT role FROM user_roles WHERE user_id = $1 AND role = $2 LIMIT 1`, userID, role).Scan(&found)
	if errors.Is(err, sql.ErrNoRows) {
		return "", common.ErrorNotFound
	}
	if err != nil {
		return "", fmt.Errorf("user_roles: %w", err)
	}
	return found, nil
}

func (r *PostgresRepository) PrimaryRole(ctx context.Context, userID string) (string, error) {
	var role sql.NullString
	if err := r.db.QueryRowContext(ctx, `SELECT get_user_role($1)`, userID).Scan(&role); err != nil {
		return "", fmt.Errorf("get_user_role: %w", err)
	}
	return role.String, nil
}
