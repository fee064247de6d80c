package providers

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"samplehub/internal/domains"
	"samplehub/internal/storage"
)

type UserProvider struct {
	db *pgxpool.Pool
}

func NewUserProvider(db *pgxpool.Pool) *UserProvider {
	return &UserProvider{
		db: db,
	}
}

func (u UserProvider) GetUserByID(ctx context.Context, id uuid.UUID) (domains.User, error) {
	rows, err := u.db.Query(ctx, `
		SELECT id, full_name, email, role, created_at
		FROM users
		WHERE id = $1`, id)
	if err != nil {
		return domains.User{}, fmt.Errorf("get user: %w", err)
	}
	defer rows.Close()

	user, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domains.User])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domains.User{}, fmt.Errorf("get user: %w", storage.ErrNotFound)
		}
		return domains.User{}, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}
