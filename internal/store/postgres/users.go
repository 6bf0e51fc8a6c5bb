package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/uptrace/bun"

	"bookline/backend/internal/domain"
	"bookline/backend/internal/store"
)

// UserDirectory is a read-only view of the users table, used to resolve
// notification recipients. The identity service owns the rows.
type UserDirectory struct {
	db *bun.DB
}

func NewUserDirectory(db *bun.DB) *UserDirectory {
	return &UserDirectory{db: db}
}

func (d *UserDirectory) GetUser(ctx context.Context, id string) (domain.User, error) {
	var u domain.User
	err := d.db.NewSelect().Model(&u).Where("id = ?", id).Limit(1).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.User{}, store.ErrNotFound
	}
	if err != nil {
		return domain.User{}, err
	}
	return u, nil
}
