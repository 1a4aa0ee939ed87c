package repositories

import (
	"context"
	"database/sql"
	"errors"

	intdb "orgchart/internal/db"
	"orgchart/internal/domain/models"
)

type UserRepository struct {
	DB *sql.DB
}

func (r UserRepository) GetByUsername(ctx context.Context, username string) (models.User, bool, error) {
	var u models.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, username, password FROM `user` WHERE username = ? LIMIT 1", username).
		Scan(&u.ID, &u.Username, &u.Password)
	if errors.Is(err, sql.ErrNoRows) {
		return u, false, nil
	}
	if err != nil {
		return u, false, err
	}
	return u, true, nil
}

func (r UserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	var n int
	if err := r.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM `user` WHERE username = ?", username).Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}

// Create stores u; u.Password must already be hashed.
func (r UserRepository) Create(ctx context.Context, u models.User) (models.User, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO `user` (username, password) VALUES (?, ?)", u.Username, u.Password)
	if err != nil {
		return u, intdb.TranslateError(err, "user")
	}
	id, err := res.LastInsertId()
	if err != nil {
		return u, err
	}
	u.ID = id
	return u, nil
}
