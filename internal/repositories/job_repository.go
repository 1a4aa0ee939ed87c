package repositories

import (
	"context"
	"database/sql"
	"errors"

	"orgchart/internal/contract"
	intdb "orgchart/internal/db"
	"orgchart/internal/domain/models"
)

type JobRepository struct {
	DB *sql.DB
}

func (r JobRepository) List(ctx context.Context, page contract.PageQuery) ([]models.Job, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, title FROM job`+intdb.OrderClause(page, ""),
		page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Job{}
	for rows.Next() {
		var j models.Job
		if err := rows.Scan(&j.ID, &j.Title); err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	return out, rows.Err()
}

func (r JobRepository) GetByID(ctx context.Context, id int64) (models.Job, bool, error) {
	var j models.Job
	err := r.DB.QueryRowContext(ctx, `SELECT id, title FROM job WHERE id = ?`, id).Scan(&j.ID, &j.Title)
	if errors.Is(err, sql.ErrNoRows) {
		return j, false, nil
	}
	if err != nil {
		return j, false, err
	}
	return j, true, nil
}

func (r JobRepository) Create(ctx context.Context, j models.Job) (models.Job, error) {
	res, err := r.DB.ExecContext(ctx, `INSERT INTO job (title) VALUES (?)`, j.Title)
	if err != nil {
		return j, intdb.TranslateError(err, "job")
	}
	id, err := res.LastInsertId()
	if err != nil {
		return j, err
	}
	j.ID = id
	return j, nil
}

func (r JobRepository) Update(ctx context.Context, j models.Job) (int64, error) {
	res, err := r.DB.ExecContext(ctx, `UPDATE job SET title = ? WHERE id = ?`, j.Title, j.ID)
	if err != nil {
		return 0, intdb.TranslateError(err, "job")
	}
	return res.RowsAffected()
}

func (r JobRepository) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM job WHERE id = ?`, id)
	if err != nil {
		return 0, intdb.TranslateError(err, "job")
	}
	return res.RowsAffected()
}
