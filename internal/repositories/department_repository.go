package repositories

import (
	"context"
	"database/sql"
	"errors"

	"orgchart/internal/contract"
	intdb "orgchart/internal/db"
	"orgchart/internal/domain/models"
)

type DepartmentRepository struct {
	DB *sql.DB
}

func (r DepartmentRepository) List(ctx context.Context, page contract.PageQuery) ([]models.Department, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, name FROM department`+intdb.OrderClause(page, ""),
		page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Department{}
	for rows.Next() {
		var d models.Department
		if err := rows.Scan(&d.ID, &d.Name); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// GetByID reports found=false instead of an error when the row is missing.
func (r DepartmentRepository) GetByID(ctx context.Context, id int64) (models.Department, bool, error) {
	var d models.Department
	err := r.DB.QueryRowContext(ctx, `SELECT id, name FROM department WHERE id = ?`, id).Scan(&d.ID, &d.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return d, false, nil
	}
	if err != nil {
		return d, false, err
	}
	return d, true, nil
}

func (r DepartmentRepository) Create(ctx context.Context, d models.Department) (models.Department, error) {
	res, err := r.DB.ExecContext(ctx, `INSERT INTO department (name) VALUES (?)`, d.Name)
	if err != nil {
		return d, intdb.TranslateError(err, "department")
	}
	id, err := res.LastInsertId()
	if err != nil {
		return d, err
	}
	d.ID = id
	return d, nil
}

func (r DepartmentRepository) Update(ctx context.Context, d models.Department) (int64, error) {
	res, err := r.DB.ExecContext(ctx, `UPDATE department SET name = ? WHERE id = ?`, d.Name, d.ID)
	if err != nil {
		return 0, intdb.TranslateError(err, "department")
	}
	return res.RowsAffected()
}

func (r DepartmentRepository) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM department WHERE id = ?`, id)
	if err != nil {
		return 0, intdb.TranslateError(err, "department")
	}
	return res.RowsAffected()
}
