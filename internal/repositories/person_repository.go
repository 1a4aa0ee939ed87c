package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"orgchart/internal/contract"
	intdb "orgchart/internal/db"
	"orgchart/internal/domain/models"
	"orgchart/internal/utils"
)

// PersonRepository reads and writes the person table. Reads that feed the
// API go through the *Info methods, which join job, department and manager.
type PersonRepository struct {
	DB *sql.DB
}

const personColumns = `id, job_id, department_id, manager_id, first_name, last_name, DATE_FORMAT(hire_date, '%Y-%m-%d')`

const personInfoSelect = `
	SELECT p.id, p.first_name, p.last_name, DATE_FORMAT(p.hire_date, '%Y-%m-%d'),
		j.id, j.title,
		d.id, d.name,
		m.id, m.first_name, m.last_name
	FROM person p
	JOIN job j ON j.id = p.job_id
	JOIN department d ON d.id = p.department_id
	LEFT JOIN person m ON m.id = p.manager_id`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPerson(s rowScanner) (models.Person, error) {
	var (
		p       models.Person
		manager sql.NullInt64
	)
	err := s.Scan(&p.ID, &p.JobID, &p.DepartmentID, &manager, &p.FirstName, &p.LastName, &p.HireDate)
	p.ManagerID = intdb.Int64Ptr(manager)
	return p, err
}

func scanPersonInfo(s rowScanner) (models.PersonInfo, error) {
	var (
		p                         models.PersonInfo
		managerID                 sql.NullInt64
		managerFirst, managerLast sql.NullString
	)
	err := s.Scan(
		&p.ID, &p.FirstName, &p.LastName, &p.HireDate,
		&p.Job.ID, &p.Job.Title,
		&p.Department.ID, &p.Department.Name,
		&managerID, &managerFirst, &managerLast,
	)
	if err != nil {
		return p, err
	}
	if managerID.Valid {
		p.Manager = &models.PersonRef{
			ID:       managerID.Int64,
			FullName: utils.FullName(managerFirst.String, managerLast.String),
		}
	}
	return p, nil
}

func (r PersonRepository) ListInfo(ctx context.Context, page contract.PageQuery) ([]models.PersonInfo, error) {
	rows, err := r.DB.QueryContext(ctx, personInfoSelect+intdb.OrderClause(page, "p"), page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.PersonInfo{}
	for rows.Next() {
		p, err := scanPersonInfo(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r PersonRepository) GetInfoByID(ctx context.Context, id int64) (models.PersonInfo, bool, error) {
	p, err := scanPersonInfo(r.DB.QueryRowContext(ctx, personInfoSelect+` WHERE p.id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return p, false, nil
	}
	if err != nil {
		return p, false, err
	}
	return p, true, nil
}

func (r PersonRepository) GetByID(ctx context.Context, id int64) (models.Person, bool, error) {
	p, err := scanPerson(r.DB.QueryRowContext(ctx, `SELECT `+personColumns+` FROM person WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return p, false, nil
	}
	if err != nil {
		return p, false, err
	}
	return p, true, nil
}

// ListByManager returns the direct reports of a person.
func (r PersonRepository) ListByManager(ctx context.Context, managerID int64) ([]models.Person, error) {
	return r.listWhere(ctx, "manager_id", managerID)
}

func (r PersonRepository) ListByDepartment(ctx context.Context, departmentID int64) ([]models.Person, error) {
	return r.listWhere(ctx, "department_id", departmentID)
}

func (r PersonRepository) ListByJob(ctx context.Context, jobID int64) ([]models.Person, error) {
	return r.listWhere(ctx, "job_id", jobID)
}

func (r PersonRepository) listWhere(ctx context.Context, column string, id int64) ([]models.Person, error) {
	q := fmt.Sprintf(`SELECT %s FROM person WHERE %s = ? ORDER BY id ASC`, personColumns, column)
	rows, err := r.DB.QueryContext(ctx, q, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Person{}
	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r PersonRepository) Create(ctx context.Context, p models.Person) (models.Person, error) {
	res, err := r.DB.ExecContext(ctx, `
		INSERT INTO person (job_id, department_id, manager_id, first_name, last_name, hire_date)
		VALUES (?, ?, ?, ?, ?, ?)`,
		p.JobID, p.DepartmentID, intdb.NullIfZero(p.ManagerID), p.FirstName, p.LastName, p.HireDate)
	if err != nil {
		return p, intdb.TranslateError(err, "person")
	}
	id, err := res.LastInsertId()
	if err != nil {
		return p, err
	}
	p.ID = id
	return p, nil
}

func (r PersonRepository) Update(ctx context.Context, p models.Person) (int64, error) {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE person
		SET job_id = ?, department_id = ?, manager_id = ?, first_name = ?, last_name = ?, hire_date = ?
		WHERE id = ?`,
		p.JobID, p.DepartmentID, intdb.NullIfZero(p.ManagerID), p.FirstName, p.LastName, p.HireDate, p.ID)
	if err != nil {
		return 0, intdb.TranslateError(err, "person")
	}
	return res.RowsAffected()
}

func (r PersonRepository) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM person WHERE id = ?`, id)
	if err != nil {
		return 0, intdb.TranslateError(err, "person")
	}
	return res.RowsAffected()
}

// ListInfoByDepartment feeds the department roster, ordered by name.
func (r PersonRepository) ListInfoByDepartment(ctx context.Context, departmentID int64) ([]models.PersonInfo, error) {
	rows, err := r.DB.QueryContext(ctx,
		personInfoSelect+` WHERE p.department_id = ? ORDER BY p.last_name ASC, p.first_name ASC`, departmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.PersonInfo{}
	for rows.Next() {
		p, err := scanPersonInfo(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
