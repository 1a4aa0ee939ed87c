package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"orgchart/internal/contract"
	"orgchart/internal/domain"
	"orgchart/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDepartmentListUsesResolvedPage(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	page := contract.PageQuery{Offset: 10, Limit: 5, SortField: "name", SortOrder: contract.SortDesc}
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name FROM department ORDER BY name DESC LIMIT ? OFFSET ?")).
		WithArgs(5, 10).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(2, "Test Department2").
			AddRow(1, "Test Department1"))

	got, err := DepartmentRepository{DB: db}.List(context.Background(), page)
	require.NoError(t, err)
	assert.Equal(t, []models.Department{{ID: 2, Name: "Test Department2"}, {ID: 1, Name: "Test Department1"}}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDepartmentListEmptyIsNotNil(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT id, name FROM department").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	got, err := DepartmentRepository{DB: db}.List(context.Background(), contract.DefaultPage())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestDepartmentGetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := DepartmentRepository{DB: db}

	mock.ExpectQuery("SELECT id, name FROM department WHERE id = \\?").WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(1, "Test Department1"))
	d, found, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "Test Department1", d.Name)

	mock.ExpectQuery("SELECT id, name FROM department WHERE id = \\?").WithArgs(int64(999)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))
	_, found, err = repo.GetByID(context.Background(), 999)
	require.NoError(t, err)
	assert.False(t, found)

	mock.ExpectQuery("SELECT id, name FROM department WHERE id = \\?").WithArgs(int64(3)).
		WillReturnError(errors.New("deadlock"))
	_, found, err = repo.GetByID(context.Background(), 3)
	assert.Error(t, err)
	assert.False(t, found)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDepartmentCreateDuplicate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := DepartmentRepository{DB: db}

	mock.ExpectExec("INSERT INTO department").WithArgs("New Department").
		WillReturnResult(sqlmock.NewResult(3, 1))
	d, err := repo.Create(context.Background(), models.Department{Name: "New Department"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), d.ID)

	mock.ExpectExec("INSERT INTO department").WithArgs("New Department").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})
	_, err = repo.Create(context.Background(), models.Department{Name: "New Department"})
	assert.True(t, domain.IsConflict(err))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDepartmentUpdateAndDelete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := DepartmentRepository{DB: db}

	mock.ExpectExec("UPDATE department SET name = \\? WHERE id = \\?").WithArgs("Updated Department", int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	n, err := repo.Update(context.Background(), models.Department{ID: 1, Name: "Updated Department"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	mock.ExpectExec("DELETE FROM department WHERE id = \\?").WithArgs(int64(1)).
		WillReturnError(&mysql.MySQLError{Number: 1451})
	_, err = repo.Delete(context.Background(), 1)
	assert.True(t, domain.IsReference(err))

	mock.ExpectExec("DELETE FROM department WHERE id = \\?").WithArgs(int64(999)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	n, err = repo.Delete(context.Background(), 999)
	require.NoError(t, err)
	assert.Zero(t, n)

	assert.NoError(t, mock.ExpectationsWereMet())
}
