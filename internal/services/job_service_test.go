package services

import (
	"net/http"
	"testing"

	"orgchart/internal/contract"
	"orgchart/internal/domain/models"
	"orgchart/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func jobService(t *testing.T) (JobService, sqlmock.Sqlmock) {
	db, mock := newMock(t)
	return JobService{
		Jobs:       repositories.JobRepository{DB: db},
		PersonRepo: repositories.PersonRepository{DB: db},
		Logger:     zap.NewNop(),
	}, mock
}

func TestJobCreateAndMissingTitle(t *testing.T) {
	svc, mock := jobService(t)
	mock.ExpectExec("INSERT INTO job").WithArgs("Engineer").
		WillReturnResult(sqlmock.NewResult(3, 1))

	r := svc.Create(reqCtx(), models.Job{Title: "Engineer"})
	assert.Equal(t, http.StatusCreated, r.Status(contract.OpCreate))
	assert.Equal(t, int64(3), r.Value.ID)

	r = svc.Create(reqCtx(), models.Job{})
	assert.Equal(t, http.StatusBadRequest, r.Status(contract.OpCreate))
	assert.Equal(t, "missing fields", r.Message)
}

func TestJobPersonsUnknownJob(t *testing.T) {
	svc, mock := jobService(t)
	mock.ExpectQuery("SELECT id, title FROM job WHERE id").WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title"}))

	r := svc.Persons(reqCtx(), 42)
	assert.Equal(t, http.StatusNotFound, r.Status(contract.OpList))
	assert.Equal(t, "job not found", r.Message)
}

func TestJobPersons(t *testing.T) {
	svc, mock := jobService(t)
	mock.ExpectQuery("SELECT id, title FROM job WHERE id").WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title"}).AddRow(1, "Engineer"))
	mock.ExpectQuery("FROM person WHERE job_id").WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "job_id", "department_id", "manager_id", "first_name", "last_name", "hire_date"}).
			AddRow(5, 1, 2, nil, "Ada", "Lovelace", "2020-01-02"))

	r := svc.Persons(reqCtx(), 1)
	assert.Equal(t, contract.OutcomeSuccess, r.Outcome)
	if assert.Len(t, r.Value, 1) {
		assert.Nil(t, r.Value[0].ManagerID)
		assert.Equal(t, "Ada", r.Value[0].FirstName)
	}
}

func TestJobUpdateAndDelete(t *testing.T) {
	svc, mock := jobService(t)
	mock.ExpectQuery("SELECT id, title FROM job WHERE id").WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title"}).AddRow(1, "Engineer"))

	r := svc.Update(reqCtx(), 1, models.Job{Title: ""})
	assert.Equal(t, http.StatusBadRequest, r.Status(contract.OpUpdate))

	mock.ExpectExec("DELETE FROM job").WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	assert.Equal(t, http.StatusNoContent, svc.Delete(reqCtx(), 1).Status(contract.OpDelete))
}
