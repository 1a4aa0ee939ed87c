package services

import (
	"context"
	"fmt"

	"orgchart/internal/contract"
	"orgchart/internal/domain"
	"orgchart/internal/domain/models"
	"orgchart/internal/repositories"
	"orgchart/internal/utils"

	"go.uber.org/zap"
)

type DepartmentService struct {
	Departments repositories.DepartmentRepository
	PersonRepo  repositories.PersonRepository
	Logger      *zap.Logger
}

const departmentModule = "departments"

func (s DepartmentService) List(ctx context.Context, page contract.PageQuery) contract.Result[[]models.Department] {
	list, err := s.Departments.List(ctx, page)
	if err != nil {
		return fail[[]models.Department](ctx, s.Logger, departmentModule, "list", err)
	}
	return contract.OK(list)
}

func (s DepartmentService) Get(ctx context.Context, id int64) contract.Result[models.Department] {
	d, found, err := s.Departments.GetByID(ctx, id)
	if d, err = lookup(d, found, err, "department"); err != nil {
		return fail[models.Department](ctx, s.Logger, departmentModule, "get", err)
	}
	return contract.OK(d)
}

func (s DepartmentService) Create(ctx context.Context, d models.Department) contract.Result[models.Department] {
	d.Name = utils.NormalizeSpace(d.Name)
	if err := contract.RequireFields(d.Fields(), models.DepartmentRequired); err != nil {
		return fail[models.Department](ctx, s.Logger, departmentModule, "create", err)
	}
	created, err := s.Departments.Create(ctx, d)
	if err != nil {
		return fail[models.Department](ctx, s.Logger, departmentModule, "create", err)
	}
	utils.LogEvent(s.Logger, utils.RequestIDFrom(ctx), departmentModule, "create", "department created", zap.Int64("id", created.ID))
	return contract.OK(created)
}

// Update replaces the department. A missing row is reported before any
// field validation.
func (s DepartmentService) Update(ctx context.Context, id int64, d models.Department) contract.Result[models.Department] {
	existing, found, err := s.Departments.GetByID(ctx, id)
	if _, err := lookup(existing, found, err, "department"); err != nil {
		return fail[models.Department](ctx, s.Logger, departmentModule, "update", err)
	}
	d.ID = id
	d.Name = utils.NormalizeSpace(d.Name)
	if err := contract.RequireFields(d.Fields(), models.DepartmentRequired); err != nil {
		return fail[models.Department](ctx, s.Logger, departmentModule, "update", err)
	}
	if _, err := s.Departments.Update(ctx, d); err != nil {
		return fail[models.Department](ctx, s.Logger, departmentModule, "update", err)
	}
	return contract.OK(d)
}

func (s DepartmentService) Delete(ctx context.Context, id int64) contract.Result[struct{}] {
	n, err := s.Departments.Delete(ctx, id)
	if err == nil && n == 0 {
		err = domain.NotFoundError{Resource: "department"}
	}
	if err != nil {
		return fail[struct{}](ctx, s.Logger, departmentModule, "delete", err)
	}
	utils.LogEvent(s.Logger, utils.RequestIDFrom(ctx), departmentModule, "delete", fmt.Sprintf("department %d deleted", id))
	return contract.OK(struct{}{})
}

// Persons lists the members of a department; an unknown department is 404
// while a known one may have no members.
func (s DepartmentService) Persons(ctx context.Context, id int64) contract.Result[[]models.Person] {
	d, found, err := s.Departments.GetByID(ctx, id)
	if _, err := lookup(d, found, err, "department"); err != nil {
		return fail[[]models.Person](ctx, s.Logger, departmentModule, "persons", err)
	}
	list, err := s.PersonRepo.ListByDepartment(ctx, id)
	if err != nil {
		return fail[[]models.Person](ctx, s.Logger, departmentModule, "persons", err)
	}
	return contract.OK(list)
}
