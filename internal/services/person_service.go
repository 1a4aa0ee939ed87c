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

type PersonService struct {
	Persons repositories.PersonRepository
	Logger  *zap.Logger
}

const personModule = "persons"

func (s PersonService) List(ctx context.Context, page contract.PageQuery) contract.Result[[]models.PersonInfo] {
	list, err := s.Persons.ListInfo(ctx, page)
	if err != nil {
		return fail[[]models.PersonInfo](ctx, s.Logger, personModule, "list", err)
	}
	return contract.OK(list)
}

func (s PersonService) Get(ctx context.Context, id int64) contract.Result[models.PersonInfo] {
	p, found, err := s.Persons.GetInfoByID(ctx, id)
	if p, err = lookup(p, found, err, "person"); err != nil {
		return fail[models.PersonInfo](ctx, s.Logger, personModule, "get", err)
	}
	return contract.OK(p)
}

func (s PersonService) Create(ctx context.Context, p models.Person) contract.Result[models.Person] {
	normalizePerson(&p)
	if err := validatePerson(p); err != nil {
		return fail[models.Person](ctx, s.Logger, personModule, "create", err)
	}
	created, err := s.Persons.Create(ctx, p)
	if err != nil {
		return fail[models.Person](ctx, s.Logger, personModule, "create", err)
	}
	utils.LogEvent(s.Logger, utils.RequestIDFrom(ctx), personModule, "create", "person created", zap.Int64("id", created.ID))
	return contract.OK(created)
}

// Update replaces every column of the person. The row must exist before the
// payload is looked at.
func (s PersonService) Update(ctx context.Context, id int64, p models.Person) contract.Result[models.Person] {
	existing, found, err := s.Persons.GetByID(ctx, id)
	if _, err := lookup(existing, found, err, "person"); err != nil {
		return fail[models.Person](ctx, s.Logger, personModule, "update", err)
	}
	p.ID = id
	normalizePerson(&p)
	if err := validatePerson(p); err != nil {
		return fail[models.Person](ctx, s.Logger, personModule, "update", err)
	}
	if p.ManagerID != nil && *p.ManagerID == id {
		err := domain.ValidationError{Msg: "person cannot manage themselves"}
		return fail[models.Person](ctx, s.Logger, personModule, "update", err)
	}
	if _, err := s.Persons.Update(ctx, p); err != nil {
		return fail[models.Person](ctx, s.Logger, personModule, "update", err)
	}
	return contract.OK(p)
}

func (s PersonService) Delete(ctx context.Context, id int64) contract.Result[struct{}] {
	n, err := s.Persons.Delete(ctx, id)
	if err == nil && n == 0 {
		err = domain.NotFoundError{Resource: "person"}
	}
	if err != nil {
		return fail[struct{}](ctx, s.Logger, personModule, "delete", err)
	}
	utils.LogEvent(s.Logger, utils.RequestIDFrom(ctx), personModule, "delete", fmt.Sprintf("person %d deleted", id))
	return contract.OK(struct{}{})
}

// DirectReports lists the people whose manager is id.
func (s PersonService) DirectReports(ctx context.Context, id int64) contract.Result[[]models.Person] {
	p, found, err := s.Persons.GetByID(ctx, id)
	if _, err := lookup(p, found, err, "person"); err != nil {
		return fail[[]models.Person](ctx, s.Logger, personModule, "reports", err)
	}
	list, err := s.Persons.ListByManager(ctx, id)
	if err != nil {
		return fail[[]models.Person](ctx, s.Logger, personModule, "reports", err)
	}
	return contract.OK(list)
}

func normalizePerson(p *models.Person) {
	p.FirstName = utils.NormalizeSpace(p.FirstName)
	p.LastName = utils.NormalizeSpace(p.LastName)
	p.HireDate = utils.TrimOrEmpty(p.HireDate)
	if p.ManagerID != nil && *p.ManagerID <= 0 {
		p.ManagerID = nil
	}
}

func validatePerson(p models.Person) error {
	if err := contract.RequireFields(p.Fields(), models.PersonRequired); err != nil {
		return err
	}
	if !p.ValidHireDate() {
		return domain.ValidationError{Field: "hire_date", Msg: "must be YYYY-MM-DD"}
	}
	return nil
}
