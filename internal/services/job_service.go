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

type JobService struct {
	Jobs       repositories.JobRepository
	PersonRepo repositories.PersonRepository
	Logger     *zap.Logger
}

const jobModule = "jobs"

func (s JobService) List(ctx context.Context, page contract.PageQuery) contract.Result[[]models.Job] {
	list, err := s.Jobs.List(ctx, page)
	if err != nil {
		return fail[[]models.Job](ctx, s.Logger, jobModule, "list", err)
	}
	return contract.OK(list)
}

func (s JobService) Get(ctx context.Context, id int64) contract.Result[models.Job] {
	j, found, err := s.Jobs.GetByID(ctx, id)
	if j, err = lookup(j, found, err, "job"); err != nil {
		return fail[models.Job](ctx, s.Logger, jobModule, "get", err)
	}
	return contract.OK(j)
}

func (s JobService) Create(ctx context.Context, j models.Job) contract.Result[models.Job] {
	j.Title = utils.NormalizeSpace(j.Title)
	if err := contract.RequireFields(j.Fields(), models.JobRequired); err != nil {
		return fail[models.Job](ctx, s.Logger, jobModule, "create", err)
	}
	created, err := s.Jobs.Create(ctx, j)
	if err != nil {
		return fail[models.Job](ctx, s.Logger, jobModule, "create", err)
	}
	utils.LogEvent(s.Logger, utils.RequestIDFrom(ctx), jobModule, "create", "job created", zap.Int64("id", created.ID))
	return contract.OK(created)
}

func (s JobService) Update(ctx context.Context, id int64, j models.Job) contract.Result[models.Job] {
	existing, found, err := s.Jobs.GetByID(ctx, id)
	if _, err := lookup(existing, found, err, "job"); err != nil {
		return fail[models.Job](ctx, s.Logger, jobModule, "update", err)
	}
	j.ID = id
	j.Title = utils.NormalizeSpace(j.Title)
	if err := contract.RequireFields(j.Fields(), models.JobRequired); err != nil {
		return fail[models.Job](ctx, s.Logger, jobModule, "update", err)
	}
	if _, err := s.Jobs.Update(ctx, j); err != nil {
		return fail[models.Job](ctx, s.Logger, jobModule, "update", err)
	}
	return contract.OK(j)
}

func (s JobService) Delete(ctx context.Context, id int64) contract.Result[struct{}] {
	n, err := s.Jobs.Delete(ctx, id)
	if err == nil && n == 0 {
		err = domain.NotFoundError{Resource: "job"}
	}
	if err != nil {
		return fail[struct{}](ctx, s.Logger, jobModule, "delete", err)
	}
	utils.LogEvent(s.Logger, utils.RequestIDFrom(ctx), jobModule, "delete", fmt.Sprintf("job %d deleted", id))
	return contract.OK(struct{}{})
}

// Persons lists everyone holding the job.
func (s JobService) Persons(ctx context.Context, id int64) contract.Result[[]models.Person] {
	j, found, err := s.Jobs.GetByID(ctx, id)
	if _, err := lookup(j, found, err, "job"); err != nil {
		return fail[[]models.Person](ctx, s.Logger, jobModule, "persons", err)
	}
	list, err := s.PersonRepo.ListByJob(ctx, id)
	if err != nil {
		return fail[[]models.Person](ctx, s.Logger, jobModule, "persons", err)
	}
	return contract.OK(list)
}
