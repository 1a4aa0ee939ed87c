package handlers

import (
	"database/sql"

	"orgchart/internal/services"

	"go.uber.org/zap"
)

// Deps is everything the handlers need. Nothing is read from package state.
type Deps struct {
	DB          *sql.DB
	Departments services.DepartmentService
	Jobs        services.JobService
	Persons     services.PersonService
	Auth        services.AuthService
	Roster      services.RosterService
	Logger      *zap.Logger
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	return &Handler{deps: deps}
}
