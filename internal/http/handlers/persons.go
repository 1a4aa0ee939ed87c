package handlers

import (
	"orgchart/internal/contract"
	"orgchart/internal/domain/models"

	"github.com/gin-gonic/gin"
)

// GET /persons returns PersonInfo rows: job, department and manager are
// resolved.
func (h *Handler) ListPersons(c *gin.Context) {
	respond(c, contract.OpList, h.deps.Persons.List(c.Request.Context(), page(c, models.PersonSortFields)))
}

func (h *Handler) GetPerson(c *gin.Context) {
	id, ok := pathID(c, contract.OpReadOne)
	if !ok {
		return
	}
	respond(c, contract.OpReadOne, h.deps.Persons.Get(c.Request.Context(), id))
}

func (h *Handler) CreatePerson(c *gin.Context) {
	var in models.Person
	if !bindBody(c, contract.OpCreate, &in) {
		return
	}
	respond(c, contract.OpCreate, h.deps.Persons.Create(c.Request.Context(), in))
}

func (h *Handler) UpdatePerson(c *gin.Context) {
	id, ok := pathID(c, contract.OpUpdate)
	if !ok {
		return
	}
	var in models.Person
	if !bindBody(c, contract.OpUpdate, &in) {
		return
	}
	respond(c, contract.OpUpdate, h.deps.Persons.Update(c.Request.Context(), id, in))
}

func (h *Handler) DeletePerson(c *gin.Context) {
	id, ok := pathID(c, contract.OpDelete)
	if !ok {
		return
	}
	respond(c, contract.OpDelete, h.deps.Persons.Delete(c.Request.Context(), id))
}

// GET /persons/:id/reports
func (h *Handler) DirectReports(c *gin.Context) {
	id, ok := pathID(c, contract.OpList)
	if !ok {
		return
	}
	respond(c, contract.OpList, h.deps.Persons.DirectReports(c.Request.Context(), id))
}
