package handlers

import (
	"orgchart/internal/contract"
	"orgchart/internal/domain/models"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListJobs(c *gin.Context) {
	respond(c, contract.OpList, h.deps.Jobs.List(c.Request.Context(), page(c, models.JobSortFields)))
}

func (h *Handler) GetJob(c *gin.Context) {
	id, ok := pathID(c, contract.OpReadOne)
	if !ok {
		return
	}
	respond(c, contract.OpReadOne, h.deps.Jobs.Get(c.Request.Context(), id))
}

func (h *Handler) CreateJob(c *gin.Context) {
	var in models.Job
	if !bindBody(c, contract.OpCreate, &in) {
		return
	}
	respond(c, contract.OpCreate, h.deps.Jobs.Create(c.Request.Context(), in))
}

func (h *Handler) UpdateJob(c *gin.Context) {
	id, ok := pathID(c, contract.OpUpdate)
	if !ok {
		return
	}
	var in models.Job
	if !bindBody(c, contract.OpUpdate, &in) {
		return
	}
	respond(c, contract.OpUpdate, h.deps.Jobs.Update(c.Request.Context(), id, in))
}

func (h *Handler) DeleteJob(c *gin.Context) {
	id, ok := pathID(c, contract.OpDelete)
	if !ok {
		return
	}
	respond(c, contract.OpDelete, h.deps.Jobs.Delete(c.Request.Context(), id))
}

// GET /jobs/:id/persons
func (h *Handler) JobPersons(c *gin.Context) {
	id, ok := pathID(c, contract.OpList)
	if !ok {
		return
	}
	respond(c, contract.OpList, h.deps.Jobs.Persons(c.Request.Context(), id))
}
