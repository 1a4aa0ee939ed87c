package handlers

import (
	"orgchart/internal/contract"
	"orgchart/internal/domain/models"

	"github.com/gin-gonic/gin"
)

// GET /departments
func (h *Handler) ListDepartments(c *gin.Context) {
	respond(c, contract.OpList, h.deps.Departments.List(c.Request.Context(), page(c, models.DepartmentSortFields)))
}

// GET /departments/:id
func (h *Handler) GetDepartment(c *gin.Context) {
	id, ok := pathID(c, contract.OpReadOne)
	if !ok {
		return
	}
	respond(c, contract.OpReadOne, h.deps.Departments.Get(c.Request.Context(), id))
}

// POST /departments
func (h *Handler) CreateDepartment(c *gin.Context) {
	var in models.Department
	if !bindBody(c, contract.OpCreate, &in) {
		return
	}
	respond(c, contract.OpCreate, h.deps.Departments.Create(c.Request.Context(), in))
}

// PUT /departments/:id
func (h *Handler) UpdateDepartment(c *gin.Context) {
	id, ok := pathID(c, contract.OpUpdate)
	if !ok {
		return
	}
	var in models.Department
	if !bindBody(c, contract.OpUpdate, &in) {
		return
	}
	respond(c, contract.OpUpdate, h.deps.Departments.Update(c.Request.Context(), id, in))
}

// DELETE /departments/:id
func (h *Handler) DeleteDepartment(c *gin.Context) {
	id, ok := pathID(c, contract.OpDelete)
	if !ok {
		return
	}
	respond(c, contract.OpDelete, h.deps.Departments.Delete(c.Request.Context(), id))
}

// GET /departments/:id/persons
func (h *Handler) DepartmentPersons(c *gin.Context) {
	id, ok := pathID(c, contract.OpList)
	if !ok {
		return
	}
	respond(c, contract.OpList, h.deps.Departments.Persons(c.Request.Context(), id))
}

// GET /departments/:id/roster.pdf
func (h *Handler) DepartmentRoster(c *gin.Context) {
	id, ok := pathID(c, contract.OpReadOne)
	if !ok {
		return
	}
	r := h.deps.Roster.DepartmentRoster(c.Request.Context(), id)
	if r.Outcome != contract.OutcomeSuccess {
		respondError(c, r.Status(contract.OpReadOne), r)
		return
	}
	c.Header("Content-Disposition", r.Value.ContentDisposition())
	c.Data(r.Status(contract.OpReadOne), r.Value.ContentType, r.Value.Body)
}
