package handlers

import (
	"orgchart/internal/contract"
	"orgchart/internal/domain/models"

	"github.com/gin-gonic/gin"
)

// POST /auth/register
func (h *Handler) Register(c *gin.Context) {
	var in models.Credentials
	if !bindBody(c, contract.OpRegister, &in) {
		return
	}
	respond(c, contract.OpRegister, h.deps.Auth.Register(c.Request.Context(), in))
}

// POST /auth/login
func (h *Handler) Login(c *gin.Context) {
	var in models.Credentials
	if !bindBody(c, contract.OpLogin, &in) {
		return
	}
	respond(c, contract.OpLogin, h.deps.Auth.Login(c.Request.Context(), in))
}
