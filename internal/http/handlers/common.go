package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"orgchart/internal/contract"
	"orgchart/internal/domain"
	"orgchart/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// respond renders a service result with the status the decision table
// assigns to op.
func respond[T any](c *gin.Context, op contract.Operation, r contract.Result[T]) {
	status := r.Status(op)
	if r.Outcome != contract.OutcomeSuccess {
		respondError(c, status, r)
		return
	}
	if status == http.StatusNoContent {
		c.Status(status)
		return
	}
	c.JSON(status, r.Value)
}

func respondError[T any](c *gin.Context, status int, r contract.Result[T]) {
	payload := gin.H{
		"error":      r.Message,
		"request_id": middleware.GetRequestID(c),
	}
	var v domain.ValidationError
	if errors.As(r.Err, &v) && len(v.Fields) > 0 {
		payload["fields"] = v.Fields
	}
	c.JSON(status, payload)
}

// pathID reads :id. A malformed id is rendered as a bad request for op and
// ok is false.
func pathID(c *gin.Context, op contract.Operation) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		r := contract.Fail[struct{}](domain.ValidationError{Field: "id", Msg: "must be a positive integer", Err: err})
		respondError(c, r.Status(op), r)
		return 0, false
	}
	return id, true
}

// bindBody decodes a JSON body into dst. An empty body leaves dst at its
// zero value so required-field checks report what is missing.
func bindBody[T any](c *gin.Context, op contract.Operation, dst *T) bool {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return true
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return true
		}
		r := contract.Fail[struct{}](domain.ValidationError{Msg: "invalid JSON body", Err: err})
		respondError(c, r.Status(op), r)
		return false
	}
	return true
}

func page(c *gin.Context, allowed []string) contract.PageQuery {
	return contract.ResolvePage(
		c.Query("offset"),
		c.Query("limit"),
		c.Query("sort_field"),
		c.Query("sort_order"),
		allowed,
	)
}
