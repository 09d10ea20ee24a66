package controllers

import (
	"github.com/gin-gonic/gin"

	"SmartTodoGo/models"
)

const (
	kindBadRequest = "bad_request"
	kindNotFound   = "not_found"
	kindInternal   = "internal"
)

// respondError writes the canonical error envelope. Every non-2xx response
// in the API goes through here.
func respondError(c *gin.Context, status int, kind, message string) {
	c.JSON(status, models.ErrorResponse{
		Error: models.ErrorBody{
			Kind:    kind,
			Message: message,
		},
	})
}
