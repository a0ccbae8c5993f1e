package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/authgate/internal/server/http/dto"
)

const errInvalidBody = "invalid request body"

// jsonError writes the uniform failure body used by every endpoint.
func jsonError(c *gin.Context, status int, message string) {
	c.JSON(status, dto.ErrorResponse{Error: message})
}
