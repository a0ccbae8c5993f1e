package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/authgate/internal/server/http/dto"
)

// Home handles GET /, the only open route besides register and login.
func Home(c *gin.Context) {
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Hello World"})
}
