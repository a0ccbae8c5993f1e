package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/authgate/internal/domain/errors"
	"github.com/polkiloo/authgate/internal/server/http/dto"
)

// UserHandler serves the guarded profile endpoint.
type UserHandler struct {
	facade ProfileFacade
	logger *slog.Logger
}

// NewUserHandler creates UserHandler instance.
func NewUserHandler(facade ProfileFacade, logger *slog.Logger) *UserHandler {
	return &UserHandler{facade: facade, logger: logger}
}

// Profile handles GET /user/:id. The id comes from the path, not from the
// verified token.
func (h *UserHandler) Profile(c *gin.Context) {
	id := c.Param("id")

	user, err := h.facade.Profile(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			jsonError(c, http.StatusNotFound, err.Error())
			return
		}
		h.logger.Error("fetch user failed", slog.String("error", err.Error()))
		jsonError(c, http.StatusInternalServerError, "error on fetch user")
		return
	}

	c.JSON(http.StatusOK, dto.ProfileResponse{User: dto.NewUserResponse(user)})
}
