package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/authgate/internal/domain/errors"
	"github.com/polkiloo/authgate/internal/server/http/dto"
)

// AuthHandler processes registration and login.
type AuthHandler struct {
	facade AuthFacade
	logger *slog.Logger
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{facade: facade, logger: logger}
}

// Register handles POST /register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusUnprocessableEntity, errInvalidBody)
		return
	}

	err := h.facade.Register(c.Request.Context(), req.Name, req.Email, req.Password, req.ConfirmPassword)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidName),
			errors.Is(err, domainErrors.ErrInvalidEmail),
			errors.Is(err, domainErrors.ErrPasswordMismatch),
			errors.Is(err, domainErrors.ErrAlreadyExists):
			jsonError(c, http.StatusUnprocessableEntity, err.Error())
		default:
			h.logger.Error("register failed", slog.String("error", err.Error()))
			jsonError(c, http.StatusInternalServerError, "error on register")
		}
		return
	}

	c.JSON(http.StatusCreated, dto.MessageResponse{Message: "user registered successfully"})
}

// Login handles POST /login. Success answers 201 even though no resource is
// created; clients depend on it.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusUnprocessableEntity, errInvalidBody)
		return
	}

	token, err := h.facade.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidEmail),
			errors.Is(err, domainErrors.ErrMissingPassword),
			errors.Is(err, domainErrors.ErrInvalidPassword):
			jsonError(c, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, domainErrors.ErrNotFound):
			jsonError(c, http.StatusNotFound, err.Error())
		default:
			h.logger.Error("login failed", slog.String("error", err.Error()))
			jsonError(c, http.StatusInternalServerError, "error on login")
		}
		return
	}

	c.JSON(http.StatusCreated, dto.TokenResponse{Message: "authenticated successfully", Token: token})
}
