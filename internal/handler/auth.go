package handler

import (
	"net/http"

	"cantina/internal/apierror"
	"cantina/internal/dto"
	"cantina/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Login POST /v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusUnauthorized, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Session GET /v1/auth/session — resolves the persisted session pointer.
func (h *AuthHandler) Session(c *gin.Context) {
	user, err := h.svc.Restore(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, apierror.New("Nenhuma sessão ativa"))
		return
	}
	c.JSON(http.StatusOK, dto.SessionResponse{User: *user})
}

// Logout POST /v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.svc.Logout(c.Request.Context()); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusNoContent, nil)
}
