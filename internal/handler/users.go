package handler

import (
	"errors"
	"net/http"

	"cantina/internal/apierror"
	"cantina/internal/dto"
	"cantina/internal/service"

	"github.com/gin-gonic/gin"
)

type UsersHandler struct{ svc service.UserService }

func NewUsersHandler(svc service.UserService) *UsersHandler {
	return &UsersHandler{svc: svc}
}

// Listar GET /v1/users
func (h *UsersHandler) Listar(c *gin.Context) {
	users, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// Criar POST /v1/users
func (h *UsersHandler) Criar(c *gin.Context) {
	var req dto.SaveUserRequest
	if !bindAndValidate(c, &req) {
		return
	}
	u, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, u)
}

// Atualizar PUT /v1/users/:id
func (h *UsersHandler) Atualizar(c *gin.Context) {
	var req dto.SaveUserRequest
	if !bindAndValidate(c, &req) {
		return
	}
	u, err := h.svc.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
			return
		}
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// Excluir DELETE /v1/users/:id
func (h *UsersHandler) Excluir(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusNoContent, nil)
}
