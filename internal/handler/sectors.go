package handler

import (
	"errors"
	"net/http"

	"cantina/internal/apierror"
	"cantina/internal/dto"
	"cantina/internal/service"

	"github.com/gin-gonic/gin"
)

type SectorsHandler struct{ svc service.SectorService }

func NewSectorsHandler(svc service.SectorService) *SectorsHandler {
	return &SectorsHandler{svc: svc}
}

// Listar GET /v1/sectors — ascending by display order.
func (h *SectorsHandler) Listar(c *gin.Context) {
	sectors, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, sectors)
}

// Obter GET /v1/sectors/:id
func (h *SectorsHandler) Obter(c *gin.Context) {
	sec, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrSectorNotFound) {
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
			return
		}
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, sec)
}

// Criar POST /v1/sectors
func (h *SectorsHandler) Criar(c *gin.Context) {
	var req dto.SaveSectorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	sec, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, sec)
}

// Atualizar PUT /v1/sectors/:id
func (h *SectorsHandler) Atualizar(c *gin.Context) {
	var req dto.SaveSectorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	sec, err := h.svc.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, service.ErrSectorNotFound) {
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
			return
		}
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, sec)
}

// Excluir DELETE /v1/sectors/:id — no cascade; a missing id is a no-op.
func (h *SectorsHandler) Excluir(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusNoContent, nil)
}
