package handler

import (
	"errors"
	"net/http"

	"cantina/internal/apierror"
	"cantina/internal/dto"
	"cantina/internal/middleware"
	"cantina/internal/service"

	"github.com/gin-gonic/gin"
)

type ChecklistHandler struct{ svc service.ChecklistService }

func NewChecklistHandler(svc service.ChecklistService) *ChecklistHandler {
	return &ChecklistHandler{svc: svc}
}

// GenerateDaily POST /v1/sectors/:id/checklist — materializes (or returns)
// today's checklist for the sector.
func (h *ChecklistHandler) GenerateDaily(c *gin.Context) {
	items, err := h.svc.GenerateDaily(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrSectorNotFound) {
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
			return
		}
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// Toggle PATCH /v1/checklist/:id/toggle — flips completion for the session's
// user, enforcing the photo and unmark-confirmation gates.
func (h *ChecklistHandler) Toggle(c *gin.Context) {
	var req dto.ToggleRequest
	if !bindAndValidate(c, &req) {
		return
	}

	claims := middleware.GetClaims(c)
	item, err := h.svc.Toggle(c.Request.Context(), claims.UserID, c.Param("id"), service.ToggleInput{
		PhotoURL:      req.PhotoURL,
		Note:          req.Note,
		ConfirmUnmark: req.ConfirmUnmark,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrItemNotFound):
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		case errors.Is(err, service.ErrPhotoRequired), errors.Is(err, service.ErrConfirmRequired):
			c.JSON(http.StatusConflict, apierror.New(err.Error()))
		default:
			c.Error(err)
		}
		return
	}
	c.JSON(http.StatusOK, item)
}

// Listar GET /v1/checklist — the full instance collection (reports use it).
func (h *ChecklistHandler) Listar(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, items)
}
