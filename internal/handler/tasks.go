package handler

import (
	"errors"
	"net/http"

	"cantina/internal/apierror"
	"cantina/internal/dto"
	"cantina/internal/service"

	"github.com/gin-gonic/gin"
)

type TasksHandler struct{ svc service.TaskService }

func NewTasksHandler(svc service.TaskService) *TasksHandler {
	return &TasksHandler{svc: svc}
}

// Listar GET /v1/tasks?sectorId=…
func (h *TasksHandler) Listar(c *gin.Context) {
	ctx := c.Request.Context()
	if sectorID := c.Query("sectorId"); sectorID != "" {
		tasks, err := h.svc.ListBySector(ctx, sectorID)
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, tasks)
		return
	}
	tasks, err := h.svc.List(ctx)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// Criar POST /v1/tasks
func (h *TasksHandler) Criar(c *gin.Context) {
	var req dto.SaveTaskRequest
	if !bindAndValidate(c, &req) {
		return
	}
	t, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, t)
}

// Atualizar PUT /v1/tasks/:id
func (h *TasksHandler) Atualizar(c *gin.Context) {
	var req dto.SaveTaskRequest
	if !bindAndValidate(c, &req) {
		return
	}
	t, err := h.svc.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, service.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
			return
		}
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// Excluir DELETE /v1/tasks/:id — already-materialized days keep their items.
func (h *TasksHandler) Excluir(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusNoContent, nil)
}
