package service

import (
	"context"
	"errors"

	"cantina/internal/dto"
	"cantina/internal/model"
	"cantina/internal/repository"

	"github.com/google/uuid"
)

var ErrTaskNotFound = errors.New("tarefa não encontrada")

type TaskService interface {
	List(ctx context.Context) ([]model.Task, error)
	ListBySector(ctx context.Context, sectorID string) ([]model.Task, error)
	Create(ctx context.Context, req dto.SaveTaskRequest) (*model.Task, error)
	Update(ctx context.Context, id string, req dto.SaveTaskRequest) (*model.Task, error)
	Delete(ctx context.Context, id string) error
}

type taskService struct {
	repo repository.TaskRepository
}

func NewTaskService(repo repository.TaskRepository) TaskService {
	return &taskService{repo: repo}
}

func (s *taskService) List(ctx context.Context) ([]model.Task, error) {
	return s.repo.List(ctx)
}

func (s *taskService) ListBySector(ctx context.Context, sectorID string) ([]model.Task, error) {
	return s.repo.ListBySector(ctx, sectorID)
}

func days(codes []string) []model.Weekday {
	out := make([]model.Weekday, len(codes))
	for i, c := range codes {
		out[i] = model.Weekday(c)
	}
	return out
}

func (s *taskService) Create(ctx context.Context, req dto.SaveTaskRequest) (*model.Task, error) {
	t := model.Task{
		ID:               uuid.NewString(),
		SectorID:         req.SectorID,
		Type:             model.TaskType(req.Type),
		Title:            req.Title,
		Description:      req.Description,
		DisplayOrder:     req.DisplayOrder,
		DaysOfWeek:       days(req.DaysOfWeek),
		Required:         req.Required,
		RequiresPhoto:    req.RequiresPhoto,
		EstimatedMinutes: req.EstimatedMinutes,
	}
	if err := s.repo.Save(ctx, t); err != nil {
		return nil, err
	}
	return &t, nil
}

// Update replaces the template. Already-materialized checklist days are not
// touched: a day's checklist is frozen once generated.
func (s *taskService) Update(ctx context.Context, id string, req dto.SaveTaskRequest) (*model.Task, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrTaskNotFound
	}
	t := model.Task{
		ID:               id,
		SectorID:         req.SectorID,
		Type:             model.TaskType(req.Type),
		Title:            req.Title,
		Description:      req.Description,
		DisplayOrder:     req.DisplayOrder,
		DaysOfWeek:       days(req.DaysOfWeek),
		Required:         req.Required,
		RequiresPhoto:    req.RequiresPhoto,
		EstimatedMinutes: req.EstimatedMinutes,
	}
	if err := s.repo.Save(ctx, t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *taskService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
