package service

import (
	"context"
	"time"

	"cantina/internal/dto"
	"cantina/internal/model"
	"cantina/internal/repository"

	"github.com/google/uuid"
)

type SectorService interface {
	List(ctx context.Context) ([]model.Sector, error)
	Get(ctx context.Context, id string) (*model.Sector, error)
	Create(ctx context.Context, req dto.SaveSectorRequest) (*model.Sector, error)
	Update(ctx context.Context, id string, req dto.SaveSectorRequest) (*model.Sector, error)
	Delete(ctx context.Context, id string) error
}

type sectorService struct {
	repo repository.SectorRepository
}

func NewSectorService(repo repository.SectorRepository) SectorService {
	return &sectorService{repo: repo}
}

func (s *sectorService) List(ctx context.Context) ([]model.Sector, error) {
	return s.repo.List(ctx)
}

func (s *sectorService) Get(ctx context.Context, id string) (*model.Sector, error) {
	sec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sec == nil {
		return nil, ErrSectorNotFound
	}
	return sec, nil
}

func (s *sectorService) Create(ctx context.Context, req dto.SaveSectorRequest) (*model.Sector, error) {
	icon := model.Icon(req.Icon)
	if !icon.Valid() {
		icon = model.IconDefault
	}
	sec := model.Sector{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Description:  req.Description,
		Color:        req.Color,
		Icon:         icon,
		DisplayOrder: req.DisplayOrder,
		CreatedAt:    time.Now(),
	}
	if err := s.repo.Save(ctx, sec); err != nil {
		return nil, err
	}
	return &sec, nil
}

func (s *sectorService) Update(ctx context.Context, id string, req dto.SaveSectorRequest) (*model.Sector, error) {
	sec, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	icon := model.Icon(req.Icon)
	if !icon.Valid() {
		icon = model.IconDefault
	}
	sec.Name = req.Name
	sec.Description = req.Description
	sec.Color = req.Color
	sec.Icon = icon
	sec.DisplayOrder = req.DisplayOrder
	if err := s.repo.Save(ctx, *sec); err != nil {
		return nil, err
	}
	return sec, nil
}

// Delete removes the sector only. Dependent tasks and checklist items are
// intentionally left behind (no cascade).
func (s *sectorService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
