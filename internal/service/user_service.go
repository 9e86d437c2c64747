package service

import (
	"context"
	"errors"
	"time"

	"cantina/internal/dto"
	"cantina/internal/model"
	"cantina/internal/repository"

	"github.com/google/uuid"
)

var ErrUserNotFound = errors.New("usuário não encontrado")

type UserService interface {
	List(ctx context.Context) ([]model.User, error)
	Create(ctx context.Context, req dto.SaveUserRequest) (*model.User, error)
	Update(ctx context.Context, id string, req dto.SaveUserRequest) (*model.User, error)
	Delete(ctx context.Context, id string) error
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) List(ctx context.Context) ([]model.User, error) {
	return s.repo.List(ctx)
}

func (s *userService) Create(ctx context.Context, req dto.SaveUserRequest) (*model.User, error) {
	u := model.User{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		Role:      model.Role(req.Role),
		SectorID:  req.SectorID,
		PhotoURL:  req.PhotoURL,
		CreatedAt: time.Now(),
	}
	if err := s.repo.Save(ctx, u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *userService) Update(ctx context.Context, id string, req dto.SaveUserRequest) (*model.User, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	u.Name = req.Name
	u.Email = req.Email
	u.Role = model.Role(req.Role)
	u.SectorID = req.SectorID
	u.PhotoURL = req.PhotoURL
	if err := s.repo.Save(ctx, *u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *userService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
