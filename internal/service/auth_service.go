package service

import (
	"context"
	"errors"
	"time"

	"cantina/internal/config"
	"cantina/internal/dto"
	"cantina/internal/model"
	"cantina/internal/repository"

	"github.com/golang-jwt/jwt/v5"
)

var ErrLoginFailed = errors.New("email não cadastrado")

type AuthService interface {
	// Login selects an identity by exact email match. There is no password:
	// this is authorization-free identity selection, kept as-is until a real
	// credential contract is defined.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)

	// Restore resolves the persisted session pointer back to a user, for
	// picking the session up after a restart. Returns nil when no session
	// is persisted or the user no longer exists.
	Restore(ctx context.Context) (*model.User, error)

	Logout(ctx context.Context) error
}

type authService struct {
	users   repository.UserRepository
	session repository.SessionRepository
	cfg     *config.Config
}

func NewAuthService(users repository.UserRepository, session repository.SessionRepository, cfg *config.Config) AuthService {
	return &authService{users: users, session: session, cfg: cfg}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrLoginFailed
	}

	if err := s.session.SetCurrentUserID(ctx, user.ID); err != nil {
		return nil, err
	}

	token, err := s.generateToken(user, time.Duration(s.cfg.JWTExpirationHours)*time.Hour)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   s.cfg.JWTExpirationHours * 3600,
		User:        *user,
	}, nil
}

func (s *authService) Restore(ctx context.Context) (*model.User, error) {
	id, err := s.session.CurrentUserID(ctx)
	if err != nil {
		return nil, err
	}
	if id == "" {
		return nil, nil
	}
	return s.users.FindByID(ctx, id)
}

func (s *authService) Logout(ctx context.Context) error {
	return s.session.Clear(ctx)
}

func (s *authService) generateToken(user *model.User, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"name":    user.Name,
		"role":    string(user.Role),
		"exp":     time.Now().Add(duration).Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}
