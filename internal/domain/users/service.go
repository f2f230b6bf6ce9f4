package users

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"pet-care-journal/internal/platform/apperr"
)

// TokenIssuer firma el token de sesión. Lo implementa adapters/auth/jwtauth.
type TokenIssuer interface {
	Issue(userID, username, role string) (string, error)
}

type Service struct {
	repo   Repository
	tokens TokenIssuer
	now    func() time.Time
	cost   int
}

func NewService(repo Repository, tokens TokenIssuer) *Service {
	return &Service{
		repo:   repo,
		tokens: tokens,
		now:    time.Now,
		cost:   bcrypt.DefaultCost,
	}
}

type JoinInput struct {
	Username string
	Password string
	Email    string
}

func (s *Service) Join(ctx context.Context, in JoinInput) (User, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" || strings.TrimSpace(in.Password) == "" {
		return User{}, apperr.InvalidRequest("username and password are required")
	}
	email := strings.TrimSpace(in.Email)
	if email != "" && !strings.Contains(email, "@") {
		return User{}, apperr.InvalidRequest("invalid email")
	}

	exists, err := s.repo.ExistsByUsername(ctx, username)
	if err != nil {
		return User{}, err
	}
	if exists {
		return User{}, apperr.Duplicate(username + " is duplicated")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if err != nil {
		return User{}, err
	}

	now := s.now()
	u := User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
		Email:        email,
		Role:         RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return User{}, err
	}
	return u, nil
}

// Login devuelve el token firmado. Usuario inexistente y password incorrecto
// responden igual para no revelar qué usernames existen.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	u, err := s.repo.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return "", apperr.Unauthorized("invalid username or password")
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", apperr.Unauthorized("invalid username or password")
	}

	return s.tokens.Issue(u.ID, u.Username, string(u.Role))
}

func (s *Service) Me(ctx context.Context, username string) (User, error) {
	u, err := s.repo.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return User{}, apperr.NotFound("user not found")
		}
		return User{}, err
	}
	return u, nil
}
