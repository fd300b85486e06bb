package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("unauthenticated")
)

// Service handles registration, login and per-request identity resolution.
// Identity is an opaque session token issued at login, not a trusted header.
type Service struct {
	repo     Repository
	sessions *Sessions
}

func NewService(repo Repository, sessions *Sessions) *Service {
	return &Service{repo: repo, sessions: sessions}
}

func (s *Service) Register(ctx context.Context, name, email, password string) (*User, error) {
	if name == "" || email == "" || password == "" {
		return nil, fmt.Errorf("name, email and password are required")
	}
	hash, err := HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	u := &User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Login verifies credentials and issues a session token.
func (s *Service) Login(ctx context.Context, email, password string) (*User, string, error) {
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if !CheckPassword(u.PasswordHash, password) {
		return nil, "", ErrInvalidCredentials
	}
	token := uuid.NewString()
	s.sessions.Put(token, u.ID)
	return u, token, nil
}

// CurrentUser resolves a bearer token to the user it was issued for.
func (s *Service) CurrentUser(ctx context.Context, token string) (*User, error) {
	if token == "" {
		return nil, ErrUnauthenticated
	}
	id, ok := s.sessions.Get(token)
	if !ok {
		return nil, ErrUnauthenticated
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Logout(token string) {
	s.sessions.Delete(token)
}
