package auth

import (
	"context"
	"strings"
	"time"

	domuser "example.com/catalog-console/app/internal/domain/user"
)

type PasswordComparer interface {
	Compare(hash string, password string) error
}

type Claims struct {
	UserID    int64
	Username  string
	ExpiresAt time.Time
}

type TokenService interface {
	GenerateToken(u *domuser.User) (token string, expires time.Time, err error)
	ParseToken(token string) (*Claims, error)
}

type Service struct {
	userRepo domuser.Repository
	checker  PasswordComparer
	tokens   TokenService
}

func NewService(
	userRepo domuser.Repository,
	checker PasswordComparer,
	tokens TokenService,
) *Service {
	return &Service{
		userRepo: userRepo,
		checker:  checker,
		tokens:   tokens,
	}
}

type LoginInput struct {
	Username string
	Password string
}

type LoginResult struct {
	Token   string
	Expires time.Time
	User    *domuser.User
}

func (s *Service) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" || in.Password == "" {
		return nil, domuser.ErrInvalidCredential
	}

	u, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, domuser.ErrUnauthorized
	}

	if err := s.checker.Compare(u.PasswordHash, in.Password); err != nil {
		return nil, domuser.ErrUnauthorized
	}

	token, expires, err := s.tokens.GenerateToken(u)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		Token:   token,
		Expires: expires,
		User:    u,
	}, nil
}

// Check validates a token presented in the Authorization header.
func (s *Service) Check(ctx context.Context, token string) (*Claims, error) {
	token = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(token), "Bearer "))
	if token == "" {
		return nil, domuser.ErrUnauthorized
	}
	claims, err := s.tokens.ParseToken(token)
	if err != nil {
		return nil, domuser.ErrUnauthorized
	}
	if _, err := s.userRepo.GetByUsername(ctx, claims.Username); err != nil {
		return nil, domuser.ErrUnauthorized
	}
	return claims, nil
}
