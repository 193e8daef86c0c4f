package auth

import (
	"context"
	"slices"
	"strings"

	"bt2horizon/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

type tokenIssuer interface {
	GenerateToken(userID int64, email, role string) (string, error)
}

// Service contains the business logic for registration and login.
type Service struct {
	users UserRepositoryInterface
	jwt   tokenIssuer
}

func NewService(users UserRepositoryInterface, jwt tokenIssuer) *Service {
	return &Service{users: users, jwt: jwt}
}

// Register creates a user account and returns it with a fresh token.
// The display name falls back to "firstName lastName" when no explicit
// name is given.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*domain.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if req.Gender != "" && !slices.Contains(domain.ValidGenders, req.Gender) {
		return nil, "", ErrInvalidGender
	}
	if req.AgeRange != "" && !slices.Contains(domain.ValidAgeRanges, req.AgeRange) {
		return nil, "", ErrInvalidAgeRange
	}

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if exists {
		return nil, "", ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = strings.TrimSpace(req.FirstName + " " + req.LastName)
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		Name:         name,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        req.Phone,
		Gender:       req.Gender,
		AgeRange:     req.AgeRange,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.jwt.GenerateToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login checks the password and issues a token. Email lookup and the
// password mismatch both collapse to ErrInvalidCredentials so callers
// cannot probe which emails exist.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*domain.User, string, error) {
	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// GetProfile loads the current user row.
func (s *Service) GetProfile(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// ListUsers returns every account, admin-only at the handler level.
func (s *Service) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}
