package auth

import (
	"context"
	"errors"
	"strings"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// PasswordError carries the individual password rule violations so the
// handler can surface them field-scoped.
type PasswordError struct {
	Problems []string
}

func (e *PasswordError) Error() string { return "password validation failed" }

type Service struct {
	users UserRepository
	jwt   tokenIssuer
}

func NewService(users UserRepository, jwt tokenIssuer) *Service {
	return &Service{users: users, jwt: jwt}
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (*domain.User, error) {
	if problems := ValidatePassword(req.Password); len(problems) > 0 {
		return nil, &PasswordError{Problems: problems}
	}

	taken, err := s.users.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrDuplicateUsername
	}

	taken, err = s.users.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrDuplicateEmail
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     req.Username,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hash),
	}
	if err := s.users.Create(ctx, user); err != nil {
		// two registrations racing past the existence checks land here
		if repository.IsUniqueViolationOn(err, "email") {
			return nil, ErrDuplicateEmail
		}
		if repository.IsUniqueViolation(err) {
			return nil, ErrDuplicateUsername
		}
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}

// Me loads the authenticated user's own record.
func (s *Service) Me(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*domain.User, string, error) {
	user, err := s.users.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(user.ID, user.Username)
	if err != nil {
		return nil, "", err
	}

	user.PasswordHash = ""
	return user, token, nil
}
