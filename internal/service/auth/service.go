package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/kitchentory-backend/internal/auth"
	"github.com/heartmarshall/kitchentory-backend/internal/domain"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// passwordHasher hashes and verifies passwords.
type passwordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// jwtManager defines the JWT token management interface needed by auth service.
type jwtManager interface {
	GenerateAccessToken(userID uuid.UUID, role string) (string, error)
	ValidateAccessToken(token string) (auth.Claims, error)
	AccessTTL() time.Duration
}

// Service implements auth operations.
type Service struct {
	log       *slog.Logger
	users     userRepo
	passwords passwordHasher
	jwt       jwtManager
	now       func() time.Time
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	passwords passwordHasher,
	jwt jwtManager,
) *Service {
	return &Service{
		log:       logger.With("service", "auth"),
		users:     users,
		passwords: passwords,
		jwt:       jwt,
		now:       time.Now,
	}
}

// AuthResult is returned by Register and Login.
type AuthResult struct {
	AccessToken string
	ExpiresAt   time.Time
	User        *domain.User
}

func (s *Service) issueToken(user *domain.User) (*AuthResult, error) {
	token, err := s.jwt.GenerateAccessToken(user.ID, user.Role.String())
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}
	return &AuthResult{
		AccessToken: token,
		ExpiresAt:   s.now().Add(s.jwt.AccessTTL()),
		User:        user,
	}, nil
}
