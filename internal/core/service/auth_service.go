package service

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/registrotec/equipos-api/internal/core/domain"
	"github.com/registrotec/equipos-api/internal/core/ports"
	"github.com/registrotec/equipos-api/internal/pkg/token"
)

// Digits only, 8 to 15 characters.
var phonePattern = regexp.MustCompile(`^[0-9]{8,15}$`)

// AuthService implements registration and login.
type AuthService struct {
	users     ports.UserRepository
	roles     ports.RoleRepository
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewAuthService(users ports.UserRepository, roles ports.RoleRepository, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = token.DefaultTTL
	}
	return &AuthService{users: users, roles: roles, jwtSecret: jwtSecret, tokenTTL: tokenTTL, logger: logger}
}

func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (int64, error) {
	if input.FirstName == "" || input.LastName == "" || input.Email == "" ||
		input.Password == "" || input.Phone == "" || input.Role == "" {
		return 0, domain.ErrInvalidCredentials
	}
	if !phonePattern.MatchString(input.Phone) {
		return 0, domain.ErrInvalidCredentials
	}

	role, err := s.roles.FindByName(ctx, strings.ToUpper(strings.TrimSpace(input.Role)))
	if err != nil {
		return 0, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}

	id, err := s.users.Create(ctx, &domain.User{
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		Email:          input.Email,
		PasswordHash:   string(hash),
		Phone:          input.Phone,
		RoleID:         role.ID,
		CompanyTaxID:   input.CompanyTaxID,
		CompanyName:    input.CompanyName,
		CompanyAddress: input.CompanyAddress,
	})
	if err != nil {
		return 0, err
	}

	s.logger.Info().Int64("user_id", id).Str("role", role.Name).Msg("user registered")
	return id, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	signed, err := token.Sign(s.jwtSecret, user.ID, user.RoleID, s.tokenTTL)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Int64("user_id", user.ID).Str("role", user.RoleName).Msg("login")
	return signed, user, nil
}
