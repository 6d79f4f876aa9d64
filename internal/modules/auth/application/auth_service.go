package application

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/api/idtoken"

	"github.com/TuaBBL/beatbookingslive/internal/modules/auth/domain"
	"github.com/TuaBBL/beatbookingslive/internal/modules/auth/infrastructure/jwt"
	"github.com/TuaBBL/beatbookingslive/internal/shared/utils"
)

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type GoogleLoginRequest struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

// AuthService provides authentication operations
type AuthService struct {
	repo                 domain.UserRepository
	jwtSecret            string
	jwtExpiry            time.Duration
	googleClientID       string
	googleTokenValidator func(ctx context.Context, token string, audience string) (*idtoken.Payload, error)
}

// NewAuthService creates a new auth service
func NewAuthService(repo domain.UserRepository, jwtSecret string, jwtExpiry time.Duration, googleClientID string) *AuthService {
	return &AuthService{
		repo:                 repo,
		jwtSecret:            jwtSecret,
		jwtExpiry:            jwtExpiry,
		googleClientID:       googleClientID,
		googleTokenValidator: idtoken.Validate,
	}
}

// Register creates a new user account
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*domain.User, error) {
	if req.Email == "" {
		return nil, errors.New("email is required")
	}
	if !utils.IsValidEmail(req.Email) {
		return nil, errors.New("invalid email format")
	}
	if len(req.Password) < 8 {
		return nil, errors.New("password must be at least 8 characters")
	}

	role := domain.UserRole(req.Role)
	if role != domain.RoleArtist && role != domain.RoleClient {
		return nil, errors.New("invalid role")
	}

	hashedPass, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.New(),
		Email:        req.Email,
		PasswordHash: string(hashedPass),
		FullName:     utils.TrimOrNil(req.FullName),
		Role:         role,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login authenticates a user and returns a JWT token
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (string, error) {
	if req.Email == "" || req.Password == "" {
		return "", errors.New("missing email or password")
	}

	user, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials // Don't reveal user existence
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return "", domain.ErrInvalidCredentials
	}

	return jwt.GenerateToken(s.jwtSecret, s.jwtExpiry, user.ID, string(user.Role))
}

// GoogleLogin validates a Google ID token, creating the account on first
// sign-in, and returns a JWT token.
func (s *AuthService) GoogleLogin(ctx context.Context, req GoogleLoginRequest) (string, error) {
	if req.Token == "" {
		return "", errors.New("missing google token")
	}

	payload, err := s.googleTokenValidator(ctx, req.Token, s.googleClientID)
	if err != nil {
		return "", errors.New("invalid google token")
	}

	email, _ := payload.Claims["email"].(string)
	if email == "" {
		return "", errors.New("google token missing email claim")
	}

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return "", err
	}

	if user == nil {
		role := domain.UserRole(req.Role)
		if role != domain.RoleArtist && role != domain.RoleClient {
			role = domain.RoleClient
		}
		name, _ := payload.Claims["name"].(string)
		user = &domain.User{
			ID:        uuid.New(),
			Email:     email,
			FullName:  utils.TrimOrNil(name),
			Role:      role,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		if err := s.repo.Create(ctx, user); err != nil {
			return "", err
		}
	}

	return jwt.GenerateToken(s.jwtSecret, s.jwtExpiry, user.ID, string(user.Role))
}

// Me returns the account for an authenticated user id
func (s *AuthService) Me(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	return s.repo.GetByID(ctx, userID)
}
