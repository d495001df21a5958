package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/yukikurage/taskflow-api/internal/constants"
	"github.com/yukikurage/taskflow-api/internal/models"
	"github.com/yukikurage/taskflow-api/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrNameRequired         = validationError("name", "name is required")
	ErrInvalidEmail         = validationError("email", "a valid email is required")
	ErrPasswordTooShort     = validationError("password", "password too short")
	ErrPasswordTooLong      = validationError("password", fmt.Sprintf("password must be at most %d bytes", constants.MaxPasswordBytes))
	ErrEmailTaken           = errors.New("email already registered")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrUserNotFound         = errors.New("user not found")
	ErrFailedToHashPassword = errors.New("failed to hash password")
	ErrFailedToIssueToken   = errors.New("failed to issue token")
)

// TokenIssuer signs bearer tokens for a user.
type TokenIssuer interface {
	Issue(userID string) (string, error)
}

// dummyHash is compared against when the email is unknown so that login
// timing does not reveal whether an account exists.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("taskflow-dummy-password"), bcrypt.DefaultCost)

var validate = validator.New()

// AuthService handles registration and login.
type AuthService struct {
	userRepo repository.UserRepository
	tokens   TokenIssuer
	now      func() time.Time
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, tokens TokenIssuer) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
		now:      time.Now,
	}
}

// RegisterInput represents the required information to create a new user.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// Register creates a new user with a bcrypt-hashed password and default
// notification preferences.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*models.User, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrNameRequired
	}
	email, err := normalizeEmail(input.Email)
	if err != nil {
		return nil, err
	}
	if len(input.Password) < constants.MinPasswordLength {
		return nil, ErrPasswordTooShort
	}
	if len(input.Password) > constants.MaxPasswordBytes {
		return nil, ErrPasswordTooLong
	}

	if err := checkEmailAvailable(ctx, s.userRepo, email, ""); err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}

	user := &models.User{
		Name:          name,
		Email:         email,
		PasswordHash:  string(hashedPassword),
		JoinDate:      s.now(),
		Notifications: models.DefaultNotificationSettings(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Email    string
	Password string
}

// LoginResult is a freshly issued bearer token and the user it belongs to.
type LoginResult struct {
	Token string
	User  *models.User
}

// Login verifies credentials and issues a bearer token. Unknown emails and
// wrong passwords both return ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(input.Password))
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	tok, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToIssueToken, err)
	}

	return &LoginResult{Token: tok, User: user}, nil
}

// checkEmailAvailable fails with ErrEmailTaken when email belongs to a user
// other than exceptID.
func checkEmailAvailable(ctx context.Context, repo repository.UserRepository, email, exceptID string) error {
	existing, err := repo.FindByEmail(ctx, email)
	if err == nil {
		if existing.ID == exceptID {
			return nil
		}
		return ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check email: %w", err)
	}
	return nil
}

func normalizeEmail(raw string) (string, error) {
	email := repository.NormalizeEmail(raw)
	if email == "" || validate.Var(email, "email") != nil {
		return "", ErrInvalidEmail
	}
	return email, nil
}
