package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yukikurage/taskflow-api/internal/models"
	"github.com/yukikurage/taskflow-api/internal/repository"
	"gorm.io/gorm"
)

// UserService serves profile reads and updates and the user directory.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// NotificationsInput holds notification preference changes. Nil fields keep
// their stored value.
type NotificationsInput struct {
	EmailNotifications *bool
	PushNotifications  *bool
	TaskReminders      *bool
	TeamUpdates        *bool
}

// UpdateProfileInput holds profile changes. Nil fields keep their stored value.
type UpdateProfileInput struct {
	Name          *string
	Email         *string
	Phone         *string
	Location      *string
	Bio           *string
	Avatar        *string
	Notifications *NotificationsInput
}

// GetProfile retrieves a user by ID.
func (s *UserService) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// UpdateProfile merges the provided fields into the user's profile.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*models.User, error) {
	user, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, ErrNameRequired
		}
		user.Name = name
	}
	if input.Email != nil {
		email, err := normalizeEmail(*input.Email)
		if err != nil {
			return nil, err
		}
		if email != user.Email {
			if err := checkEmailAvailable(ctx, s.userRepo, email, user.ID); err != nil {
				return nil, err
			}
			user.Email = email
		}
	}
	if input.Phone != nil {
		user.Phone = strings.TrimSpace(*input.Phone)
	}
	if input.Location != nil {
		user.Location = strings.TrimSpace(*input.Location)
	}
	if input.Bio != nil {
		user.Bio = strings.TrimSpace(*input.Bio)
	}
	if input.Avatar != nil {
		user.Avatar = strings.TrimSpace(*input.Avatar)
	}
	if n := input.Notifications; n != nil {
		mergeBool(&user.Notifications.EmailNotifications, n.EmailNotifications)
		mergeBool(&user.Notifications.PushNotifications, n.PushNotifications)
		mergeBool(&user.Notifications.TaskReminders, n.TaskReminders)
		mergeBool(&user.Notifications.TeamUpdates, n.TeamUpdates)
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, ErrUserNotFound
		case errors.Is(err, gorm.ErrDuplicatedKey):
			return nil, ErrEmailTaken
		default:
			return nil, fmt.Errorf("failed to update user: %w", err)
		}
	}

	return user, nil
}

// ListDirectory returns every user for assignment pickers, oldest first.
func (s *UserService) ListDirectory(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func mergeBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}
