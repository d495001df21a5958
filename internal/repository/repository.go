package repository

import (
	"context"

	"github.com/yukikurage/taskflow-api/internal/models"
)

// TaskRepository defines the interface for task data access.
// Lookups of missing rows return gorm.ErrRecordNotFound.
type TaskRepository interface {
	// Create creates a new task
	Create(ctx context.Context, task *models.Task) error

	// FindByID finds a task by ID
	FindByID(ctx context.Context, id string) (*models.Task, error)

	// ListByParticipant lists tasks the user created or is assigned to,
	// oldest first
	ListByParticipant(ctx context.Context, userID string) ([]models.Task, error)

	// Update writes the mutable fields of a task; the creator is never changed
	Update(ctx context.Context, task *models.Task) error
}

// UserRepository defines the interface for user data access.
// Lookups of missing rows return gorm.ErrRecordNotFound.
type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, user *models.User) error

	// FindByID finds a user by ID
	FindByID(ctx context.Context, id string) (*models.User, error)

	// FindByEmail finds a user by email, ignoring case and surrounding spaces
	FindByEmail(ctx context.Context, email string) (*models.User, error)

	// List returns all users in registration order
	List(ctx context.Context) ([]models.User, error)

	// Update writes the profile fields of a user
	Update(ctx context.Context, user *models.User) error
}
