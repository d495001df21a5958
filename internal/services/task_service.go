package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/yukikurage/taskflow-api/internal/constants"
	"github.com/yukikurage/taskflow-api/internal/models"
	"github.com/yukikurage/taskflow-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrTitleRequired   = validationError("title", "title is required")
	ErrTitleTooLong    = validationError("title", fmt.Sprintf("title must be at most %d characters", constants.MaxTaskTitleLength))
	ErrInvalidPriority = validationError("priority", "priority must be one of low, medium, high")
	ErrInvalidStatus   = validationError("status", "status must be one of todo, in-progress, done")
)

// TaskPolicy controls who may update a task.
type TaskPolicy struct {
	// RestrictUpdates limits updates to the creator and the current assignee.
	// When false any authenticated user may update any task.
	RestrictUpdates bool
}

// TaskService handles task business logic
type TaskService struct {
	taskRepo repository.TaskRepository
	userRepo repository.UserRepository
	policy   TaskPolicy
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository, userRepo repository.UserRepository, policy TaskPolicy) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
		userRepo: userRepo,
		policy:   policy,
	}
}

// CreateTaskInput represents input for creating a task
type CreateTaskInput struct {
	CreatorID      string
	Title          string
	Description    string
	DueDate        *time.Time
	Priority       models.TaskPriority
	Status         models.TaskStatus
	AssigneeUserID string
}

// UpdateTaskInput represents input for updating a task. Nil fields are left
// unchanged.
type UpdateTaskInput struct {
	Title          *string
	Description    *string
	DueDate        *time.Time
	ClearDueDate   bool
	Priority       *models.TaskPriority
	Status         *models.TaskStatus
	AssigneeUserID *string
}

// ListTasks returns the tasks the user created or is assigned to
func (s *TaskService) ListTasks(ctx context.Context, userID string) ([]models.Task, error) {
	tasks, err := s.taskRepo.ListByParticipant(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// GetTask returns a task the actor participates in. Tasks belonging to
// others are reported as not found.
func (s *TaskService) GetTask(ctx context.Context, actorID, taskID string) (*models.Task, error) {
	task, err := s.findTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if !task.HasParticipant(actorID) {
		return nil, ErrTaskNotFound
	}
	return task, nil
}

// CreateTask validates input and creates a task owned by input.CreatorID.
// An assignee that does not resolve to a user is dropped, not rejected.
func (s *TaskService) CreateTask(ctx context.Context, input CreateTaskInput) (*models.Task, error) {
	title, err := validateTitle(input.Title)
	if err != nil {
		return nil, err
	}

	if input.Priority == "" {
		input.Priority = models.TaskPriorityLow
	}
	if !input.Priority.Valid() {
		return nil, ErrInvalidPriority
	}
	if input.Status == "" {
		input.Status = models.TaskStatusTodo
	}
	if !input.Status.Valid() {
		return nil, ErrInvalidStatus
	}

	if _, err := s.userRepo.FindByID(ctx, input.CreatorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find creator: %w", err)
	}

	task := &models.Task{
		Title:       title,
		Description: strings.TrimSpace(input.Description),
		DueDate:     input.DueDate,
		Priority:    input.Priority,
		Status:      input.Status,
		CreatedByID: input.CreatorID,
	}

	if input.AssigneeUserID != "" {
		if err := s.assignIfExists(ctx, task, input.AssigneeUserID); err != nil {
			return nil, err
		}
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// UpdateTask applies the provided fields to an existing task. The creator
// never changes. An assignee that does not resolve leaves the current
// assignment in place.
func (s *TaskService) UpdateTask(ctx context.Context, actorID, taskID string, input UpdateTaskInput) (*models.Task, error) {
	task, err := s.findTask(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if s.policy.RestrictUpdates && !task.HasParticipant(actorID) {
		return nil, ErrTaskNotFound
	}

	if input.Title != nil {
		title, err := validateTitle(*input.Title)
		if err != nil {
			return nil, err
		}
		task.Title = title
	}
	if input.Description != nil {
		task.Description = strings.TrimSpace(*input.Description)
	}
	if input.ClearDueDate {
		task.DueDate = nil
	} else if input.DueDate != nil {
		task.DueDate = input.DueDate
	}
	if input.Priority != nil {
		if !input.Priority.Valid() {
			return nil, ErrInvalidPriority
		}
		task.Priority = *input.Priority
	}
	if input.Status != nil {
		if !input.Status.Valid() {
			return nil, ErrInvalidStatus
		}
		task.Status = *input.Status
	}
	if input.AssigneeUserID != nil && *input.AssigneeUserID != "" {
		if err := s.assignIfExists(ctx, task, *input.AssigneeUserID); err != nil {
			return nil, err
		}
	}

	if err := s.taskRepo.Update(ctx, task); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return task, nil
}

func (s *TaskService) findTask(ctx context.Context, taskID string) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return task, nil
}

// assignIfExists snapshots the user into the task when userID resolves.
func (s *TaskService) assignIfExists(ctx context.Context, task *models.Task, userID string) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("failed to find assignee: %w", err)
	}
	task.AssignTo(user)
	return nil
}

func validateTitle(raw string) (string, error) {
	title := strings.TrimSpace(raw)
	if title == "" {
		return "", ErrTitleRequired
	}
	if utf8.RuneCountInString(title) > constants.MaxTaskTitleLength {
		return "", ErrTitleTooLong
	}
	return title, nil
}
