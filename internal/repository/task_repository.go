package repository

import (
	"context"

	"github.com/yukikurage/taskflow-api/internal/models"
	"gorm.io/gorm"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create creates a new task
func (r *GormTaskRepository) Create(ctx context.Context, task *models.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

// FindByID finds a task by ID
func (r *GormTaskRepository) FindByID(ctx context.Context, id string) (*models.Task, error) {
	var task models.Task
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// ListByParticipant lists tasks created by or assigned to the user
func (r *GormTaskRepository) ListByParticipant(ctx context.Context, userID string) ([]models.Task, error) {
	tasks := []models.Task{}
	err := r.db.WithContext(ctx).
		Where("tasks.created_by_id = ? OR tasks.assignee_id = ?", userID, userID).
		Order("tasks.created_at ASC, tasks.id ASC").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// taskMutableFields lists every column Update writes. CreatedByID is absent
// so the creator can never change after insert.
var taskMutableFields = []string{
	"Title", "Description", "DueDate", "Priority", "Status",
	"AssigneeID", "AssigneeName", "UpdatedAt",
}

// Update writes the mutable fields of a task, including zero values
func (r *GormTaskRepository) Update(ctx context.Context, task *models.Task) error {
	result := r.db.WithContext(ctx).Model(task).Select(taskMutableFields).Updates(task)
	if result.Error != nil {
		return result.Error
	}
	// MySQL needs clientFoundRows=true for matched-but-unchanged rows to count.
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
