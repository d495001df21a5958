package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusDone       TaskStatus = "done"
)

// Valid reports whether s is one of the known statuses. Matching is case-sensitive.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusDone:
		return true
	}
	return false
}

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

// Valid reports whether p is one of the known priorities. Matching is case-sensitive.
func (p TaskPriority) Valid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return true
	}
	return false
}

// Assignee is a copy of the assigned user's identity taken at assignment time.
// It is not refreshed when the user later changes their name.
type Assignee struct {
	UserID string `json:"id"`
	Name   string `json:"name"`
}

type Task struct {
	ID           string       `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Title        string       `gorm:"type:varchar(100);not null" json:"title"`
	Description  string       `gorm:"type:text" json:"description"`
	DueDate      *time.Time   `json:"dueDate"`
	Priority     TaskPriority `gorm:"type:varchar(20);not null" json:"priority"`
	Status       TaskStatus   `gorm:"type:varchar(20);not null" json:"status"`
	AssigneeID   *string      `gorm:"type:varchar(36);index" json:"-"`
	AssigneeName string       `gorm:"type:varchar(255)" json:"-"`
	CreatedByID  string       `gorm:"type:varchar(36);not null;index" json:"createdBy"`
	CreatedAt    time.Time    `gorm:"index" json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

// BeforeCreate assigns a random identifier when none is set.
func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

// Assignee returns the assignment snapshot, or nil when the task is unassigned.
func (t *Task) Assignee() *Assignee {
	if t.AssigneeID == nil {
		return nil
	}
	return &Assignee{UserID: *t.AssigneeID, Name: t.AssigneeName}
}

// AssignTo replaces the assignment snapshot with the user's current id and name.
func (t *Task) AssignTo(user *User) {
	id := user.ID
	t.AssigneeID = &id
	t.AssigneeName = user.Name
}

// HasParticipant reports whether userID created the task or is its assignee.
func (t *Task) HasParticipant(userID string) bool {
	if t.CreatedByID == userID {
		return true
	}
	return t.AssigneeID != nil && *t.AssigneeID == userID
}
