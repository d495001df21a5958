package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/yukikurage/taskflow-api/internal/models"
	"github.com/yukikurage/taskflow-api/internal/repository"
	"github.com/yukikurage/taskflow-api/internal/testutil"
	"gorm.io/gorm"
)

type TaskRepositoryTestSuite struct {
	suite.Suite
	ctx   context.Context
	repo  repository.TaskRepository
	users repository.UserRepository
	ann   *models.User
	bob   *models.User
	cat   *models.User
}

func TestTaskRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TaskRepositoryTestSuite))
}

func (s *TaskRepositoryTestSuite) SetupTest() {
	db := testutil.NewTestDB(s.T())
	s.ctx = context.Background()
	s.repo = repository.NewTaskRepository(db)
	s.users = repository.NewUserRepository(db)

	s.ann = newUser("Ann", "ann@x.com")
	s.bob = newUser("Bob", "bob@x.com")
	s.cat = newUser("Cat", "cat@x.com")
	for _, u := range []*models.User{s.ann, s.bob, s.cat} {
		s.Require().NoError(s.users.Create(s.ctx, u))
	}
}

func (s *TaskRepositoryTestSuite) createTask(title string, creator *models.User, assignee *models.User) *models.Task {
	task := &models.Task{
		Title:       title,
		Priority:    models.TaskPriorityLow,
		Status:      models.TaskStatusTodo,
		CreatedByID: creator.ID,
	}
	if assignee != nil {
		task.AssignTo(assignee)
	}
	s.Require().NoError(s.repo.Create(s.ctx, task))
	return task
}

func (s *TaskRepositoryTestSuite) TestListByParticipant() {
	first := s.createTask("first", s.ann, nil)
	second := s.createTask("second", s.bob, s.ann)
	s.createTask("third", s.bob, s.cat)

	annTasks, err := s.repo.ListByParticipant(s.ctx, s.ann.ID)
	s.Require().NoError(err)
	s.Require().Len(annTasks, 2)
	s.Equal(first.ID, annTasks[0].ID)
	s.Equal(second.ID, annTasks[1].ID)

	bobTasks, err := s.repo.ListByParticipant(s.ctx, s.bob.ID)
	s.Require().NoError(err)
	s.Len(bobTasks, 2)

	none, err := s.repo.ListByParticipant(s.ctx, "stranger")
	s.Require().NoError(err)
	s.NotNil(none)
	s.Empty(none)
}

func (s *TaskRepositoryTestSuite) TestUpdate_KeepsCreator() {
	task := s.createTask("draft", s.ann, nil)

	due := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	task.Title = "final"
	task.Status = models.TaskStatusDone
	task.DueDate = &due
	task.CreatedByID = s.bob.ID
	task.AssignTo(s.cat)
	s.Require().NoError(s.repo.Update(s.ctx, task))

	stored, err := s.repo.FindByID(s.ctx, task.ID)
	s.Require().NoError(err)
	s.Equal("final", stored.Title)
	s.Equal(models.TaskStatusDone, stored.Status)
	s.Equal(s.ann.ID, stored.CreatedByID)
	s.Require().NotNil(stored.DueDate)
	s.True(due.Equal(*stored.DueDate))
	s.Require().NotNil(stored.Assignee())
	s.Equal(s.cat.ID, stored.Assignee().UserID)
	s.Equal("Cat", stored.Assignee().Name)
}

func (s *TaskRepositoryTestSuite) TestUpdate_ClearsDueDate() {
	due := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	task := &models.Task{
		Title:       "dated",
		DueDate:     &due,
		Priority:    models.TaskPriorityHigh,
		Status:      models.TaskStatusTodo,
		CreatedByID: s.ann.ID,
	}
	s.Require().NoError(s.repo.Create(s.ctx, task))

	task.DueDate = nil
	s.Require().NoError(s.repo.Update(s.ctx, task))

	stored, err := s.repo.FindByID(s.ctx, task.ID)
	s.Require().NoError(err)
	s.Nil(stored.DueDate)
}

func (s *TaskRepositoryTestSuite) TestUpdate_UnchangedTaskIsNotReportedMissing() {
	task := s.createTask("steady", s.ann, nil)

	s.Require().NoError(s.repo.Update(s.ctx, task))
	s.Require().NoError(s.repo.Update(s.ctx, task))

	missing := &models.Task{ID: "no-such-task", Title: "ghost", CreatedByID: s.ann.ID}
	s.ErrorIs(s.repo.Update(s.ctx, missing), gorm.ErrRecordNotFound)
}

func (s *TaskRepositoryTestSuite) TestFindByID_NotFound() {
	_, err := s.repo.FindByID(s.ctx, "missing")
	s.ErrorIs(err, gorm.ErrRecordNotFound)

	err = s.repo.Update(s.ctx, &models.Task{ID: "missing", Title: "x"})
	s.ErrorIs(err, gorm.ErrRecordNotFound)
}
