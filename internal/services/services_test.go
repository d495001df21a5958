package services

import (
	"context"
	"testing"
	"time"

	"github.com/yukikurage/taskflow-api/internal/repository"
	"github.com/yukikurage/taskflow-api/internal/testutil"
	"github.com/yukikurage/taskflow-api/internal/token"
)

type serviceTestEnv struct {
	ctx      context.Context
	userRepo repository.UserRepository
	taskRepo repository.TaskRepository
	tokens   *token.JWT
	auth     *AuthService
	users    *UserService
	tasks    *TaskService
}

func setupServiceTestEnv(t *testing.T, policy TaskPolicy) serviceTestEnv {
	t.Helper()

	db := testutil.NewTestDB(t)
	userRepo := repository.NewUserRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	tokens := token.NewJWT("test-secret", time.Hour)

	return serviceTestEnv{
		ctx:      context.Background(),
		userRepo: userRepo,
		taskRepo: taskRepo,
		tokens:   tokens,
		auth:     NewAuthService(userRepo, tokens),
		users:    NewUserService(userRepo),
		tasks:    NewTaskService(taskRepo, userRepo, policy),
	}
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }
