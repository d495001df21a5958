package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/taskflow-api/internal/dto"
	"github.com/yukikurage/taskflow-api/internal/logger"
	"github.com/yukikurage/taskflow-api/internal/repository"
	"github.com/yukikurage/taskflow-api/internal/services"
	"github.com/yukikurage/taskflow-api/internal/testutil"
	"github.com/yukikurage/taskflow-api/internal/token"
)

type apiTestEnv struct {
	router      *gin.Engine
	authService *services.AuthService
	tokens      *token.JWT
}

func setupAPITestEnv(t *testing.T, policy services.TaskPolicy) apiTestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.NewTestDB(t)
	userRepo := repository.NewUserRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	tokens := token.NewJWT("test-secret", time.Hour)
	authService := services.NewAuthService(userRepo, tokens)

	router := NewRouter(RouterDeps{
		AuthService: authService,
		UserService: services.NewUserService(userRepo),
		TaskService: services.NewTaskService(taskRepo, userRepo, policy),
		Tokens:      tokens,
		Logger:      logger.Nop(),
	})

	return apiTestEnv{
		router:      router,
		authService: authService,
		tokens:      tokens,
	}
}

// do sends a JSON request and returns the recorder. body may be nil, a
// string of raw JSON, or any value to marshal.
func (env apiTestEnv) do(t *testing.T, method, url, bearer string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

// registerAndLogin creates a user through the API and returns its token and id.
func (env apiTestEnv) registerAndLogin(t *testing.T, name, email string) (string, string) {
	t.Helper()

	w := env.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name":     name,
		"email":    email,
		"password": "secret1",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    email,
		"password": "secret1",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp dto.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Token, resp.User.ID
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}
