package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/taskflow-api/internal/logger"
	"github.com/yukikurage/taskflow-api/internal/middleware"
	"github.com/yukikurage/taskflow-api/internal/services"
)

// RouterDeps bundles what the HTTP layer needs.
type RouterDeps struct {
	AuthService *services.AuthService
	UserService *services.UserService
	TaskService *services.TaskService
	Tokens      middleware.TokenVerifier
	Logger      *logger.Logger
	// CORSOrigins lists browser origins allowed to call the API.
	CORSOrigins []string
}

// NewRouter wires all routes onto a new gin engine.
func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.RequestLogger(deps.Logger),
		middleware.CORS(deps.CORSOrigins),
		middleware.SecurityHeaders(),
	)

	authHandler := NewAuthHandler(deps.AuthService, deps.Logger)
	taskHandler := NewTaskHandler(deps.TaskService, deps.Logger)
	userHandler := NewUserHandler(deps.UserService, deps.Logger)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "TaskFlow API is running",
		})
	})

	api := r.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// Task routes (protected)
		tasks := api.Group("/tasks")
		tasks.Use(middleware.RequireAuth(deps.Tokens))
		{
			tasks.GET("", taskHandler.ListTasks)
			tasks.POST("", taskHandler.CreateTask)
			tasks.GET("/:id", taskHandler.GetTask)
			tasks.PUT("/:id", taskHandler.UpdateTask)
		}

		// User routes (protected)
		users := api.Group("/users")
		users.Use(middleware.RequireAuth(deps.Tokens))
		{
			users.GET("", userHandler.ListUsers)
			users.GET("/me", userHandler.GetProfile)
			users.PUT("/me", userHandler.UpdateProfile)
		}
	}

	return r
}
