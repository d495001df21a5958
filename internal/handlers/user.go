package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/taskflow-api/internal/dto"
	apierrors "github.com/yukikurage/taskflow-api/internal/errors"
	"github.com/yukikurage/taskflow-api/internal/logger"
	"github.com/yukikurage/taskflow-api/internal/middleware"
	"github.com/yukikurage/taskflow-api/internal/services"
)

type UserHandler struct {
	userService *services.UserService
	log         *logger.Logger
}

func NewUserHandler(userService *services.UserService, log *logger.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		log:         log,
	}
}

// ListUsers returns id, name and email of every user
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListDirectory(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDirectory(users))
}

// GetProfile returns the caller's profile
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthenticated(c, "")
		return
	}

	user, err := h.userService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProfileDTO(*user))
}

// UpdateProfile merges the provided fields into the caller's profile
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthenticated(c, "")
		return
	}

	type NotificationsRequest struct {
		EmailNotifications *bool `json:"emailNotifications"`
		PushNotifications  *bool `json:"pushNotifications"`
		TaskReminders      *bool `json:"taskReminders"`
		TeamUpdates        *bool `json:"teamUpdates"`
	}
	type UpdateProfileRequest struct {
		Name          *string               `json:"name"`
		Email         *string               `json:"email"`
		Phone         *string               `json:"phone"`
		Location      *string               `json:"location"`
		Bio           *string               `json:"bio"`
		Avatar        *string               `json:"avatar"`
		Notifications *NotificationsRequest `json:"notifications"`
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	input := services.UpdateProfileInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Location: req.Location,
		Bio:      req.Bio,
		Avatar:   req.Avatar,
	}
	if n := req.Notifications; n != nil {
		input.Notifications = &services.NotificationsInput{
			EmailNotifications: n.EmailNotifications,
			PushNotifications:  n.PushNotifications,
			TaskReminders:      n.TaskReminders,
			TeamUpdates:        n.TeamUpdates,
		}
	}

	user, err := h.userService.UpdateProfile(c.Request.Context(), userID, input)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProfileDTO(*user))
}
