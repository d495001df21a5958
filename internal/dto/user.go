package dto

import (
	"time"

	"github.com/yukikurage/taskflow-api/internal/models"
)

// UserDTO represents a user in auth responses
type UserDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// DirectoryEntryDTO is the public projection used by assignment pickers
type DirectoryEntryDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ProfileDTO is the full profile of the authenticated user, without the
// password hash
type ProfileDTO struct {
	ID            string                      `json:"id"`
	Name          string                      `json:"name"`
	Email         string                      `json:"email"`
	Phone         string                      `json:"phone"`
	Location      string                      `json:"location"`
	Bio           string                      `json:"bio"`
	Avatar        string                      `json:"avatar"`
	JoinDate      time.Time                   `json:"joinDate"`
	Notifications models.NotificationSettings `json:"notifications"`
}

// LoginResponse carries the bearer token and the logged-in user
type LoginResponse struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}
}

// ToProfileDTO converts a User model to ProfileDTO
func ToProfileDTO(user models.User) ProfileDTO {
	return ProfileDTO{
		ID:            user.ID,
		Name:          user.Name,
		Email:         user.Email,
		Phone:         user.Phone,
		Location:      user.Location,
		Bio:           user.Bio,
		Avatar:        user.Avatar,
		JoinDate:      user.JoinDate,
		Notifications: user.Notifications,
	}
}

// ToDirectory converts users to directory entries
func ToDirectory(users []models.User) []DirectoryEntryDTO {
	entries := make([]DirectoryEntryDTO, len(users))
	for i, user := range users {
		entries[i] = DirectoryEntryDTO{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		}
	}
	return entries
}
