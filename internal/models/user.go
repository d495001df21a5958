package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationSettings are per-user notification preferences.
type NotificationSettings struct {
	EmailNotifications bool `gorm:"not null" json:"emailNotifications"`
	PushNotifications  bool `gorm:"not null" json:"pushNotifications"`
	TaskReminders      bool `gorm:"not null" json:"taskReminders"`
	TeamUpdates        bool `gorm:"not null" json:"teamUpdates"`
}

// DefaultNotificationSettings returns the preferences new users start with.
func DefaultNotificationSettings() NotificationSettings {
	return NotificationSettings{
		EmailNotifications: true,
		PushNotifications:  true,
		TaskReminders:      true,
		TeamUpdates:        false,
	}
}

type User struct {
	ID            string               `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name          string               `gorm:"type:varchar(255);not null" json:"name"`
	Email         string               `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash  string               `gorm:"type:varchar(255);not null" json:"-"`
	Phone         string               `gorm:"type:varchar(50)" json:"phone"`
	Location      string               `gorm:"type:varchar(255)" json:"location"`
	Bio           string               `gorm:"type:text" json:"bio"`
	Avatar        string               `gorm:"type:varchar(1024)" json:"avatar"`
	JoinDate      time.Time            `json:"joinDate"`
	Notifications NotificationSettings `gorm:"embedded;embeddedPrefix:notify_" json:"notifications"`
	CreatedAt     time.Time            `gorm:"index" json:"createdAt"`
	UpdatedAt     time.Time            `json:"updatedAt"`
}

// BeforeCreate assigns a random identifier when none is set.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
