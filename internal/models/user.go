package models

import (
	"time"
)

// Roles. "author" is the site owner and may manage posts, projects and
// moments; "guest" is a registered reader who can comment and like.
const (
	RoleAuthor = "author"
	RoleGuest  = "guest"
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"uniqueIndex;not null" json:"username"`
	Password  string    `gorm:"not null" json:"-"` // bcrypt hash
	Role      string    `gorm:"size:20;default:'guest';not null" json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
