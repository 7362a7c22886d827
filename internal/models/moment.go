package models

import (
	"time"
)

// Moment is a short status update. Unlike posts, moments carry no
// denormalized counters; like and comment counts are always computed
// live from their relationship tables.
type Moment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `json:"publish_time"`
}

type MomentLike struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	MomentID  uint      `gorm:"not null;uniqueIndex:idx_moment_like_subject_user" json:"moment_id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_moment_like_subject_user" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

type MomentComment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	MomentID  uint      `gorm:"not null;index" json:"moment_id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type MomentImage struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	MomentID     uint      `gorm:"not null;index" json:"moment_id"`
	Moment       Moment    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	ImageURL     string    `gorm:"not null" json:"image_url"`
	DisplayOrder int       `gorm:"default:1;not null" json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
}
