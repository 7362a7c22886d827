package models

import (
	"time"
)

type Post struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"not null;index" json:"user_id"`
	User         User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Title        string    `gorm:"not null" json:"title"`
	Content      string    `gorm:"type:text" json:"content"`
	LikeCount    int       `gorm:"default:0;not null" json:"like_count"` // denormalized, reconciled on every toggle
	CommentCount int       `gorm:"default:0;not null" json:"comment_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PostLike is one live like relationship for a post. The composite unique
// index is the final arbiter of at-most-one-like-per-user.
type PostLike struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_post_like_subject_user" json:"post_id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_post_like_subject_user" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
