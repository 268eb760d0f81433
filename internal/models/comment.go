package models

import "time"

// Comment represents a comment on a post.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	UserID    uint      `gorm:"not null" json:"user_id"`
	PostID    uint      `gorm:"not null;index" json:"post_id"`
	CreatedAt time.Time `json:"created_at"`

	// Relationships, never serialized. Comment responses identify the
	// author by user_id only.
	User User `gorm:"foreignKey:UserID" json:"-"`
	Post Post `gorm:"foreignKey:PostID" json:"-"`
}
