// Package models contains data structures for the application's domain models.
package models

import "time"

// User represents a registered account in the Secretely application.
type User struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	Username string    `gorm:"uniqueIndex;not null" json:"username"`
	Name     string    `gorm:"not null;index" json:"name"`
	Email    string    `gorm:"uniqueIndex;not null" json:"email"`
	Password string    `gorm:"not null" json:"-"`
	JoinedAt time.Time `gorm:"autoCreateTime" json:"joined_at"`

	// Relationships
	Posts    []Post    `gorm:"foreignKey:OwnerID" json:"posts,omitempty"`
	Likes    []Like    `gorm:"foreignKey:UserID" json:"likes,omitempty"`
	Comments []Comment `gorm:"foreignKey:UserID" json:"comments,omitempty"`
}

// UserSummary is the public projection of a user returned from friend
// listings. Email is intentionally absent.
type UserSummary struct {
	ID       uint      `json:"id"`
	Username string    `json:"username"`
	Name     string    `json:"name"`
	JoinedAt time.Time `json:"joined_at"`
}

// Summary returns the public projection of the user.
func (u User) Summary() UserSummary {
	return UserSummary{
		ID:       u.ID,
		Username: u.Username,
		Name:     u.Name,
		JoinedAt: u.JoinedAt,
	}
}
