package models

import "time"

// FriendRequest represents a directed friendship proposal between two users.
// Friendship itself is derived: two users are friends when an accepted
// request exists between them in either direction.
type FriendRequest struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	SenderID   uint `gorm:"not null;uniqueIndex:idx_friend_request_pair" json:"sender_id"`
	ReceiverID uint `gorm:"not null;uniqueIndex:idx_friend_request_pair" json:"receiver_id"`
	// Accepted flips false->true exactly once; rows are never deleted.
	Accepted  bool      `gorm:"not null;default:false" json:"accepted"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Sender   User `gorm:"foreignKey:SenderID" json:"sender,omitempty"`
	Receiver User `gorm:"foreignKey:ReceiverID" json:"receiver,omitempty"`
}

// TableName specifies the table name for GORM
func (FriendRequest) TableName() string {
	return "friend_requests"
}
