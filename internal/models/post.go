package models

import "time"

// PostType discriminates which extension row a post envelope carries.
type PostType string

const (
	// PostTypeSecret marks a post carrying a Secret extension row.
	PostTypeSecret PostType = "secret"
	// PostTypeWYR marks a post carrying a WYR extension row.
	PostTypeWYR PostType = "wyr"
)

// ClientInfo captures the originating client's address and language,
// recorded on every post envelope.
type ClientInfo struct {
	IP       string `json:"ip"`
	Language string `json:"language"`
}

// Post is the common envelope shared by every post type. Exactly one of
// Secret or WYR is populated, matching the Type discriminator. OwnerID is
// nil for anonymous posts.
type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	IsPublic  bool      `gorm:"not null" json:"is_public"`
	ClientIP  string    `gorm:"not null" json:"client_ip"`
	Language  string    `gorm:"not null" json:"language"`
	Type      PostType  `gorm:"type:varchar(10);not null;index" json:"type"`
	OwnerID   *uint     `gorm:"index" json:"owner_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`

	// Relationships. Owner is never serialized: post responses identify the
	// author by owner_id only, so a full user row (with email) cannot leak.
	Owner  *User   `gorm:"foreignKey:OwnerID" json:"-"`
	Secret *Secret `gorm:"foreignKey:PostID" json:"secret,omitempty"`
	WYR    *WYR    `gorm:"foreignKey:PostID" json:"wyr,omitempty"`
}

// Secret is the extension row for free-text secret posts. It shares its
// primary key with the owning envelope.
type Secret struct {
	PostID uint   `gorm:"primaryKey" json:"post_id"`
	Text   string `gorm:"type:text;not null" json:"text"`
}

// WYR is the extension row for "would you rather" posts.
type WYR struct {
	PostID    uint   `gorm:"primaryKey" json:"post_id"`
	OptionOne string `gorm:"not null" json:"option_one"`
	OptionTwo string `gorm:"not null" json:"option_two"`
}

// TableName specifies the table name for GORM
func (WYR) TableName() string {
	return "wyrs"
}
