package model

import "time"

// Follow is the only place the follower relation is materialized.
type Follow struct {
	UserID    uint64    `gorm:"primaryKey" json:"user_id"`
	AuthorID  uint64    `gorm:"primaryKey;index:idx_follows_author_id" json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (Follow) TableName() string {
	return "follows"
}
