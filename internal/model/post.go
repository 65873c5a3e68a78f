package model

import (
	"time"
)

type Post struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	AuthorID  uint64    `gorm:"not null;index:idx_posts_author_id" json:"author_id"`
	GroupID   *uint64   `gorm:"index:idx_posts_group_id" json:"group_id,omitempty"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	Image     *string   `gorm:"type:varchar(255)" json:"image,omitempty"`
	CreatedAt time.Time `json:"created_at"`

	Author User   `gorm:"foreignKey:AuthorID;references:ID" json:"-"`
	Group  *Group `gorm:"foreignKey:GroupID;references:ID" json:"-"`
}

func (Post) TableName() string {
	return "posts"
}
