package dto

import "time"

// PostBaseDTO is the post creation/edit payload. Text emptiness is a
// business rule checked in the service layer after trimming, not a shape
// constraint, so it carries no binding tag.
type PostBaseDTO struct {
	Text    string  `json:"text"`
	GroupID *uint64 `json:"group_id,omitempty"`
	Image   *string `json:"image,omitempty"`
}

type PostDTO struct {
	ID        uint64    `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	Author    AuthorDTO `json:"author"`
	Group     *GroupDTO `json:"group,omitempty"`
	ImageURL  *string   `json:"image_url,omitempty"`
}

type PostDetailDTO struct {
	PostDTO
	Comments []*CommentDTO `json:"comments"`
}
