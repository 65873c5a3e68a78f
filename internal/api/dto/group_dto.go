package dto

type GroupBaseDTO struct {
	Title       string `json:"title" binding:"required" validate:"min=1,max=200"`
	Slug        string `json:"slug" binding:"required" validate:"min=1,max=100"`
	Description string `json:"description"`
}

type GroupDTO struct {
	ID          uint64 `json:"id"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}
