package dto

// FeedPageDTO is one page of a feed: ordered items plus the pagination
// frame the client needs to render page controls.
type FeedPageDTO struct {
	Items      []*PostDTO `json:"items"`
	Page       int        `json:"page"`
	PageCount  int        `json:"page_count"`
	TotalCount int64      `json:"total_count"`
}

type GroupFeedDTO struct {
	Group *GroupDTO `json:"group"`
	FeedPageDTO
}

type AuthorFeedDTO struct {
	Author *AuthorDTO `json:"author"`
	FeedPageDTO
}
