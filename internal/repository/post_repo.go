package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Ilia-Pringless/YaTube/internal/model"
)

// PostFilter narrows a post listing to one feed scope. A nil field means
// the scope does not constrain that dimension; a non-nil empty AuthorIDs
// slice matches nothing.
type PostFilter struct {
	GroupID   *uint64
	AuthorID  *uint64
	AuthorIDs []uint64
}

func (f PostFilter) apply(tx *gorm.DB) *gorm.DB {
	if f.GroupID != nil {
		tx = tx.Where("group_id = ?", *f.GroupID)
	}
	if f.AuthorID != nil {
		tx = tx.Where("author_id = ?", *f.AuthorID)
	}
	if f.AuthorIDs != nil {
		tx = tx.Where("author_id IN ?", f.AuthorIDs)
	}
	return tx
}

type PostRepo interface {
	CreatePost(ctx context.Context, post *model.Post) error
	GetPost(ctx context.Context, id uint64) (*model.Post, error)
	ListPosts(ctx context.Context, filter PostFilter, limit, offset int) ([]*model.Post, error)
	CountPosts(ctx context.Context, filter PostFilter) (int64, error)
	UpdatePost(ctx context.Context, post *model.Post) error
	DeletePost(ctx context.Context, id uint64) error
}

type PostRepoImpl struct {
	db *gorm.DB
}

func NewPostRepo(db *gorm.DB) PostRepo {
	return &PostRepoImpl{db: db}
}

func (s *PostRepoImpl) CreatePost(ctx context.Context, post *model.Post) error {
	return s.db.WithContext(ctx).Create(post).Error
}

func (s *PostRepoImpl) GetPost(ctx context.Context, id uint64) (*model.Post, error) {
	var post model.Post
	result := s.db.WithContext(ctx).
		Preload("Author").
		Preload("Group").
		First(&post, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &post, nil
}

// ListPosts returns one feed page, newest first. Ties on the creation
// timestamp fall back to descending id so pagination stays stable.
func (s *PostRepoImpl) ListPosts(ctx context.Context, filter PostFilter, limit, offset int) ([]*model.Post, error) {
	var posts []*model.Post
	result := filter.apply(s.db.WithContext(ctx)).
		Preload("Author").
		Preload("Group").
		Order("created_at desc").
		Order("id desc").
		Limit(limit).
		Offset(offset).
		Find(&posts)
	if result.Error != nil {
		return nil, result.Error
	}
	return posts, nil
}

func (s *PostRepoImpl) CountPosts(ctx context.Context, filter PostFilter) (int64, error) {
	var count int64
	result := filter.apply(s.db.WithContext(ctx).Model(&model.Post{})).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// UpdatePost writes the mutable columns of a post. Authorship and the
// creation timestamp are never touched.
func (s *PostRepoImpl) UpdatePost(ctx context.Context, post *model.Post) error {
	return s.db.WithContext(ctx).
		Model(&model.Post{}).
		Where("id = ?", post.ID).
		Select("text", "group_id", "image").
		Updates(map[string]interface{}{
			"text":     post.Text,
			"group_id": post.GroupID,
			"image":    post.Image,
		}).Error
}

func (s *PostRepoImpl) DeletePost(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Post{}, id).Error
	})
}
