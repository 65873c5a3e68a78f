package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Ilia-Pringless/YaTube/internal/model"
)

type FollowRepo interface {
	CreateFollow(ctx context.Context, follow *model.Follow) error
	DeleteFollow(ctx context.Context, userID, authorID uint64) error
	GetFollow(ctx context.Context, userID, authorID uint64) (*model.Follow, error)
	GetFollowedAuthorIDs(ctx context.Context, userID uint64) ([]uint64, error)
}

type FollowRepoImpl struct {
	db *gorm.DB
}

func NewFollowRepo(db *gorm.DB) FollowRepo {
	return &FollowRepoImpl{db: db}
}

// CreateFollow inserts a follow edge. An existing (user, author) pair is
// left untouched, so repeated follows never duplicate rows or error.
func (s *FollowRepoImpl) CreateFollow(ctx context.Context, follow *model.Follow) error {
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			DoNothing: true,
		}).
		Create(follow).Error
}

func (s *FollowRepoImpl) DeleteFollow(ctx context.Context, userID, authorID uint64) error {
	return s.db.WithContext(ctx).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Delete(&model.Follow{}).Error
}

func (s *FollowRepoImpl) GetFollow(ctx context.Context, userID, authorID uint64) (*model.Follow, error) {
	var follow model.Follow
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		First(&follow)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &follow, nil
}

func (s *FollowRepoImpl) GetFollowedAuthorIDs(ctx context.Context, userID uint64) ([]uint64, error) {
	var authorIDs []uint64
	result := s.db.WithContext(ctx).
		Model(&model.Follow{}).
		Where("user_id = ?", userID).
		Pluck("author_id", &authorIDs)
	if result.Error != nil {
		return nil, result.Error
	}
	return authorIDs, nil
}
