package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Ilia-Pringless/YaTube/internal/model"
)

type GroupRepo interface {
	CreateGroup(ctx context.Context, group *model.Group) error
	GetGroupByID(ctx context.Context, id uint64) (*model.Group, error)
	GetGroupBySlug(ctx context.Context, slug string) (*model.Group, error)
	ListGroups(ctx context.Context) ([]*model.Group, error)
	DeleteGroup(ctx context.Context, id uint64) error
}

type GroupRepoImpl struct {
	db *gorm.DB
}

func NewGroupRepo(db *gorm.DB) GroupRepo {
	return &GroupRepoImpl{db: db}
}

func (s *GroupRepoImpl) CreateGroup(ctx context.Context, group *model.Group) error {
	return s.db.WithContext(ctx).Create(group).Error
}

func (s *GroupRepoImpl) GetGroupByID(ctx context.Context, id uint64) (*model.Group, error) {
	var group model.Group
	result := s.db.WithContext(ctx).First(&group, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &group, nil
}

func (s *GroupRepoImpl) GetGroupBySlug(ctx context.Context, slug string) (*model.Group, error) {
	var group model.Group
	result := s.db.WithContext(ctx).Where("slug = ?", slug).First(&group)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &group, nil
}

func (s *GroupRepoImpl) ListGroups(ctx context.Context) ([]*model.Group, error) {
	var groups []*model.Group
	result := s.db.WithContext(ctx).Order("title asc").Find(&groups)
	if result.Error != nil {
		return nil, result.Error
	}
	return groups, nil
}

// DeleteGroup removes a group and detaches its posts; the posts survive
// without a group.
func (s *GroupRepoImpl) DeleteGroup(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Post{}).Where("group_id = ?", id).Update("group_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Group{}, id).Error
	})
}
