package service

import (
	"context"
	"time"

	"github.com/jinzhu/copier"

	"github.com/Ilia-Pringless/YaTube/internal/api/dto"
	"github.com/Ilia-Pringless/YaTube/internal/model"
	"github.com/Ilia-Pringless/YaTube/internal/repository"
)

// GroupService manages the administrator-maintained group directory.
type GroupService interface {
	CreateGroup(ctx context.Context, base *dto.GroupBaseDTO) (*dto.GroupDTO, error)
	ListGroups(ctx context.Context) ([]*dto.GroupDTO, error)
	DeleteGroup(ctx context.Context, slug string) error
}

type groupServiceImpl struct {
	groupRepo repository.GroupRepo
}

func NewGroupService(groupRepo repository.GroupRepo) GroupService {
	return &groupServiceImpl{groupRepo: groupRepo}
}

func (s *groupServiceImpl) CreateGroup(ctx context.Context, base *dto.GroupBaseDTO) (*dto.GroupDTO, error) {
	existing, err := s.groupRepo.GetGroupBySlug(ctx, base.Slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrGroupSlugTaken
	}

	group := &model.Group{
		Title:       base.Title,
		Slug:        base.Slug,
		Description: base.Description,
		CreatedAt:   time.Now(),
	}
	if err = s.groupRepo.CreateGroup(ctx, group); err != nil {
		return nil, err
	}

	groupDTO := &dto.GroupDTO{}
	if err = copier.Copy(groupDTO, group); err != nil {
		return nil, err
	}
	return groupDTO, nil
}

func (s *groupServiceImpl) ListGroups(ctx context.Context) ([]*dto.GroupDTO, error) {
	groups, err := s.groupRepo.ListGroups(ctx)
	if err != nil {
		return nil, err
	}

	groupDTOs := make([]*dto.GroupDTO, 0, len(groups))
	for _, group := range groups {
		groupDTO := &dto.GroupDTO{}
		if err = copier.Copy(groupDTO, group); err != nil {
			return nil, err
		}
		groupDTOs = append(groupDTOs, groupDTO)
	}
	return groupDTOs, nil
}

func (s *groupServiceImpl) DeleteGroup(ctx context.Context, slug string) error {
	group, err := s.groupRepo.GetGroupBySlug(ctx, slug)
	if err != nil {
		return err
	}
	if group == nil {
		return ErrGroupNotFound
	}
	return s.groupRepo.DeleteGroup(ctx, group.ID)
}
