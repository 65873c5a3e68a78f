package service

import (
	"context"
	"time"

	"github.com/Ilia-Pringless/YaTube/internal/model"
	"github.com/Ilia-Pringless/YaTube/internal/repository"
)

type FollowService interface {
	Follow(ctx context.Context, userID uint64, authorUsername string) error
	Unfollow(ctx context.Context, userID uint64, authorUsername string) error
	IsFollowing(ctx context.Context, userID uint64, authorID uint64) (bool, error)
}

type followServiceImpl struct {
	followRepo repository.FollowRepo
	userRepo   repository.UserRepo
}

func NewFollowService(followRepo repository.FollowRepo, userRepo repository.UserRepo) FollowService {
	return &followServiceImpl{
		followRepo: followRepo,
		userRepo:   userRepo,
	}
}

// Follow creates a follow edge towards the named author. Following
// yourself is silently ignored and following someone twice leaves a
// single edge; neither case is an error.
func (s *followServiceImpl) Follow(ctx context.Context, userID uint64, authorUsername string) error {
	author, err := s.userRepo.GetUserByUsername(ctx, authorUsername)
	if err != nil {
		return err
	}
	if author == nil {
		return ErrUserNotFound
	}
	if author.ID == userID {
		return nil
	}

	return s.followRepo.CreateFollow(ctx, &model.Follow{
		UserID:    userID,
		AuthorID:  author.ID,
		CreatedAt: time.Now(),
	})
}

// Unfollow removes the edge towards the named author; removing an absent
// edge is a no-op.
func (s *followServiceImpl) Unfollow(ctx context.Context, userID uint64, authorUsername string) error {
	author, err := s.userRepo.GetUserByUsername(ctx, authorUsername)
	if err != nil {
		return err
	}
	if author == nil {
		return ErrUserNotFound
	}

	return s.followRepo.DeleteFollow(ctx, userID, author.ID)
}

func (s *followServiceImpl) IsFollowing(ctx context.Context, userID uint64, authorID uint64) (bool, error) {
	if userID == 0 {
		return false, nil
	}
	follow, err := s.followRepo.GetFollow(ctx, userID, authorID)
	if err != nil {
		return false, err
	}
	return follow != nil, nil
}
