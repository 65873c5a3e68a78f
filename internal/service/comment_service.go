package service

import (
	"context"
	"strings"
	"time"

	"github.com/jinzhu/copier"

	"github.com/Ilia-Pringless/YaTube/internal/api/dto"
	"github.com/Ilia-Pringless/YaTube/internal/model"
	"github.com/Ilia-Pringless/YaTube/internal/repository"
)

type CommentService interface {
	CreateComment(ctx context.Context, userID, postID uint64, base *dto.CommentBaseDTO) (*dto.CommentDTO, error)
}

type commentServiceImpl struct {
	commentRepo repository.CommentRepo
	postRepo    repository.PostRepo
	userRepo    repository.UserRepo
}

func NewCommentService(commentRepo repository.CommentRepo, postRepo repository.PostRepo, userRepo repository.UserRepo) CommentService {
	return &commentServiceImpl{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		userRepo:    userRepo,
	}
}

func (s *commentServiceImpl) CreateComment(ctx context.Context, userID, postID uint64, base *dto.CommentBaseDTO) (*dto.CommentDTO, error) {
	if strings.TrimSpace(base.Text) == "" {
		return nil, ErrEmptyText
	}

	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	comment := &model.Comment{
		PostID:    postID,
		AuthorID:  userID,
		Text:      base.Text,
		CreatedAt: time.Now(),
	}
	if err = s.commentRepo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}

	author, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	commentDTO := &dto.CommentDTO{}
	if err = copier.Copy(commentDTO, comment); err != nil {
		return nil, err
	}
	if author != nil {
		commentDTO.Author = dto.AuthorDTO{ID: author.ID, Username: author.Username}
	}

	return commentDTO, nil
}
