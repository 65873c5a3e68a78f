package service

import (
	"context"
	"strings"
	"time"

	"github.com/jinzhu/copier"

	"github.com/Ilia-Pringless/YaTube/internal/api/dto"
	"github.com/Ilia-Pringless/YaTube/internal/model"
	"github.com/Ilia-Pringless/YaTube/internal/pkg/minio"
	"github.com/Ilia-Pringless/YaTube/internal/repository"
)

type PostService interface {
	CreatePost(ctx context.Context, userID uint64, base *dto.PostBaseDTO) (*dto.PostDTO, error)
	UpdatePost(ctx context.Context, userID, postID uint64, base *dto.PostBaseDTO) (*dto.PostDTO, error)
	DeletePost(ctx context.Context, userID, postID uint64) error
	GetPostDetail(ctx context.Context, postID uint64) (*dto.PostDetailDTO, error)
}

type postServiceImpl struct {
	postRepo    repository.PostRepo
	groupRepo   repository.GroupRepo
	commentRepo repository.CommentRepo
}

func NewPostService(postRepo repository.PostRepo, groupRepo repository.GroupRepo, commentRepo repository.CommentRepo) PostService {
	return &postServiceImpl{
		postRepo:    postRepo,
		groupRepo:   groupRepo,
		commentRepo: commentRepo,
	}
}

// validatePostInput enforces the creation/edit rules: non-empty text after
// trimming, a resolvable group when one is referenced and a stored image
// object when one is referenced.
func (s *postServiceImpl) validatePostInput(ctx context.Context, base *dto.PostBaseDTO) error {
	if strings.TrimSpace(base.Text) == "" {
		return ErrEmptyText
	}

	if base.GroupID != nil {
		group, err := s.groupRepo.GetGroupByID(ctx, *base.GroupID)
		if err != nil {
			return err
		}
		if group == nil {
			return ErrInvalidGroup
		}
	}

	if base.Image != nil && minio.Client != nil {
		exists, err := minio.ObjectExists(ctx, *base.Image)
		if err != nil {
			return err
		}
		if !exists {
			return ErrFileNotExist
		}
	}

	return nil
}

func (s *postServiceImpl) CreatePost(ctx context.Context, userID uint64, base *dto.PostBaseDTO) (*dto.PostDTO, error) {
	if err := s.validatePostInput(ctx, base); err != nil {
		return nil, err
	}

	post := &model.Post{
		AuthorID:  userID,
		GroupID:   base.GroupID,
		Text:      base.Text,
		Image:     base.Image,
		CreatedAt: time.Now(),
	}
	if err := s.postRepo.CreatePost(ctx, post); err != nil {
		return nil, err
	}

	created, err := s.postRepo.GetPost(ctx, post.ID)
	if err != nil {
		return nil, err
	}
	return toPostDTO(created)
}

// UpdatePost lets the author change text, group and image. Authorship is
// immutable: the author column is never written on edit.
func (s *postServiceImpl) UpdatePost(ctx context.Context, userID, postID uint64, base *dto.PostBaseDTO) (*dto.PostDTO, error) {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	if post.AuthorID != userID {
		return nil, ErrNotPostAuthor
	}

	if err = s.validatePostInput(ctx, base); err != nil {
		return nil, err
	}

	post.Text = base.Text
	post.GroupID = base.GroupID
	post.Image = base.Image
	if err = s.postRepo.UpdatePost(ctx, post); err != nil {
		return nil, err
	}

	updated, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	return toPostDTO(updated)
}

func (s *postServiceImpl) DeletePost(ctx context.Context, userID, postID uint64) error {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}
	if post.AuthorID != userID {
		return ErrNotPostAuthor
	}

	return s.postRepo.DeletePost(ctx, postID)
}

func (s *postServiceImpl) GetPostDetail(ctx context.Context, postID uint64) (*dto.PostDetailDTO, error) {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	postDTO, err := toPostDTO(post)
	if err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.GetCommentsByPostID(ctx, postID)
	if err != nil {
		return nil, err
	}

	commentDTOs := make([]*dto.CommentDTO, 0, len(comments))
	for _, comment := range comments {
		commentDTO := &dto.CommentDTO{}
		if err = copier.Copy(commentDTO, comment); err != nil {
			return nil, err
		}
		commentDTOs = append(commentDTOs, commentDTO)
	}

	return &dto.PostDetailDTO{
		PostDTO:  *postDTO,
		Comments: commentDTOs,
	}, nil
}

func toPostDTO(post *model.Post) (*dto.PostDTO, error) {
	postDTO := &dto.PostDTO{}
	if err := copier.Copy(postDTO, post); err != nil {
		return nil, err
	}

	if post.Image != nil && minio.Client != nil {
		url := minio.GetPublicURL(*post.Image)
		postDTO.ImageURL = &url
	}

	return postDTO, nil
}

func batchToPostDTO(posts []*model.Post) ([]*dto.PostDTO, error) {
	items := make([]*dto.PostDTO, 0, len(posts))
	for _, post := range posts {
		item, err := toPostDTO(post)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
