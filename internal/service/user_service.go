package service

import (
	"context"
	"strings"
	"time"

	"github.com/Ilia-Pringless/YaTube/internal/api/dto"
	"github.com/Ilia-Pringless/YaTube/internal/model"
	"github.com/Ilia-Pringless/YaTube/internal/pkg/consts"
	"github.com/Ilia-Pringless/YaTube/internal/pkg/redis"
	"github.com/Ilia-Pringless/YaTube/internal/pkg/security"
	"github.com/Ilia-Pringless/YaTube/internal/repository"
)

const RoleAdmin = "ADMIN"

type UserService interface {
	Register(ctx context.Context, regDTO *dto.RegisterDTO) error
	Login(ctx context.Context, credDTO *dto.CredentialDTO) (string, error)
	Logout(ctx context.Context, token string) error
	GetProfile(ctx context.Context, username string, viewerID uint64) (*dto.ProfileDTO, error)
}

type userServiceImpl struct {
	userRepo   repository.UserRepo
	postRepo   repository.PostRepo
	followRepo repository.FollowRepo
}

func NewUserService(userRepo repository.UserRepo, postRepo repository.PostRepo, followRepo repository.FollowRepo) UserService {
	return &userServiceImpl{
		userRepo:   userRepo,
		postRepo:   postRepo,
		followRepo: followRepo,
	}
}

func (s *userServiceImpl) Register(ctx context.Context, regDTO *dto.RegisterDTO) error {
	username := strings.TrimSpace(regDTO.Username)
	if username == "" {
		return ErrParamInvalid
	}

	existing, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrUsernameTaken
	}

	passwordHash, err := security.HashPassword(regDTO.Password)
	if err != nil {
		return err
	}

	return s.userRepo.CreateUser(ctx, &model.User{
		Username:  username,
		Password:  passwordHash,
		CreatedAt: time.Now(),
	})
}

func (s *userServiceImpl) Login(ctx context.Context, credDTO *dto.CredentialDTO) (string, error) {
	if credDTO.Username == "" || credDTO.Password == "" {
		return "", ErrMissingCredentials
	}

	user, err := s.userRepo.GetUserByUsername(ctx, credDTO.Username)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrUserNotFound
	}

	if err = security.CheckPasswordHash(credDTO.Password, user.Password); err != nil {
		return "", ErrPasswordIncorrect
	}

	roles := []string{"USER"}
	if user.IsAdmin {
		roles = append(roles, RoleAdmin)
	}

	return security.GenerateToken(user.ID, user.Username, roles)
}

// Logout blacklists the token signature until the token would have
// expired on its own.
func (s *userServiceImpl) Logout(ctx context.Context, token string) error {
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return ErrParamInvalid
	}
	return redis.SetWithExpiration(ctx, consts.TokenBlacklistKey+signature, "1", security.TokenTTL())
}

func (s *userServiceImpl) GetProfile(ctx context.Context, username string, viewerID uint64) (*dto.ProfileDTO, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	postCount, err := s.postRepo.CountPosts(ctx, repository.PostFilter{AuthorID: &user.ID})
	if err != nil {
		return nil, err
	}

	following := false
	if viewerID != 0 && viewerID != user.ID {
		follow, err := s.followRepo.GetFollow(ctx, viewerID, user.ID)
		if err != nil {
			return nil, err
		}
		following = follow != nil
	}

	return &dto.ProfileDTO{
		ID:        user.ID,
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
		PostCount: postCount,
		Following: following,
	}, nil
}
