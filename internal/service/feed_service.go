package service

import (
	"context"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/jinzhu/copier"

	"github.com/Ilia-Pringless/YaTube/internal/api/dto"
	"github.com/Ilia-Pringless/YaTube/internal/pkg/pagecache"
	"github.com/Ilia-Pringless/YaTube/internal/pkg/util"
	"github.com/Ilia-Pringless/YaTube/internal/repository"
)

// FeedService builds ordered, paginated post listings for the four feed
// scopes. All reads are pure; only the home feed goes through the page
// cache, and nothing here invalidates it on writes.
type FeedService interface {
	HomeFeed(ctx context.Context, page int) (*dto.FeedPageDTO, error)
	HomeFeedPage(ctx context.Context, page int) ([]byte, bool, error)
	ClearHomeFeedCache(ctx context.Context) error
	GroupFeed(ctx context.Context, slug string, page int) (*dto.GroupFeedDTO, error)
	AuthorFeed(ctx context.Context, username string, page int) (*dto.AuthorFeedDTO, error)
	FollowingFeed(ctx context.Context, userID uint64, page int) (*dto.FeedPageDTO, error)
}

type feedServiceImpl struct {
	postRepo   repository.PostRepo
	groupRepo  repository.GroupRepo
	userRepo   repository.UserRepo
	followRepo repository.FollowRepo
	cache      *pagecache.Cache
	pageSize   int
	cacheTTL   time.Duration
}

func NewFeedService(
	postRepo repository.PostRepo,
	groupRepo repository.GroupRepo,
	userRepo repository.UserRepo,
	followRepo repository.FollowRepo,
	cache *pagecache.Cache,
	pageSize int,
	cacheTTL time.Duration,
) FeedService {
	return &feedServiceImpl{
		postRepo:   postRepo,
		groupRepo:  groupRepo,
		userRepo:   userRepo,
		followRepo: followRepo,
		cache:      cache,
		pageSize:   pageSize,
		cacheTTL:   cacheTTL,
	}
}

func (s *feedServiceImpl) buildPage(ctx context.Context, filter repository.PostFilter, page int) (*dto.FeedPageDTO, error) {
	total, err := s.postRepo.CountPosts(ctx, filter)
	if err != nil {
		return nil, err
	}

	pg := util.Paginate(total, s.pageSize, page)

	posts, err := s.postRepo.ListPosts(ctx, filter, pg.Size, pg.Offset)
	if err != nil {
		return nil, err
	}

	items, err := batchToPostDTO(posts)
	if err != nil {
		return nil, err
	}

	return &dto.FeedPageDTO{
		Items:      items,
		Page:       pg.Number,
		PageCount:  pg.PageCount,
		TotalCount: total,
	}, nil
}

func (s *feedServiceImpl) HomeFeed(ctx context.Context, page int) (*dto.FeedPageDTO, error) {
	return s.buildPage(ctx, repository.PostFilter{}, page)
}

// HomeFeedPage returns the serialized home feed page, served from the page
// cache when a fresh entry exists. The snapshot may lag behind deletes until
// the entry expires or the cache is cleared.
func (s *feedServiceImpl) HomeFeedPage(ctx context.Context, page int) ([]byte, bool, error) {
	return s.cache.GetOrRender(ctx, strconv.Itoa(page), s.cacheTTL, func() ([]byte, error) {
		feed, err := s.HomeFeed(ctx, page)
		if err != nil {
			return nil, err
		}
		return json.Marshal(feed)
	})
}

func (s *feedServiceImpl) ClearHomeFeedCache(ctx context.Context) error {
	return s.cache.Clear(ctx)
}

func (s *feedServiceImpl) GroupFeed(ctx context.Context, slug string, page int) (*dto.GroupFeedDTO, error) {
	group, err := s.groupRepo.GetGroupBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, ErrGroupNotFound
	}

	feed, err := s.buildPage(ctx, repository.PostFilter{GroupID: &group.ID}, page)
	if err != nil {
		return nil, err
	}

	groupDTO := &dto.GroupDTO{}
	if err = copier.Copy(groupDTO, group); err != nil {
		return nil, err
	}

	return &dto.GroupFeedDTO{
		Group:       groupDTO,
		FeedPageDTO: *feed,
	}, nil
}

func (s *feedServiceImpl) AuthorFeed(ctx context.Context, username string, page int) (*dto.AuthorFeedDTO, error) {
	author, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, ErrUserNotFound
	}

	feed, err := s.buildPage(ctx, repository.PostFilter{AuthorID: &author.ID}, page)
	if err != nil {
		return nil, err
	}

	return &dto.AuthorFeedDTO{
		Author:      &dto.AuthorDTO{ID: author.ID, Username: author.Username},
		FeedPageDTO: *feed,
	}, nil
}

// FollowingFeed lists posts by the authors the user currently follows.
// Following nobody yields an empty first page, not an error.
func (s *feedServiceImpl) FollowingFeed(ctx context.Context, userID uint64, page int) (*dto.FeedPageDTO, error) {
	authorIDs, err := s.followRepo.GetFollowedAuthorIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(authorIDs) == 0 {
		return &dto.FeedPageDTO{
			Items:      []*dto.PostDTO{},
			Page:       1,
			PageCount:  1,
			TotalCount: 0,
		}, nil
	}

	return s.buildPage(ctx, repository.PostFilter{AuthorIDs: authorIDs}, page)
}
