package service

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Ilia-Pringless/YaTube/internal/model"
	"github.com/Ilia-Pringless/YaTube/internal/pkg/database"
	"github.com/Ilia-Pringless/YaTube/internal/pkg/pagecache"
	"github.com/Ilia-Pringless/YaTube/internal/repository"
)

// testEnv wires every service against an in-memory database and an
// in-process Redis so the full stack below the handlers is exercised.
type testEnv struct {
	db         *gorm.DB
	mr         *miniredis.Miniredis
	userRepo   repository.UserRepo
	postRepo   repository.PostRepo
	followRepo repository.FollowRepo

	userSvc    UserService
	groupSvc   GroupService
	postSvc    PostService
	commentSvc CommentService
	followSvc  FollowService
	feedSvc    FeedService
}

func newTestEnv(t *testing.T) *testEnv {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	cache := pagecache.New(rdb, "feed:page:")

	userRepo := repository.NewUserRepo(db)
	groupRepo := repository.NewGroupRepo(db)
	postRepo := repository.NewPostRepo(db)
	commentRepo := repository.NewCommentRepo(db)
	followRepo := repository.NewFollowRepo(db)

	return &testEnv{
		db:         db,
		mr:         mr,
		userRepo:   userRepo,
		postRepo:   postRepo,
		followRepo: followRepo,
		userSvc:    NewUserService(userRepo, postRepo, followRepo),
		groupSvc:   NewGroupService(groupRepo),
		postSvc:    NewPostService(postRepo, groupRepo, commentRepo),
		commentSvc: NewCommentService(commentRepo, postRepo, userRepo),
		followSvc:  NewFollowService(followRepo, userRepo),
		feedSvc:    NewFeedService(postRepo, groupRepo, userRepo, followRepo, cache, 10, 20*time.Second),
	}
}

func (e *testEnv) createUser(t *testing.T, username string) *model.User {
	user := &model.User{Username: username, Password: "hash"}
	require.NoError(t, e.db.Create(user).Error)
	return user
}

func (e *testEnv) createGroup(t *testing.T, slug string) *model.Group {
	group := &model.Group{Title: slug, Slug: slug}
	require.NoError(t, e.db.Create(group).Error)
	return group
}

func (e *testEnv) createPost(t *testing.T, authorID uint64, text string, createdAt time.Time) *model.Post {
	post := &model.Post{AuthorID: authorID, Text: text, CreatedAt: createdAt}
	require.NoError(t, e.db.Create(post).Error)
	return post
}

func (e *testEnv) createGroupPost(t *testing.T, authorID, groupID uint64, text string, createdAt time.Time) *model.Post {
	post := &model.Post{AuthorID: authorID, GroupID: &groupID, Text: text, CreatedAt: createdAt}
	require.NoError(t, e.db.Create(post).Error)
	return post
}

func (e *testEnv) postCount(t *testing.T) int64 {
	var count int64
	require.NoError(t, e.db.Model(&model.Post{}).Count(&count).Error)
	return count
}
