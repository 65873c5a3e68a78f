package wire

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Ilia-Pringless/YaTube/internal/api"
	"github.com/Ilia-Pringless/YaTube/internal/api/config"
	"github.com/Ilia-Pringless/YaTube/internal/api/handler"
	"github.com/Ilia-Pringless/YaTube/internal/job"
	"github.com/Ilia-Pringless/YaTube/internal/pkg/consts"
	"github.com/Ilia-Pringless/YaTube/internal/pkg/cron"
	"github.com/Ilia-Pringless/YaTube/internal/pkg/pagecache"
	"github.com/Ilia-Pringless/YaTube/internal/pkg/redis"
	"github.com/Ilia-Pringless/YaTube/internal/repository"
	"github.com/Ilia-Pringless/YaTube/internal/service"
)

// ApplicationContainer holds every top-level component the app runs.
type ApplicationContainer struct {
	Router  *gin.Engine
	DB      *gorm.DB
	CronMgr *cron.Manager
}

func BuildApplication(db *gorm.DB, cfg *config.Config) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(db)
	groupRepo := repository.NewGroupRepo(db)
	postRepo := repository.NewPostRepo(db)
	commentRepo := repository.NewCommentRepo(db)
	followRepo := repository.NewFollowRepo(db)

	pageSize := cfg.Feed.PageSize
	if pageSize <= 0 {
		pageSize = consts.DefaultPageSize
	}
	cacheTTLSecs := cfg.Feed.CacheTTLSecs
	if cacheTTLSecs <= 0 {
		cacheTTLSecs = consts.DefaultFeedCacheTTL
	}
	feedCache := pagecache.New(redis.GetRdbClient(), consts.FeedPageKey)

	userService := service.NewUserService(userRepo, postRepo, followRepo)
	groupService := service.NewGroupService(groupRepo)
	postService := service.NewPostService(postRepo, groupRepo, commentRepo)
	commentService := service.NewCommentService(commentRepo, postRepo, userRepo)
	followService := service.NewFollowService(followRepo, userRepo)
	feedService := service.NewFeedService(
		postRepo, groupRepo, userRepo, followRepo,
		feedCache, pageSize, time.Duration(cacheTTLSecs)*time.Second,
	)

	handlers := &api.HandlersGroup{
		UserHandler:   handler.NewUserHandler(userService, feedService),
		FeedHandler:   handler.NewFeedHandler(feedService),
		GroupHandler:  handler.NewGroupHandler(groupService, feedService),
		PostHandler:   handler.NewPostHandler(postService, commentService),
		FollowHandler: handler.NewFollowHandler(followService),
		MediaHandler:  handler.NewMediaHandler(),
	}

	router := api.SetupRouter(handlers)

	feedWarmJob := job.NewFeedWarmJob(feedService)
	cronMgr := cron.NewCronManager(feedWarmJob)

	return &ApplicationContainer{
		Router:  router,
		DB:      db,
		CronMgr: cronMgr,
	}, nil
}
