package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"

	"github.com/Ilia-Pringless/YaTube/internal/pkg/response"
	"github.com/Ilia-Pringless/YaTube/internal/pkg/util"
	"github.com/Ilia-Pringless/YaTube/internal/service"
)

type FeedHandler struct {
	feedSvc service.FeedService
}

func NewFeedHandler(feedSvc service.FeedService) *FeedHandler {
	return &FeedHandler{feedSvc: feedSvc}
}

// Home serves the global feed through the page cache. The cached value
// is the already-serialized page, so it is passed through untouched.
func (s *FeedHandler) Home(c *gin.Context) {
	page := util.ParsePage(c.Query("page"))

	payload, cached, err := s.feedSvc.HomeFeedPage(c.Request.Context(), page)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("X-Cache", cacheHeader(cached))
	response.Success(c, json.RawMessage(payload))
}

func (s *FeedHandler) Following(c *gin.Context) {
	userID := c.GetUint64("user_id")
	page := util.ParsePage(c.Query("page"))

	feed, err := s.feedSvc.FollowingFeed(c.Request.Context(), userID, page)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, feed)
}

func (s *FeedHandler) ClearCache(c *gin.Context) {
	err := s.feedSvc.ClearHomeFeedCache(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func cacheHeader(cached bool) string {
	if cached {
		return "HIT"
	}
	return "MISS"
}
