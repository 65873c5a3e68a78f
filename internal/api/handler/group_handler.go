package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Ilia-Pringless/YaTube/internal/api/dto"
	"github.com/Ilia-Pringless/YaTube/internal/pkg/response"
	"github.com/Ilia-Pringless/YaTube/internal/pkg/util"
	"github.com/Ilia-Pringless/YaTube/internal/service"
)

type GroupHandler struct {
	groupSvc service.GroupService
	feedSvc  service.FeedService
}

func NewGroupHandler(groupSvc service.GroupService, feedSvc service.FeedService) *GroupHandler {
	return &GroupHandler{
		groupSvc: groupSvc,
		feedSvc:  feedSvc,
	}
}

func (s *GroupHandler) ListGroups(c *gin.Context) {
	groups, err := s.groupSvc.ListGroups(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, groups)
}

func (s *GroupHandler) CreateGroup(c *gin.Context) {
	var base dto.GroupBaseDTO
	err := c.ShouldBind(&base)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&base); err != nil {
		response.Error(c, err)
		return
	}
	group, err := s.groupSvc.CreateGroup(c.Request.Context(), &base)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, group)
}

func (s *GroupHandler) DeleteGroup(c *gin.Context) {
	slug := c.Param("slug")
	err := s.groupSvc.DeleteGroup(c.Request.Context(), slug)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// GroupFeed returns the group card plus one page of its posts.
func (s *GroupHandler) GroupFeed(c *gin.Context) {
	slug := c.Param("slug")
	page := util.ParsePage(c.Query("page"))

	feed, err := s.feedSvc.GroupFeed(c.Request.Context(), slug, page)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, feed)
}
