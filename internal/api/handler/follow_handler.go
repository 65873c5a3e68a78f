package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Ilia-Pringless/YaTube/internal/pkg/response"
	"github.com/Ilia-Pringless/YaTube/internal/service"
)

type FollowHandler struct {
	followSvc service.FollowService
}

func NewFollowHandler(followSvc service.FollowService) *FollowHandler {
	return &FollowHandler{followSvc: followSvc}
}

func (s *FollowHandler) Follow(c *gin.Context) {
	userID := c.GetUint64("user_id")
	username := c.Param("username")

	err := s.followSvc.Follow(c.Request.Context(), userID, username)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *FollowHandler) Unfollow(c *gin.Context) {
	userID := c.GetUint64("user_id")
	username := c.Param("username")

	err := s.followSvc.Unfollow(c.Request.Context(), userID, username)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
