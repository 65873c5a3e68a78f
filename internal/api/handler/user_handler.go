package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Ilia-Pringless/YaTube/internal/api/dto"
	"github.com/Ilia-Pringless/YaTube/internal/pkg/response"
	"github.com/Ilia-Pringless/YaTube/internal/pkg/util"
	"github.com/Ilia-Pringless/YaTube/internal/service"
)

type UserHandler struct {
	userSvc service.UserService
	feedSvc service.FeedService
}

func NewUserHandler(userSvc service.UserService, feedSvc service.FeedService) *UserHandler {
	return &UserHandler{
		userSvc: userSvc,
		feedSvc: feedSvc,
	}
}

func (s *UserHandler) Register(c *gin.Context) {
	var registerDTO dto.RegisterDTO
	err := c.ShouldBind(&registerDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&registerDTO); err != nil {
		response.Error(c, err)
		return
	}
	err = s.userSvc.Register(c.Request.Context(), &registerDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *UserHandler) Login(c *gin.Context) {
	var loginDTO dto.CredentialDTO
	err := c.ShouldBind(&loginDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	token, err := s.userSvc.Login(c.Request.Context(), &loginDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.TokenDTO{Token: token})
}

func (s *UserHandler) Logout(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	token := strings.TrimPrefix(authHeader, "Bearer ")
	err := s.userSvc.Logout(c.Request.Context(), token)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// GetProfile returns the author card together with one page of their
// posts. The viewer id comes from the optional auth middleware and
// drives the following flag.
func (s *UserHandler) GetProfile(c *gin.Context) {
	username := c.Param("username")
	viewerID := c.GetUint64("user_id")
	page := util.ParsePage(c.Query("page"))

	profile, err := s.userSvc.GetProfile(c.Request.Context(), username, viewerID)
	if err != nil {
		response.Error(c, err)
		return
	}
	feed, err := s.feedSvc.AuthorFeed(c.Request.Context(), username, page)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{
		"profile": profile,
		"feed":    feed,
	})
}
