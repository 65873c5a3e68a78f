package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Ilia-Pringless/YaTube/internal/api/dto"
	"github.com/Ilia-Pringless/YaTube/internal/pkg/response"
	"github.com/Ilia-Pringless/YaTube/internal/service"
)

type PostHandler struct {
	postSvc    service.PostService
	commentSvc service.CommentService
}

func NewPostHandler(postSvc service.PostService, commentSvc service.CommentService) *PostHandler {
	return &PostHandler{
		postSvc:    postSvc,
		commentSvc: commentSvc,
	}
}

func (s *PostHandler) CreatePost(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var base dto.PostBaseDTO
	err := c.ShouldBind(&base)
	if err != nil {
		response.Error(c, err)
		return
	}
	post, err := s.postSvc.CreatePost(c.Request.Context(), userID, &base)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

func (s *PostHandler) GetPost(c *gin.Context) {
	postID, err := s.parsePostID(c)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	detail, err := s.postSvc.GetPostDetail(c.Request.Context(), postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, detail)
}

// UpdatePost rejects non-authors with a redirect to the post they tried
// to edit rather than an error page.
func (s *PostHandler) UpdatePost(c *gin.Context) {
	userID := c.GetUint64("user_id")
	postID, err := s.parsePostID(c)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var base dto.PostBaseDTO
	if err = c.ShouldBind(&base); err != nil {
		response.Error(c, err)
		return
	}
	post, err := s.postSvc.UpdatePost(c.Request.Context(), userID, postID, &base)
	if errors.Is(err, service.ErrNotPostAuthor) {
		c.Redirect(http.StatusFound, "/api/posts/"+strconv.FormatUint(postID, 10))
		return
	}
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

func (s *PostHandler) DeletePost(c *gin.Context) {
	userID := c.GetUint64("user_id")
	postID, err := s.parsePostID(c)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	err = s.postSvc.DeletePost(c.Request.Context(), userID, postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *PostHandler) CreateComment(c *gin.Context) {
	userID := c.GetUint64("user_id")
	postID, err := s.parsePostID(c)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var base dto.CommentBaseDTO
	if err = c.ShouldBind(&base); err != nil {
		response.Error(c, err)
		return
	}
	comment, err := s.commentSvc.CreateComment(c.Request.Context(), userID, postID, &base)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, comment)
}

func (s *PostHandler) parsePostID(c *gin.Context) (uint64, error) {
	return strconv.ParseUint(c.Param("post_id"), 10, 64)
}
