package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ilia-Pringless/YaTube/internal/api/middleware"
	"github.com/Ilia-Pringless/YaTube/internal/pkg/logger"
	"github.com/Ilia-Pringless/YaTube/internal/service"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		userGroup := apiGroup.Group("/user")
		{
			userGroup.POST("/register", group.UserHandler.Register)
			userGroup.POST("/login", group.UserHandler.Login)

			authGroup := userGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("/logout", group.UserHandler.Logout)
			}
		}

		feedGroup := apiGroup.Group("/feed")
		{
			feedGroup.GET("", group.FeedHandler.Home)

			authGroup := feedGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.GET("/follow", group.FeedHandler.Following)
			}

			adminGroup := authGroup.Group("")
			adminGroup.Use(middleware.CheckRoles(service.RoleAdmin))
			{
				adminGroup.POST("/cache/clear", group.FeedHandler.ClearCache)
			}
		}

		groupGroup := apiGroup.Group("/groups")
		{
			groupGroup.GET("", group.GroupHandler.ListGroups)
			groupGroup.GET("/:slug", group.GroupHandler.GroupFeed)

			adminGroup := groupGroup.Group("")
			adminGroup.Use(middleware.AuthMiddleware(), middleware.CheckRoles(service.RoleAdmin))
			{
				adminGroup.POST("", group.GroupHandler.CreateGroup)
				adminGroup.DELETE("/:slug", group.GroupHandler.DeleteGroup)
			}
		}

		profileGroup := apiGroup.Group("/profiles")
		{
			authOptGroup := profileGroup.Group("")
			authOptGroup.Use(middleware.AuthOptionalMiddleware())
			{
				authOptGroup.GET("/:username", group.UserHandler.GetProfile)
			}

			authGroup := profileGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("/:username/follow", group.FollowHandler.Follow)
				authGroup.DELETE("/:username/follow", group.FollowHandler.Unfollow)
			}
		}

		postGroup := apiGroup.Group("/posts")
		{
			postGroup.GET("/:post_id", group.PostHandler.GetPost)

			authGroup := postGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("", group.PostHandler.CreatePost)
				authGroup.PUT("/:post_id", group.PostHandler.UpdatePost)
				authGroup.DELETE("/:post_id", group.PostHandler.DeletePost)
				authGroup.POST("/:post_id/comments", group.PostHandler.CreateComment)
			}
		}

		mediaGroup := apiGroup.Group("/media")
		{
			mediaGroup.Use(middleware.AuthMiddleware())
			mediaGroup.POST("/upload", group.MediaHandler.Upload)
		}
	}

	return r
}
