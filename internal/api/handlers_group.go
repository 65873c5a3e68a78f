package api

import "github.com/Ilia-Pringless/YaTube/internal/api/handler"

// HandlersGroup bundles every initialized handler instance.
type HandlersGroup struct {
	UserHandler   *handler.UserHandler
	FeedHandler   *handler.FeedHandler
	GroupHandler  *handler.GroupHandler
	PostHandler   *handler.PostHandler
	FollowHandler *handler.FollowHandler
	MediaHandler  *handler.MediaHandler
}
