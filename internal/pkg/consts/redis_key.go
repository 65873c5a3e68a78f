package consts

const (
	FeedPageKey       = "feed:page:"
	TokenBlacklistKey = "auth:blacklist:"
)
