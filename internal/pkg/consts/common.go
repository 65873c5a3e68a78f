package consts

const (
	MimePrefixImage = "image"
)

const (
	DefaultPageSize     = 10
	DefaultFeedCacheTTL = 20
)
