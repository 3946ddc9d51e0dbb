package constants

import "time"

const (
	CacheKeyUserInfo  = "gear:user:info:%d"  // %d -> user id
	CacheKeyUserItems = "gear:user:items:%d" // %d -> user id
)

const (
	CacheExpireUserInfo  = 15 * time.Minute
	CacheExpireUserItems = 1 * time.Hour
)
