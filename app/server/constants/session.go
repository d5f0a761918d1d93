package constants

import "time"

const (
	CacheKeySession = "blog:session:%s"
)

const (
	SessionDuration = 7 * 24 * time.Hour
)
