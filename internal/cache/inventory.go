package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	userKeyPrefix      = "user:%d"
	likeCountKeyPrefix = "post:%d:likes"
)

const (
	// UserTTL bounds how long a cached user row may be served.
	UserTTL = 5 * time.Minute
	// LikeCountTTL bounds how long a cached like count may be served.
	LikeCountTTL = 30 * time.Second
)

// UserKey returns the cache key for a user row.
func UserKey(userID uint) string {
	return fmt.Sprintf(userKeyPrefix, userID)
}

// LikeCountKey returns the cache key for a post's like count.
func LikeCountKey(postID uint) string {
	return fmt.Sprintf(likeCountKeyPrefix, postID)
}

// Invalidate removes a key, best-effort.
func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

// InvalidateLikeCount drops the cached like count for a post.
func InvalidateLikeCount(ctx context.Context, postID uint) {
	Invalidate(ctx, LikeCountKey(postID))
}
