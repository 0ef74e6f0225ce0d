package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	UserKeyPrefix      = "user:%d"
	TuitKeyPrefix      = "tuit:%d"
	UserTuitsKeyPrefix = "user:%d:tuits"
)

const (
	UserTTL      = 5 * time.Minute
	TuitTTL      = 2 * time.Minute
	UserTuitsTTL = 1 * time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func TuitKey(tuitID uint) string {
	return fmt.Sprintf(TuitKeyPrefix, tuitID)
}

func UserTuitsKey(userID uint) string {
	return fmt.Sprintf(UserTuitsKeyPrefix, userID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
	Invalidate(ctx, UserTuitsKey(userID))
}

func InvalidateTuit(ctx context.Context, tuitID uint) {
	Invalidate(ctx, TuitKey(tuitID))
}
