package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	UserKeyPrefix  = "user:%d"
	PinKeyPrefix   = "pin:%d"
	BoardKeyPrefix = "board:%d"
	PinsListKey    = "pins:recent"
)

const (
	UserTTL     = 5 * time.Minute
	PinTTL      = 30 * time.Minute
	PinsListTTL = 1 * time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func PinKey(pinID uint) string {
	return fmt.Sprintf(PinKeyPrefix, pinID)
}

func BoardKey(boardID uint) string {
	return fmt.Sprintf(BoardKeyPrefix, boardID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

func InvalidatePin(ctx context.Context, pinID uint) {
	Invalidate(ctx, PinKey(pinID))
}

func InvalidatePinsList(ctx context.Context) {
	Invalidate(ctx, PinsListKey)
}
