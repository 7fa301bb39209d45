package service

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// noticeTTL matches the short-lived transient the admin banner relies on:
// the message only needs to survive until the next admin page view.
const noticeTTL = 10 * time.Second

// NoticeStore relays one-time success/failure banners through Redis. One
// key per user; reading a notice deletes it. This is the only state the
// notifier ever writes.
type NoticeStore struct {
	rdb    *redis.Client
	logger *zap.Logger
}

func NewNoticeStore(rdb *redis.Client, logger *zap.Logger) *NoticeStore {
	return &NoticeStore{rdb: rdb, logger: logger}
}

func noticeKey(userID int64) string {
	return fmt.Sprintf("notice:alert:%d", userID)
}

// Set stores the banner for the user. Failures are logged and swallowed:
// losing a banner must never fail a pipeline.
func (s *NoticeStore) Set(ctx context.Context, userID int64, message string) {
	if userID == 0 {
		return
	}
	if err := s.rdb.Set(ctx, noticeKey(userID), message, noticeTTL).Err(); err != nil {
		s.logger.Warn("Failed to store admin notice",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
	}
}

// Pop returns and clears the user's pending notice. Empty string when none.
func (s *NoticeStore) Pop(ctx context.Context, userID int64) (string, error) {
	msg, err := s.rdb.GetDel(ctx, noticeKey(userID)).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return msg, nil
}
