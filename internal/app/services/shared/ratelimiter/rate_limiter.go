package ratelimiter

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/r-weda/my-afya-link/internal/app/contracts"
)

// DispatchLimiter enforces a fixed-window quota on outbound SMS dispatches,
// keyed per destination number. The window counter lives in Redis with a TTL
// equal to the window duration, so concurrent server instances share it.
type DispatchLimiter struct {
	redis contracts.RedisRepository
	log   *zap.Logger
}

func NewDispatchLimiter(redis contracts.RedisRepository, log *zap.Logger) *DispatchLimiter {
	return &DispatchLimiter{redis: redis, log: log}
}

type ApplyDispatchLimiterInput struct {
	// Destination is the phone number being messaged.
	Destination string
	// WindowDurationSec defines the fixed window length in seconds.
	WindowDurationSec int
	// MaxQuota is the max number of dispatches allowed within the window.
	// Zero or negative disables limiting.
	MaxQuota int
	// NowUTC is optional; if zero, time.Now().UTC() is used (useful for tests).
	NowUTC time.Time
}

type ApplyDispatchLimiterOutput struct {
	Allowed        bool
	RetryAfterSecs int
}

func (l *DispatchLimiter) ApplyDispatchLimiter(ctx context.Context, in *ApplyDispatchLimiterInput) (*ApplyDispatchLimiterOutput, error) {
	if in == nil {
		return &ApplyDispatchLimiterOutput{Allowed: false}, fmt.Errorf("nil input")
	}

	destination := strings.TrimSpace(in.Destination)
	windowSec := in.WindowDurationSec
	if windowSec <= 0 {
		windowSec = 60
	}
	if in.MaxQuota <= 0 {
		return &ApplyDispatchLimiterOutput{Allowed: true}, nil
	}
	if destination == "" {
		return &ApplyDispatchLimiterOutput{Allowed: false, RetryAfterSecs: windowSec}, nil
	}

	now := in.NowUTC
	if now.IsZero() {
		now = time.Now().UTC()
	}

	windowID := now.Unix() / int64(windowSec)
	key := fmt.Sprintf("SMS_DISPATCH:%s:%d", destination, windowID)

	ttl := time.Duration(windowSec)*time.Second + time.Second
	newCount, err := l.redis.IncrementWithTTL(ctx, key, ttl)
	if err != nil {
		l.log.Error("DispatchLimiter.ApplyDispatchLimiter increment failed",
			zap.String("key", key),
			zap.Error(err))
		return &ApplyDispatchLimiterOutput{Allowed: false}, err
	}

	nextWindowStart := (windowID + 1) * int64(windowSec)
	retryAfter := int(nextWindowStart-now.Unix()) + 1

	if newCount > in.MaxQuota {
		return &ApplyDispatchLimiterOutput{Allowed: false, RetryAfterSecs: retryAfter}, nil
	}

	return &ApplyDispatchLimiterOutput{Allowed: true}, nil
}
