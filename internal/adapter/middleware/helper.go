package middleware

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

var nowUTC = func() time.Time { return time.Now().UTC() }

// windowStart aligns t to the beginning of its fixed window.
func windowStart(t time.Time, window time.Duration) time.Time { return t.Truncate(window) }

func buildKey(method, path, client string, start time.Time) string {
	return "ratelimit:" + strings.ToLower(method) + ":" + path + ":" + client + ":" + strconv.FormatInt(start.Unix(), 10)
}

// ---- Redis helpers ----

// hit counts one request against key and returns the new count. The key
// expires one window after its last hit, which is never before the window
// it belongs to has ended.
func hit(ctx context.Context, rdb *redis.Client, key string, window time.Duration) (int64, error) {
	pipe := rdb.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return incr.Val(), nil
}
