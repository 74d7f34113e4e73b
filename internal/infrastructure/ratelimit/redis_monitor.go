package ratelimit

import (
	"context"
	"log"
	"time"

	"mecanica_gateway/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const (
	defaultLimit   = 20
	defaultWindow  = time.Minute
	keyPrefix      = "wa:sender_rate:"
	commandTimeout = 500 * time.Millisecond
)

// Fixed window counter. PEXPIRE is only set on the first hit so the window
// does not slide while the sender keeps writing.
var windowScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return current
`)

// RedisSenderMonitor counts inbound messages per sender phone in a fixed
// window. Any Redis failure reports "not over the limit".
type RedisSenderMonitor struct {
	client *redis.Client
	limit  int
	window time.Duration
}

var _ interfaces.ISenderRateMonitor = (*RedisSenderMonitor)(nil)

func NewRedisSenderMonitor(client *redis.Client, limit int, window time.Duration) *RedisSenderMonitor {
	if limit <= 0 {
		limit = defaultLimit
	}
	if window <= 0 {
		window = defaultWindow
	}
	return &RedisSenderMonitor{client: client, limit: limit, window: window}
}

func (m *RedisSenderMonitor) OverLimit(ctx context.Context, phone string) bool {
	if m == nil || m.client == nil || phone == "" {
		return false
	}
	ctx, cancel := context.WithTimeout(ctx, commandTimeout)
	defer cancel()

	count, err := windowScript.Run(ctx, m.client, []string{keyPrefix + phone}, m.window.Milliseconds()).Int64()
	if err != nil {
		log.Printf("[ratelimit][redis] count failed err=%v", err)
		return false
	}
	return count > int64(m.limit)
}
