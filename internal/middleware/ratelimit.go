package middleware

import (
	"fmt"
	"net/http"

	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	stdlibmw "github.com/ulule/limiter/v3/drivers/middleware/stdlib"
	memorystore "github.com/ulule/limiter/v3/drivers/store/memory"
	redisstore "github.com/ulule/limiter/v3/drivers/store/redis"

	"github.com/mecoding/todo-api/internal/request"
)

const defaultRateLimit = "20-S"

// RateLimit returns per-client-IP rate limiting middleware. With a Redis
// URL the limiter state is shared across instances; otherwise it falls back
// to an in-process memory store.
func RateLimit(rateStr, redisURL string) (func(http.Handler) http.Handler, error) {
	if rateStr == "" {
		rateStr = defaultRateLimit
	}

	rate, err := limiter.NewRateFromFormatted(rateStr)
	if err != nil {
		return nil, fmt.Errorf("invalid rate limit %q: %w", rateStr, err)
	}

	var store limiter.Store
	if redisURL != "" {
		opts, err := redis.ParseURL(redisURL)
		if err != nil {
			return nil, fmt.Errorf("invalid redis URL: %w", err)
		}
		store, err = redisstore.NewStore(redis.NewClient(opts))
		if err != nil {
			return nil, fmt.Errorf("failed to create redis rate limit store: %w", err)
		}
	} else {
		store = memorystore.NewStore()
	}

	instance := limiter.New(store, rate)
	keyGetter := func(r *http.Request) string {
		return request.ClientIP(r)
	}
	mw := stdlibmw.NewMiddleware(instance, stdlibmw.WithKeyGetter(keyGetter))
	return mw.Handler, nil
}
