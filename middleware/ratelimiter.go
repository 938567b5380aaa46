package middleware

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	ginlimiter "github.com/ulule/limiter/v3/drivers/middleware/gin"
	memory "github.com/ulule/limiter/v3/drivers/store/memory"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"
)

const DefaultRequestsPerMinute = 100

// RateLimiter caps requests per client IP over a one-minute window. Counters
// live in Redis when rdb is set so every instance shares them; otherwise each
// process keeps its own.
func RateLimiter(perMinute int64, rdb *redis.Client) gin.HandlerFunc {
	if perMinute <= 0 {
		perMinute = DefaultRequestsPerMinute
	}
	rate := limiter.Rate{Period: time.Minute, Limit: perMinute}

	instance := limiter.New(limiterStore(rdb), rate)

	return ginlimiter.NewMiddleware(instance,
		ginlimiter.WithKeyGetter(func(c *gin.Context) string {
			return GetIPFromContext(c)
		}),
		ginlimiter.WithLimitReachedHandler(func(c *gin.Context) {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests, please try again shortly"})
		}),
	)
}

func limiterStore(rdb *redis.Client) limiter.Store {
	if rdb != nil {
		store, err := sredis.NewStoreWithOptions(rdb, limiter.StoreOptions{Prefix: "seva:ratelimit"})
		if err == nil {
			return store
		}
		log.Printf("⚠️ Redis rate limit store unavailable, using memory: %v", err)
	}
	return memory.NewStore()
}
