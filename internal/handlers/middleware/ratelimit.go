package middleware

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/rafabene/yamdb-backend/internal/domain/ports"
	"github.com/rafabene/yamdb-backend/internal/handlers/dto"
)

// Counter conta acessos numa janela fixa
type Counter interface {
	// Hit incrementa a chave e retorna o total e o tempo restante da janela
	Hit(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error)
}

// fixedWindow incrementa a chave e só define a expiração no primeiro acesso
var fixedWindow = redis.NewScript(`
	local count = redis.call('INCR', KEYS[1])
	if count == 1 then
		redis.call('PEXPIRE', KEYS[1], ARGV[1])
	end
	return {count, redis.call('PTTL', KEYS[1])}
`)

// RedisCounter implementa Counter sobre um script Lua no Redis
type RedisCounter struct {
	client *redis.Client
}

// NewRedisCounter retorna nil quando o cliente é nil (limite desabilitado)
func NewRedisCounter(client *redis.Client) Counter {
	if client == nil {
		return nil
	}
	return &RedisCounter{client: client}
}

func (r *RedisCounter) Hit(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	values, err := fixedWindow.Run(ctx, r.client, []string{key}, window.Milliseconds()).Int64Slice()
	if err != nil {
		return 0, 0, err
	}
	if len(values) != 2 {
		return 0, 0, fmt.Errorf("unexpected rate limit script result: %v", values)
	}
	return values[0], time.Duration(values[1]) * time.Millisecond, nil
}

// RateLimit limita requisições por IP e rota. Com counter nil não limita;
// falhas do contador são logadas e a requisição segue.
func RateLimit(counter Counter, limit int, window time.Duration, logger ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if counter == nil || limit <= 0 {
			c.Next()
			return
		}

		key := "ratelimit:" + c.FullPath() + ":" + c.ClientIP()
		count, remaining, err := counter.Hit(c.Request.Context(), key, window)
		if err != nil {
			logger.Warn("rate limit counter unavailable", "key", key, "error", err)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
		if count > int64(limit) {
			if remaining <= 0 {
				remaining = window
			}
			secs := int(math.Ceil(remaining.Seconds()))
			c.Header("Retry-After", strconv.Itoa(secs))
			dto.AbortWithProblem(c, dto.TooManyRequestsErrorResponseI18n(c, secs))
			return
		}

		c.Header("X-RateLimit-Remaining", strconv.FormatInt(int64(limit)-count, 10))
		c.Next()
	}
}
