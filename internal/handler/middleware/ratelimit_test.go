//go:build unit

package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/Arielcito/rcfapp-sub002/internal/handler/middleware"
	"github.com/Arielcito/rcfapp-sub002/internal/pkg/config"
	"github.com/Arielcito/rcfapp-sub002/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingScripter answers the limiter script with a per-key counter.
type countingScripter struct {
	counts map[string]int64
	err    error
}

func newCountingScripter() *countingScripter {
	return &countingScripter{counts: map[string]int64{}}
}

func (s *countingScripter) run(keys []string) *redis.Cmd {
	if s.err != nil {
		return redis.NewCmdResult(nil, s.err)
	}
	s.counts[keys[0]]++
	return redis.NewCmdResult(s.counts[keys[0]], nil)
}

func (s *countingScripter) Eval(_ context.Context, _ string, keys []string, _ ...any) *redis.Cmd {
	return s.run(keys)
}

func (s *countingScripter) EvalSha(_ context.Context, _ string, keys []string, _ ...any) *redis.Cmd {
	return s.run(keys)
}

func (s *countingScripter) EvalRO(_ context.Context, _ string, keys []string, _ ...any) *redis.Cmd {
	return s.run(keys)
}

func (s *countingScripter) EvalShaRO(_ context.Context, _ string, keys []string, _ ...any) *redis.Cmd {
	return s.run(keys)
}

func (s *countingScripter) ScriptExists(_ context.Context, hashes ...string) *redis.BoolSliceCmd {
	return redis.NewBoolSliceResult(make([]bool, len(hashes)), nil)
}

func (s *countingScripter) ScriptLoad(_ context.Context, _ string) *redis.StringCmd {
	return redis.NewStringResult("", nil)
}

func newLimitedRouter(rl *middleware.RateLimiter, userID uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/reservations", func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	}, rl.Limit(), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})
	return r
}

func TestRateLimiter(t *testing.T) {
	cfg := config.RedisConfig{ReserveLimit: 2, ReserveWindow: 30 * time.Second, FailOpen: true}

	t.Run("上限までは通し超えたら429", func(t *testing.T) {
		userID := uuid.New()
		r := newLimitedRouter(middleware.NewRateLimiter(newCountingScripter(), cfg), userID)

		for range 2 {
			rec := httptest.PerformRequest(t, r, http.MethodPost, "/reservations", nil, "")
			require.Equal(t, http.StatusCreated, rec.Code)
		}
		rec := httptest.PerformRequest(t, r, http.MethodPost, "/reservations", nil, "")

		httptest.AssertErrorResponse(t, rec, http.StatusTooManyRequests, "Rate limit exceeded")
		assert.Equal(t, "30", rec.Header().Get("Retry-After"))
	})

	t.Run("利用者ごとに数える", func(t *testing.T) {
		scripter := newCountingScripter()
		limiter := middleware.NewRateLimiter(scripter, cfg)

		for range 2 {
			httptest.PerformRequest(t, newLimitedRouter(limiter, uuid.New()), http.MethodPost, "/reservations", nil, "")
		}

		assert.Len(t, scripter.counts, 2)
		for _, n := range scripter.counts {
			assert.Equal(t, int64(1), n)
		}
	})

	t.Run("クライアント無しなら無効", func(t *testing.T) {
		r := newLimitedRouter(middleware.NewRateLimiter(nil, cfg), uuid.New())

		for range 5 {
			rec := httptest.PerformRequest(t, r, http.MethodPost, "/reservations", nil, "")
			assert.Equal(t, http.StatusCreated, rec.Code)
		}
	})

	t.Run("nilのリミッターは素通し", func(t *testing.T) {
		var rl *middleware.RateLimiter
		rec := httptest.PerformRequest(t, newLimitedRouter(rl, uuid.New()), http.MethodPost, "/reservations", nil, "")
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("Redis障害時はFailOpenに従う", func(t *testing.T) {
		broken := newCountingScripter()
		broken.err = errors.New("connection refused")

		open := httptest.PerformRequest(t, newLimitedRouter(middleware.NewRateLimiter(broken, cfg), uuid.New()),
			http.MethodPost, "/reservations", nil, "")
		assert.Equal(t, http.StatusCreated, open.Code)

		closedCfg := cfg
		closedCfg.FailOpen = false
		closed := httptest.PerformRequest(t, newLimitedRouter(middleware.NewRateLimiter(broken, closedCfg), uuid.New()),
			http.MethodPost, "/reservations", nil, "")
		httptest.AssertErrorResponse(t, closed, http.StatusServiceUnavailable, "Rate limiter unavailable")
	})
}
