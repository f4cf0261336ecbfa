package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestMemoryLimiter(t *testing.T) {
	l := NewMemoryLimiter()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }

	assert.True(t, l.Allow("k", 2, time.Minute))
	assert.True(t, l.Allow("k", 2, time.Minute))
	assert.False(t, l.Allow("k", 2, time.Minute))
	assert.True(t, l.Allow("other", 2, time.Minute))

	now = now.Add(61 * time.Second)
	assert.True(t, l.Allow("k", 2, time.Minute))
}

func TestMemoryLimiter_DropsExpiredBuckets(t *testing.T) {
	l := NewMemoryLimiter()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }

	for i := 0; i < 50; i++ {
		l.Allow(fmt.Sprintf("/login|10.0.0.%d", i), 10, time.Minute)
	}
	assert.Len(t, l.buckets, 50)

	now = now.Add(2 * time.Minute)
	assert.True(t, l.Allow("/login|10.0.1.1", 10, time.Minute))
	assert.Len(t, l.buckets, 1)

	// live windows survive a sweep
	now = now.Add(30 * time.Second)
	l.Allow("/login|10.0.1.2", 10, time.Minute)
	now = now.Add(bucketSweepEvery)
	l.Allow("/login|10.0.1.3", 10, time.Minute)
	assert.Len(t, l.buckets, 2)
}

func TestRateLimitMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/login", RateLimit(NewMemoryLimiter(), 1, time.Minute), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestRedisLimiter_NilClient(t *testing.T) {
	assert.Nil(t, NewRedisLimiter(nil))
	var l *RedisLimiter
	assert.True(t, l.Allow("k", 1, time.Second))
}
