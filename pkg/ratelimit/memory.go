package ratelimit

import (
	"context"
	"sync"
	"time"
)

// MemoryLimiter ограничитель с фиксированным окном в памяти процесса
// Используется, когда Redis не настроен
type MemoryLimiter struct {
	mu      sync.Mutex
	limit   int
	window  time.Duration
	now     func() time.Time
	buckets map[string]*bucket
}

type bucket struct {
	count   int
	resetAt time.Time
}

// NewMemoryLimiter создает ограничитель
func NewMemoryLimiter(limit int, window time.Duration) *MemoryLimiter {
	limit, window = normalize(limit, window)
	return &MemoryLimiter{
		limit:   limit,
		window:  window,
		now:     time.Now,
		buckets: make(map[string]*bucket),
	}
}

// Allow увеличивает счетчик ключа и сообщает, укладывается ли запрос в лимит
func (l *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	b, ok := l.buckets[key]
	if !ok || !now.Before(b.resetAt) {
		b = &bucket{resetAt: now.Add(l.window)}
		l.buckets[key] = b
		l.evictExpired(now)
	}

	b.count++
	return b.count <= l.limit, nil
}

func (l *MemoryLimiter) evictExpired(now time.Time) {
	if len(l.buckets) < 1024 {
		return
	}
	for k, b := range l.buckets {
		if !now.Before(b.resetAt) {
			delete(l.buckets, k)
		}
	}
}
