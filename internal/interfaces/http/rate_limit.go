package http

import (
	"fmt"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"

	"github.com/jhoicas/easypalm-console/internal/application/dto"
	"github.com/jhoicas/easypalm-console/pkg/logger"
)

// limiterIdleTTL tiempo sin peticiones tras el cual se descarta el bucket de un cliente.
const limiterIdleTTL = 10 * time.Minute

// RateLimiter limita las peticiones de la ruta con un token bucket por IP de cliente
// (c.IP(); detrás de un proxy respeta fiber.Config.ProxyHeader).
// rps <= 0 desactiva el límite.
func RateLimiter(rps float64, burst int, log *logger.Logger) fiber.Handler {
	return KeyedRateLimiter(rps, burst, func(c *fiber.Ctx) string { return c.IP() }, log)
}

// KeyedRateLimiter igual que RateLimiter pero con la llave del bucket a elección.
func KeyedRateLimiter(rps float64, burst int, key func(*fiber.Ctx) string, log *logger.Logger) fiber.Handler {
	if rps <= 0 {
		return func(c *fiber.Ctx) error { return c.Next() }
	}
	if burst < 1 {
		burst = 1
	}
	if log == nil {
		log = logger.Nop()
	}
	buckets := newLimiterSet(rate.Limit(rps), burst, time.Now)

	return func(c *fiber.Ctx) error {
		k := key(c)
		if !buckets.allow(k) {
			log.Warn().
				Str("client_ip", c.IP()).
				Str("key", k).
				Str("path", c.Path()).
				Msg("límite de peticiones excedido")
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{
				Code:    "RATE_LIMITED",
				Message: fmt.Sprintf("demasiadas peticiones; límite %.1f por segundo", rps),
			})
		}
		return c.Next()
	}
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// limiterSet buckets por llave. Las entradas inactivas se barren como mucho una vez por TTL.
type limiterSet struct {
	mu        sync.Mutex
	limit     rate.Limit
	burst     int
	now       func() time.Time
	entries   map[string]*limiterEntry
	lastSweep time.Time
}

func newLimiterSet(limit rate.Limit, burst int, now func() time.Time) *limiterSet {
	return &limiterSet{
		limit:     limit,
		burst:     burst,
		now:       now,
		entries:   make(map[string]*limiterEntry),
		lastSweep: now(),
	}
}

func (s *limiterSet) allow(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if now.Sub(s.lastSweep) >= limiterIdleTTL {
		for k, e := range s.entries {
			if now.Sub(e.lastSeen) >= limiterIdleTTL {
				delete(s.entries, k)
			}
		}
		s.lastSweep = now
	}

	e, ok := s.entries[key]
	if !ok {
		e = &limiterEntry{limiter: rate.NewLimiter(s.limit, s.burst)}
		s.entries[key] = e
	}
	e.lastSeen = now
	return e.limiter.AllowN(now, 1)
}
