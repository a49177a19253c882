package quota

import (
	"context"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisQuotaScript = `
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("EXPIRE", KEYS[1], ARGV[1])
end
return current
`

// redisKeyTTL debe superar con holgura la duración de un día: la clave de
// un día vencido expira sola y el contador nunca se barre a mano.
const redisKeyTTL = 48 * time.Hour

// RedisStore respalda el contador diario en claves de Redis con TTL.
type RedisStore struct {
	client evaler
	limit  int
	ttl    time.Duration
	prefix string
}

type evaler interface {
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd
}

// NewRedisStore crea un RedisStore sobre un cliente ya conectado.
func NewRedisStore(client *redis.Client, limit int) *RedisStore {
	if client == nil {
		return nil
	}
	if limit <= 0 {
		limit = DefaultDailyLimit
	}
	return &RedisStore{
		client: client,
		limit:  limit,
		ttl:    redisKeyTTL,
		prefix: "quota:",
	}
}

// CheckAndIncrement incrementa el contador de (userID, día UTC) con un script
// INCR+EXPIRE atómico. Ante un error de Redis la petición se permite (fail-open)
// y el error se devuelve para que el llamador lo registre.
func (s *RedisStore) CheckAndIncrement(ctx context.Context, userID string, now time.Time) (Result, error) {
	if s == nil || s.client == nil {
		return Result{Allowed: true}, nil
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return Result{}, nil
	}

	key := s.prefix + userID + ":" + dayOf(now)
	seconds := int(s.ttl.Seconds())

	count, err := s.client.Eval(ctx, redisQuotaScript, []string{key}, seconds).Int()
	if err != nil {
		return Result{Allowed: true}, err
	}
	return Result{Allowed: count <= s.limit, Count: count}, nil
}
