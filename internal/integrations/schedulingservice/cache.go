package schedulingservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const roomsKeyPrefix = "videolink:rooms:"

// RedisCache реализация Cache поверх Redis
type RedisCache struct {
	rdb *redis.Client
}

func NewRedisCache(rdb *redis.Client) *RedisCache {
	return &RedisCache{rdb: rdb}
}

// Get возвращает ErrCacheMiss, если ключа нет
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.rdb.Set(ctx, key, value, ttl).Err()
}

// CachedRoomsClient кэширует список комнат с видеосвязью по учреждению.
// Ошибки кэша не прерывают запрос: при недоступности Redis данные берутся из системы расписаний.
type CachedRoomsClient struct {
	next  RoomsProvider
	cache Cache
	ttl   time.Duration
	log   Logger
}

func NewCachedRoomsClient(next RoomsProvider, cache Cache, ttl time.Duration, log Logger) *CachedRoomsClient {
	return &CachedRoomsClient{next: next, cache: cache, ttl: ttl, log: log}
}

// GetVideoLinkRooms получает комнаты из кэша или из системы расписаний
func (c *CachedRoomsClient) GetVideoLinkRooms(ctx context.Context, agencyID string) ([]Location, error) {
	key := roomsKeyPrefix + agencyID

	// 1. Пробуем кэш
	raw, err := c.cache.Get(ctx, key)
	switch {
	case err == nil:
		var rooms []Location
		if err := json.Unmarshal(raw, &rooms); err == nil {
			return rooms, nil
		}
		c.log.Warn("GetVideoLinkRooms: corrupted cache entry agency_id=%s", agencyID)
	case errors.Is(err, ErrCacheMiss):
	default:
		c.log.Warn("GetVideoLinkRooms: cache unavailable agency_id=%s: %v", agencyID, err)
	}

	// 2. Запрашиваем систему расписаний
	rooms, err := c.next.GetVideoLinkRooms(ctx, agencyID)
	if err != nil {
		return nil, err
	}

	// 3. Сохраняем в кэш
	encoded, err := json.Marshal(rooms)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode rooms: %v", ErrInternal, err)
	}
	if err := c.cache.Set(ctx, key, encoded, c.ttl); err != nil {
		c.log.Warn("GetVideoLinkRooms: failed to cache rooms agency_id=%s: %v", agencyID, err)
	}

	return rooms, nil
}
