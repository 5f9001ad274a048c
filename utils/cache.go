package utils

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// Rdb is the shared cache client. Nil when REDIS_ADDR is unset, in which
// case every cache operation is a no-op.
var Rdb *redis.Client

var cacheCtx = context.Background()

const (
	eventListKeySet = "events:list:keys"
	cacheTTL        = 10 * time.Minute
)

func ConnectCache() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		log.Println("REDIS_ADDR not set, event cache disabled")
		return
	}
	Rdb = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})
}

// EventListCacheKey hashes the filter set so each distinct listing query
// gets its own cache entry.
func EventListCacheKey(parts ...any) string {
	sum := md5.Sum([]byte(fmt.Sprint(parts...)))
	return "events:list:" + hex.EncodeToString(sum[:])
}

func EventDetailCacheKey(eventId uint) string {
	return fmt.Sprintf("events:detail:%d", eventId)
}

func CacheGet(key string) ([]byte, bool) {
	if Rdb == nil {
		return nil, false
	}
	val, err := Rdb.Get(cacheCtx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return val, true
}

// CacheSetList stores a listing page and tracks its key so event mutations
// can invalidate exactly the listing entries, nothing else.
func CacheSetList(key string, value []byte) {
	if Rdb == nil {
		return
	}
	Rdb.Set(cacheCtx, key, value, cacheTTL)
	Rdb.SAdd(cacheCtx, eventListKeySet, key)
}

func CacheSetDetail(key string, value []byte) {
	if Rdb == nil {
		return
	}
	Rdb.Set(cacheCtx, key, value, cacheTTL)
}

// InvalidateEventCache drops the affected event's detail entry and the
// tracked listing pages. Scoped by key: no global flush.
func InvalidateEventCache(eventId uint) {
	if Rdb == nil {
		return
	}
	Rdb.Del(cacheCtx, EventDetailCacheKey(eventId))

	keys, err := Rdb.SMembers(cacheCtx, eventListKeySet).Result()
	if err != nil {
		log.Printf("cache: failed to read list key set: %v", err)
		return
	}
	if len(keys) > 0 {
		Rdb.Del(cacheCtx, keys...)
	}
	Rdb.Del(cacheCtx, eventListKeySet)
}
