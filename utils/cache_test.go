package utils

import (
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheDisabledWithoutClient(t *testing.T) {
	Rdb = nil

	_, ok := CacheGet("events:detail:1")
	assert.False(t, ok)

	CacheSetList("events:list:abc", []byte("{}"))
	CacheSetDetail("events:detail:1", []byte("{}"))
	InvalidateEventCache(1)
}

func TestCacheGetHit(t *testing.T) {
	client, mock := redismock.NewClientMock()
	Rdb = client
	defer func() { Rdb = nil }()

	mock.ExpectGet("events:detail:7").SetVal(`{"status":"success"}`)

	val, ok := CacheGet("events:detail:7")
	assert.True(t, ok)
	assert.Equal(t, `{"status":"success"}`, string(val))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCacheSetListTracksKey(t *testing.T) {
	client, mock := redismock.NewClientMock()
	Rdb = client
	defer func() { Rdb = nil }()

	key := EventListCacheKey("search", "", "", "", 15, 1)
	payload := []byte(`{"status":"success"}`)

	mock.ExpectSet(key, payload, 10*time.Minute).SetVal("OK")
	mock.ExpectSAdd("events:list:keys", key).SetVal(1)

	CacheSetList(key, payload)
	require.NoError(t, mock.ExpectationsWereMet())
}

// Invalidation drops the event's detail entry plus every tracked listing
// page, and nothing beyond them.
func TestInvalidateEventCacheScoped(t *testing.T) {
	client, mock := redismock.NewClientMock()
	Rdb = client
	defer func() { Rdb = nil }()

	listKeys := []string{"events:list:aaa", "events:list:bbb"}

	mock.ExpectDel("events:detail:7").SetVal(1)
	mock.ExpectSMembers("events:list:keys").SetVal(listKeys)
	mock.ExpectDel(listKeys...).SetVal(2)
	mock.ExpectDel("events:list:keys").SetVal(1)

	InvalidateEventCache(7)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInvalidateEventCacheNoListEntries(t *testing.T) {
	client, mock := redismock.NewClientMock()
	Rdb = client
	defer func() { Rdb = nil }()

	mock.ExpectDel("events:detail:3").SetVal(1)
	mock.ExpectSMembers("events:list:keys").SetVal([]string{})
	mock.ExpectDel("events:list:keys").SetVal(0)

	InvalidateEventCache(3)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventListCacheKeyDistinctPerFilter(t *testing.T) {
	a := EventListCacheKey("rock", "", "", "", 15, 1)
	b := EventListCacheKey("rock", "", "", "", 15, 2)
	c := EventListCacheKey("jazz", "", "", "", 15, 1)

	assert.NotEqual(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Contains(t, a, "events:list:")
}
