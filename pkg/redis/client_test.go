package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitInvalidURL(t *testing.T) {
	err := Init("://invalid-url", "")
	assert.Error(t, err)
}

func TestBasicOpsAgainstMiniredis(t *testing.T) {
	mr := miniredis.RunT(t)
	SetClient(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))
	assert.NotNil(t, GetClient())
	ctx := context.Background()

	require.NoError(t, Set(ctx, "k", "v", time.Minute))
	got, err := Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", got)

	require.NoError(t, Del(ctx, "k"))
	_, err = Get(ctx, "k")
	assert.Error(t, err)
}

func TestJSONRoundTripAndCacheMiss(t *testing.T) {
	mr := miniredis.RunT(t)
	SetClient(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))
	ctx := context.Background()

	type entry struct {
		Name  string  `json:"name"`
		Score float64 `json:"score"`
	}

	in := []entry{{Name: "Alpha", Score: 70}, {Name: "Beta", Score: 85}}
	require.NoError(t, SetJSON(ctx, "leaderboard:test", in, time.Minute))

	var out []entry
	require.NoError(t, GetJSON(ctx, "leaderboard:test", &out))
	assert.Equal(t, in, out)

	err := GetJSON(ctx, "leaderboard:missing", &out)
	assert.ErrorIs(t, err, ErrCacheMiss)
}
