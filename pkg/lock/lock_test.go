package lock_test

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/journal/pkg/lock"
)

func TestNop(t *testing.T) {
	t.Parallel()

	release, err := lock.Nop{}.Obtain(context.Background(), "client:ivan")
	require.NoError(t, err)
	require.NotNil(t, release)

	release()
}

func TestLocker_UnreachableRedis(t *testing.T) {
	t.Parallel()

	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer rdb.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	release, err := lock.New(rdb, time.Second).Obtain(ctx, "vehicle:aa1234bb")
	require.Error(t, err)
	require.NotNil(t, release)

	release()
}
