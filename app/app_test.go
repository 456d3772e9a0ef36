package app

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/jekabolt/academy-manager/config"
	"github.com/jekabolt/academy-manager/internal/store"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartFailureStopsApp(t *testing.T) {
	a := New(&config.Config{DB: store.Config{DSN: "not a dsn"}})

	err := a.Start(context.Background())
	require.Error(t, err)

	select {
	case <-a.Done():
	default:
		t.Fatal("app not stopped after failed start")
	}
}

func TestStopReleasesPartialStart(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	require.NoError(t, rdb.Ping(context.Background()).Err())

	a := New(&config.Config{})
	a.rdb = rdb

	a.Stop(context.Background())
	a.Stop(context.Background())

	assert.ErrorIs(t, rdb.Ping(context.Background()).Err(), redis.ErrClosed)
	_, open := <-a.Done()
	assert.False(t, open)
}
