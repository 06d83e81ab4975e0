package service

import (
	"context"
	"strconv"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weiawesome/snowflake-service/internal/generator"
)

func newTestService(t *testing.T, now *atomic.Int64) *IDService {
	t.Helper()
	sf, err := generator.NewSnowflake(generator.DefaultSnowflakeConfig(5), generator.WithClock(now.Load))
	require.NoError(t, err)

	return NewIDService(map[string]generator.Generator{
		SchemeSnowflake: sf,
		SchemeUUID:      generator.NewUUIDGenerator(),
	})
}

func TestIDService_Schemes(t *testing.T) {
	var now atomic.Int64
	now.Store(generator.DefaultEpoch + 1000)
	s := newTestService(t, &now)

	assert.Equal(t, []string{SchemeSnowflake, SchemeUUID}, s.Schemes())
}

func TestIDService_GenerateAndParse(t *testing.T) {
	var now atomic.Int64
	now.Store(generator.DefaultEpoch + 1000)
	s := newTestService(t, &now)
	ctx := context.Background()

	id, err := s.Generate(ctx, SchemeSnowflake)
	require.NoError(t, err)
	assert.Equal(t, strconv.FormatUint(1000<<22|5<<12, 10), id)

	res, err := s.Parse(ctx, SchemeSnowflake, id)
	require.NoError(t, err)
	assert.Equal(t, int64(5), res.NodeID)

	valid, _, err := s.Validate(ctx, SchemeSnowflake, id)
	require.NoError(t, err)
	assert.True(t, valid)
}

func TestIDService_UnknownScheme(t *testing.T) {
	var now atomic.Int64
	s := newTestService(t, &now)
	ctx := context.Background()

	_, err := s.Generate(ctx, "guid")
	assert.ErrorIs(t, err, ErrUnknownScheme)
	_, err = s.GenerateBatch(ctx, "guid", 1)
	assert.ErrorIs(t, err, ErrUnknownScheme)
	_, _, err = s.Validate(ctx, "guid", "x")
	assert.ErrorIs(t, err, ErrUnknownScheme)
	_, err = s.Parse(ctx, "guid", "x")
	assert.ErrorIs(t, err, ErrUnknownScheme)
}

func TestIDService_BatchCount(t *testing.T) {
	var now atomic.Int64
	now.Store(generator.DefaultEpoch + 1)
	s := newTestService(t, &now)
	ctx := context.Background()

	for _, n := range []int{0, -1, MaxBatchSize + 1} {
		_, err := s.GenerateBatch(ctx, SchemeSnowflake, n)
		assert.ErrorIs(t, err, ErrInvalidCount, "count=%d", n)
	}

	ids, err := s.GenerateBatch(ctx, SchemeSnowflake, MaxBatchSize)
	require.NoError(t, err)
	assert.Len(t, ids, MaxBatchSize)
}

func TestIDService_ClockMovedBackwards(t *testing.T) {
	var now atomic.Int64
	now.Store(generator.DefaultEpoch + 1000)
	s := newTestService(t, &now)
	ctx := context.Background()

	_, err := s.Generate(ctx, SchemeSnowflake)
	require.NoError(t, err)

	now.Store(generator.DefaultEpoch + 900)
	_, err = s.Generate(ctx, SchemeSnowflake)
	assert.ErrorIs(t, err, generator.ErrClockMovedBackwards)
}
