package generator

import (
	"errors"
	"fmt"
	"runtime"
	"strconv"
	"sync"
	"time"
)

var (
	ErrClockMovedBackwards = errors.New("clock moved backwards")
	ErrTimestampOutOfRange = errors.New("timestamp out of range for layout")
	ErrNegativeCount       = errors.New("batch count must not be negative")
)

// ClockMovedBackwardsError reports a wall clock that regressed behind the
// timestamp of the last issued ID.
type ClockMovedBackwardsError struct {
	Last int64 // unix ms of the last issued ID
	Now  int64 // unix ms observed by the failed call
}

func (e *ClockMovedBackwardsError) Error() string {
	return fmt.Sprintf("clock moved backwards: refusing to generate id for %dms (current=%d, last=%d)", e.Last-e.Now, e.Now, e.Last)
}

func (e *ClockMovedBackwardsError) Is(target error) bool {
	return target == ErrClockMovedBackwards
}

// Drift is how far the clock fell behind the last issued ID.
func (e *ClockMovedBackwardsError) Drift() time.Duration {
	return time.Duration(e.Last-e.Now) * time.Millisecond
}

// Option configures a Snowflake.
type Option func(*Snowflake)

// WithClock replaces the wall clock. now must return unix milliseconds.
func WithClock(now func() int64) Option {
	return func(g *Snowflake) {
		g.now = now
	}
}

// Snowflake generates 64-bit IDs laid out as [timestamp delta][node][sequence].
type Snowflake struct {
	layout Layout
	epoch  int64
	nodeID int64
	now    func() int64

	mu       sync.Mutex
	lastTime int64 // unix ms of the last issued ID, -1 before the first
	sequence int64
}

// NewSnowflake validates cfg and returns a generator ready for concurrent use.
// Any invalid field yields an error wrapping ErrInvalidConfiguration.
func NewSnowflake(cfg SnowflakeConfig, opts ...Option) (*Snowflake, error) {
	layout, err := newLayout(cfg)
	if err != nil {
		return nil, err
	}

	g := &Snowflake{
		layout:   layout,
		epoch:    cfg.Epoch,
		nodeID:   cfg.NodeID,
		now:      func() int64 { return time.Now().UnixMilli() },
		lastTime: -1,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// NextID returns the next ID. It fails with a *ClockMovedBackwardsError when
// the clock is behind the last issued ID, leaving the generator untouched.
func (g *Snowflake) NextID() (uint64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.nextLocked()
}

// NextIDs returns count strictly increasing IDs issued under one lock hold.
func (g *Snowflake) NextIDs(count int) ([]uint64, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeCount, count)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	ids := make([]uint64, 0, count)
	for i := 0; i < count; i++ {
		id, err := g.nextLocked()
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// nextLocked must be called with g.mu held.
func (g *Snowflake) nextLocked() (uint64, error) {
	now := g.now()

	if now < g.lastTime {
		return 0, &ClockMovedBackwardsError{Last: g.lastTime, Now: now}
	}
	if err := g.checkRange(now); err != nil {
		return 0, err
	}

	seq := int64(0)
	if now == g.lastTime {
		seq = (g.sequence + 1) & g.layout.MaxSequence
		if seq == 0 {
			// Sequence exhausted for this millisecond.
			now = g.waitNextMilli(g.lastTime)
			if err := g.checkRange(now); err != nil {
				return 0, err
			}
		}
	}

	g.sequence = seq
	g.lastTime = now

	return g.layout.compose(now-g.epoch, g.nodeID, seq), nil
}

func (g *Snowflake) checkRange(now int64) error {
	delta := now - g.epoch
	if delta < 0 {
		return fmt.Errorf("%w: current time %d is before epoch %d", ErrTimestampOutOfRange, now, g.epoch)
	}
	if delta > g.layout.MaxTimestamp {
		return fmt.Errorf("%w: %dms since epoch exceeds %d timestamp bits", ErrTimestampOutOfRange, delta, g.layout.TimestampBits)
	}
	return nil
}

// waitNextMilli spins until the clock passes last. The lock stays held so
// every other caller queues behind the wait.
func (g *Snowflake) waitNextMilli(last int64) int64 {
	now := g.now()
	for now <= last {
		runtime.Gosched()
		now = g.now()
	}
	return now
}

// Decode splits id using this generator's layout and epoch.
func (g *Snowflake) Decode(id uint64) Parts {
	return g.layout.decode(id, g.epoch)
}

func (g *Snowflake) Layout() Layout { return g.layout }
func (g *Snowflake) NodeID() int64  { return g.nodeID }
func (g *Snowflake) Epoch() int64   { return g.epoch }

func (g *Snowflake) Generate() (string, error) {
	id, err := g.NextID()
	if err != nil {
		return "", err
	}
	return strconv.FormatUint(id, 10), nil
}

func (g *Snowflake) GenerateBatch(count int) ([]string, error) {
	ids, err := g.NextIDs(count)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = strconv.FormatUint(id, 10)
	}
	return out, nil
}

func (g *Snowflake) Validate(id string) (bool, string) {
	n, err := strconv.ParseUint(id, 10, 64)
	if err != nil {
		return false, "invalid integer format"
	}
	if n>>usableBits != 0 {
		return false, "sign bit must be zero"
	}

	parts := g.Decode(n)
	if parts.TimestampMs > g.now() {
		return false, "timestamp is in the future"
	}
	return true, ""
}

func (g *Snowflake) Parse(id string) (*ParseResult, error) {
	n, err := strconv.ParseUint(id, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid integer format: %w", err)
	}
	if n>>usableBits != 0 {
		return nil, fmt.Errorf("sign bit must be zero")
	}

	parts := g.Decode(n)
	return &ParseResult{
		TimestampMs: parts.TimestampMs,
		NodeID:      parts.NodeID,
		Sequence:    parts.Sequence,
	}, nil
}
