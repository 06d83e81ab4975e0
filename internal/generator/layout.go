package generator

import (
	"errors"
	"fmt"
)

const (
	DefaultSequenceBits = 12
	DefaultNodeBits     = 10

	// DefaultEpoch is 2025-01-01T00:00:00Z in unix milliseconds.
	DefaultEpoch int64 = 1735689600000

	// usableBits excludes the sign bit so IDs stay valid as int64 keys.
	usableBits = 63

	// MinTimestampBits keeps at least ~8.7 years of millisecond range.
	MinTimestampBits = 38
)

var ErrInvalidConfiguration = errors.New("invalid snowflake configuration")

// SnowflakeConfig is the static identity and bit layout of a generator.
// It is validated once by NewSnowflake and never changes afterwards.
type SnowflakeConfig struct {
	NodeID       int64
	Epoch        int64 // unix ms
	SequenceBits int
	NodeBits     int
}

// DefaultSnowflakeConfig returns a 41/10/12 layout for the given node.
func DefaultSnowflakeConfig(nodeID int64) SnowflakeConfig {
	return SnowflakeConfig{
		NodeID:       nodeID,
		Epoch:        DefaultEpoch,
		SequenceBits: DefaultSequenceBits,
		NodeBits:     DefaultNodeBits,
	}
}

// Layout is the precomputed bit arithmetic for one configuration.
type Layout struct {
	SequenceBits  int
	NodeBits      int
	TimestampBits int

	MaxSequence  int64
	MaxNodeID    int64
	MaxTimestamp int64

	NodeShift      uint
	TimestampShift uint
}

func newLayout(cfg SnowflakeConfig) (Layout, error) {
	if cfg.SequenceBits < 1 {
		return Layout{}, fmt.Errorf("%w: sequence_bits must be at least 1, got %d", ErrInvalidConfiguration, cfg.SequenceBits)
	}
	if cfg.NodeBits < 0 {
		return Layout{}, fmt.Errorf("%w: node_bits must not be negative, got %d", ErrInvalidConfiguration, cfg.NodeBits)
	}
	tsBits := usableBits - cfg.SequenceBits - cfg.NodeBits
	if tsBits < MinTimestampBits {
		return Layout{}, fmt.Errorf("%w: sequence_bits+node_bits=%d leaves %d timestamp bits, need at least %d",
			ErrInvalidConfiguration, cfg.SequenceBits+cfg.NodeBits, tsBits, MinTimestampBits)
	}
	if cfg.Epoch < 0 {
		return Layout{}, fmt.Errorf("%w: epoch must not be negative, got %d", ErrInvalidConfiguration, cfg.Epoch)
	}

	l := Layout{
		SequenceBits:   cfg.SequenceBits,
		NodeBits:       cfg.NodeBits,
		TimestampBits:  tsBits,
		MaxSequence:    (1 << cfg.SequenceBits) - 1,
		MaxNodeID:      (1 << cfg.NodeBits) - 1,
		MaxTimestamp:   (1 << tsBits) - 1,
		NodeShift:      uint(cfg.SequenceBits),
		TimestampShift: uint(cfg.SequenceBits + cfg.NodeBits),
	}

	if cfg.NodeID < 0 || cfg.NodeID > l.MaxNodeID {
		return Layout{}, fmt.Errorf("%w: node_id must be between 0 and %d, got %d", ErrInvalidConfiguration, l.MaxNodeID, cfg.NodeID)
	}
	return l, nil
}

// compose packs the three fields; callers guarantee each is in range.
func (l Layout) compose(delta, nodeID, sequence int64) uint64 {
	return uint64(delta)<<l.TimestampShift | uint64(nodeID)<<l.NodeShift | uint64(sequence)
}

// Parts is a decoded Snowflake ID.
type Parts struct {
	TimestampMs int64 // absolute unix ms
	Delta       int64 // ms since the generator epoch
	NodeID      int64
	Sequence    int64
}

func (l Layout) decode(id uint64, epoch int64) Parts {
	delta := int64(id>>l.TimestampShift) & l.MaxTimestamp
	return Parts{
		TimestampMs: delta + epoch,
		Delta:       delta,
		NodeID:      int64(id>>l.NodeShift) & l.MaxNodeID,
		Sequence:    int64(id) & l.MaxSequence,
	}
}
