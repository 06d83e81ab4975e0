package generator

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/nrednav/cuid2"
	"github.com/oklog/ulid/v2"
	"github.com/segmentio/ksuid"
)

const (
	DefaultNanoIDSize     = 21
	DefaultNanoIDAlphabet = "_-0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	DefaultCUID2Length    = 24
)

// textScheme adapts an opaque string ID format to Generator. The random
// schemes share everything but these three hooks.
type textScheme struct {
	name     string
	next     func() (string, error)
	validate func(id string) string // "" when valid
	parse    func(id string) *ParseResult
}

func (s *textScheme) Generate() (string, error) {
	id, err := s.next()
	if err != nil {
		return "", fmt.Errorf("failed to generate %s: %w", s.name, err)
	}
	return id, nil
}

func (s *textScheme) GenerateBatch(count int) ([]string, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeCount, count)
	}
	ids := make([]string, 0, count)
	for i := 0; i < count; i++ {
		id, err := s.Generate()
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (s *textScheme) Validate(id string) (bool, string) {
	if reason := s.validate(id); reason != "" {
		return false, reason
	}
	return true, ""
}

func (s *textScheme) Parse(id string) (*ParseResult, error) {
	if reason := s.validate(id); reason != "" {
		return nil, fmt.Errorf("invalid %s: %s", s.name, reason)
	}
	return s.parse(id), nil
}

// NewUUIDGenerator serves random (v4) UUIDs.
func NewUUIDGenerator() Generator {
	return &textScheme{
		name: "UUID",
		next: func() (string, error) {
			id, err := uuid.NewRandom()
			if err != nil {
				return "", err
			}
			return id.String(), nil
		},
		validate: func(id string) string {
			parsed, err := uuid.Parse(id)
			if err != nil {
				return fmt.Sprintf("invalid UUID format: %v", err)
			}
			if parsed.Version() != 4 {
				return fmt.Sprintf("expected UUID v4, got v%d", parsed.Version())
			}
			return ""
		},
		parse: func(id string) *ParseResult {
			parsed := uuid.MustParse(id)
			return &ParseResult{
				UUIDVersion: int32(parsed.Version()),
				UUIDVariant: uuidVariant(parsed.Variant()),
			}
		},
	}
}

func uuidVariant(v uuid.Variant) string {
	switch v {
	case uuid.RFC4122:
		return "RFC4122"
	case uuid.Reserved:
		return "Reserved"
	case uuid.Microsoft:
		return "Microsoft"
	case uuid.Future:
		return "Future"
	default:
		return "Unknown"
	}
}

// NewULIDGenerator serves ULIDs that stay monotonic within a millisecond.
func NewULIDGenerator() Generator {
	var mu sync.Mutex
	entropy := ulid.Monotonic(rand.Reader, 0)

	return &textScheme{
		name: "ULID",
		next: func() (string, error) {
			mu.Lock()
			defer mu.Unlock()
			id, err := ulid.New(ulid.Timestamp(time.Now()), entropy)
			if err != nil {
				return "", err
			}
			return id.String(), nil
		},
		validate: func(id string) string {
			if len(id) != ulid.EncodedSize {
				return fmt.Sprintf("expected length %d, got %d", ulid.EncodedSize, len(id))
			}
			if _, err := ulid.ParseStrict(id); err != nil {
				return fmt.Sprintf("invalid ULID format: %v", err)
			}
			return ""
		},
		parse: func(id string) *ParseResult {
			parsed := ulid.MustParseStrict(id)
			return &ParseResult{
				TimestampMs:   int64(parsed.Time()),
				RandomPayload: hex.EncodeToString(parsed.Entropy()),
			}
		},
	}
}

// NewKSUIDGenerator serves KSUIDs (second precision, 128-bit payload).
func NewKSUIDGenerator() Generator {
	const encodedLen = 27

	return &textScheme{
		name: "KSUID",
		next: func() (string, error) {
			id, err := ksuid.NewRandom()
			if err != nil {
				return "", err
			}
			return id.String(), nil
		},
		validate: func(id string) string {
			if len(id) != encodedLen {
				return fmt.Sprintf("expected length %d, got %d", encodedLen, len(id))
			}
			if _, err := ksuid.Parse(id); err != nil {
				return fmt.Sprintf("invalid KSUID format: %v", err)
			}
			return ""
		},
		parse: func(id string) *ParseResult {
			parsed, _ := ksuid.Parse(id)
			return &ParseResult{
				TimestampMs:   parsed.Time().UnixMilli(),
				RandomPayload: hex.EncodeToString(parsed.Payload()),
			}
		},
	}
}

// NewNanoIDGenerator serves NanoIDs of a fixed size over alphabet.
// size must be between 1 and 256; alphabet needs at least 2 characters.
func NewNanoIDGenerator(size int, alphabet string) (Generator, error) {
	if size < 1 || size > 256 {
		return nil, fmt.Errorf("nanoid size must be between 1 and 256, got %d", size)
	}
	if len(alphabet) < 2 {
		return nil, fmt.Errorf("nanoid alphabet must have at least 2 characters, got %d", len(alphabet))
	}

	check := func(id string) string {
		if len(id) != size {
			return fmt.Sprintf("expected length %d, got %d", size, len(id))
		}
		if i := strings.IndexFunc(id, func(r rune) bool { return !strings.ContainsRune(alphabet, r) }); i >= 0 {
			return fmt.Sprintf("character '%c' not in alphabet", id[i])
		}
		return ""
	}

	return &textScheme{
		name: "NanoID",
		next: func() (string, error) {
			return gonanoid.Generate(alphabet, size)
		},
		validate: check,
		parse: func(id string) *ParseResult {
			return &ParseResult{IDLength: int32(len(id)), Alphabet: alphabet}
		},
	}, nil
}

// NewCUID2Generator serves CUID2s of the given length (2..32).
func NewCUID2Generator(length int) (Generator, error) {
	if length < 2 || length > 32 {
		return nil, fmt.Errorf("cuid2 length must be between 2 and 32, got %d", length)
	}
	next, err := cuid2.Init(cuid2.WithLength(length))
	if err != nil {
		return nil, fmt.Errorf("failed to init CUID2 generator: %w", err)
	}

	return &textScheme{
		name: "CUID2",
		next: func() (string, error) { return next(), nil },
		validate: func(id string) string {
			if len(id) != length {
				return fmt.Sprintf("expected length %d, got %d", length, len(id))
			}
			if !cuid2.IsCuid(id) {
				return "invalid CUID2 format"
			}
			return ""
		},
		parse: func(id string) *ParseResult {
			return &ParseResult{IDLength: int32(len(id))}
		},
	}, nil
}
