package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/weiawesome/snowflake-service/internal/generator"
	"github.com/weiawesome/snowflake-service/pkg/log"
)

// Scheme names accepted by the transports.
const (
	SchemeSnowflake = "snowflake"
	SchemeUUID      = "uuid"
	SchemeULID      = "ulid"
	SchemeKSUID     = "ksuid"
	SchemeNanoID    = "nanoid"
	SchemeCUID2     = "cuid2"
)

const MaxBatchSize = 1000

var (
	ErrUnknownScheme = errors.New("unknown id scheme")
	ErrInvalidCount  = errors.New("invalid batch count")
)

// IDService routes requests to the generator registered for a scheme.
type IDService struct {
	generators map[string]generator.Generator
}

// NewIDService creates a service over generators keyed by scheme name.
func NewIDService(generators map[string]generator.Generator) *IDService {
	return &IDService{generators: generators}
}

// Schemes lists the registered scheme names in sorted order.
func (s *IDService) Schemes() []string {
	names := make([]string, 0, len(s.generators))
	for name := range s.generators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s *IDService) lookup(scheme string) (generator.Generator, error) {
	gen, ok := s.generators[scheme]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScheme, scheme)
	}
	return gen, nil
}

func (s *IDService) Generate(ctx context.Context, scheme string) (string, error) {
	gen, err := s.lookup(scheme)
	if err != nil {
		return "", err
	}

	id, err := gen.Generate()
	if err != nil {
		logFailure(ctx, scheme, err)
		return "", fmt.Errorf("failed to generate ID: %w", err)
	}
	return id, nil
}

func (s *IDService) GenerateBatch(ctx context.Context, scheme string, count int) ([]string, error) {
	if count < 1 || count > MaxBatchSize {
		return nil, fmt.Errorf("%w: count must be between 1 and %d, got %d", ErrInvalidCount, MaxBatchSize, count)
	}

	gen, err := s.lookup(scheme)
	if err != nil {
		return nil, err
	}

	ids, err := gen.GenerateBatch(count)
	if err != nil {
		logFailure(ctx, scheme, err)
		return nil, fmt.Errorf("failed to generate batch IDs: %w", err)
	}
	return ids, nil
}

func (s *IDService) Validate(ctx context.Context, scheme, id string) (bool, string, error) {
	gen, err := s.lookup(scheme)
	if err != nil {
		return false, "", err
	}
	valid, reason := gen.Validate(id)
	return valid, reason, nil
}

// Parse decodes id. A malformed id is reported through the returned error
// wrapping the generator's message; an unknown scheme through ErrUnknownScheme.
func (s *IDService) Parse(ctx context.Context, scheme, id string) (*generator.ParseResult, error) {
	gen, err := s.lookup(scheme)
	if err != nil {
		return nil, err
	}
	return gen.Parse(id)
}

func logFailure(ctx context.Context, scheme string, err error) {
	l := log.Ctx(ctx)

	var cmb *generator.ClockMovedBackwardsError
	if errors.As(err, &cmb) {
		l.Warn().Err(err).
			Str(log.FieldScheme, scheme).
			Int64(log.FieldDrift, cmb.Last-cmb.Now).
			Msg("refusing to issue id while clock is behind")
		return
	}
	l.Error().Err(err).Str(log.FieldScheme, scheme).Msg("id generation failed")
}
