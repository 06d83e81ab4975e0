package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemes_GenerateValidateParse(t *testing.T) {
	nano, err := NewNanoIDGenerator(DefaultNanoIDSize, DefaultNanoIDAlphabet)
	require.NoError(t, err)
	cuid, err := NewCUID2Generator(DefaultCUID2Length)
	require.NoError(t, err)

	schemes := map[string]Generator{
		"uuid":   NewUUIDGenerator(),
		"ulid":   NewULIDGenerator(),
		"ksuid":  NewKSUIDGenerator(),
		"nanoid": nano,
		"cuid2":  cuid,
	}

	for name, gen := range schemes {
		t.Run(name, func(t *testing.T) {
			id, err := gen.Generate()
			require.NoError(t, err)

			valid, reason := gen.Validate(id)
			assert.True(t, valid, reason)

			_, err = gen.Parse(id)
			assert.NoError(t, err)

			valid, reason = gen.Validate("!")
			assert.False(t, valid)
			assert.NotEmpty(t, reason)

			_, err = gen.Parse("!")
			assert.Error(t, err)

			ids, err := gen.GenerateBatch(50)
			require.NoError(t, err)
			seen := make(map[string]struct{}, len(ids))
			for _, id := range ids {
				seen[id] = struct{}{}
			}
			assert.Len(t, seen, 50)

			ids, err = gen.GenerateBatch(0)
			require.NoError(t, err)
			assert.Empty(t, ids)

			ids, err = gen.GenerateBatch(-1)
			assert.ErrorIs(t, err, ErrNegativeCount)
			assert.Nil(t, ids)
		})
	}
}

func TestULIDGenerator_Monotonic(t *testing.T) {
	gen := NewULIDGenerator()
	ids, err := gen.GenerateBatch(200)
	require.NoError(t, err)
	for i := 1; i < len(ids); i++ {
		assert.Less(t, ids[i-1], ids[i])
	}
}

func TestUUIDGenerator_Parse(t *testing.T) {
	res, err := NewUUIDGenerator().Parse("6ba7b810-9dad-41d1-80b4-00c04fd430c8")
	require.NoError(t, err)
	assert.Equal(t, int32(4), res.UUIDVersion)
	assert.Equal(t, "RFC4122", res.UUIDVariant)

	valid, reason := NewUUIDGenerator().Validate("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	assert.False(t, valid)
	assert.Contains(t, reason, "v1")
}

func TestNanoIDGenerator_Config(t *testing.T) {
	_, err := NewNanoIDGenerator(0, DefaultNanoIDAlphabet)
	assert.Error(t, err)
	_, err = NewNanoIDGenerator(10, "a")
	assert.Error(t, err)

	gen, err := NewNanoIDGenerator(8, "ab")
	require.NoError(t, err)
	valid, reason := gen.Validate("aabbabac")
	assert.False(t, valid)
	assert.Contains(t, reason, "'c'")

	res, err := gen.Parse("aabbabab")
	require.NoError(t, err)
	assert.Equal(t, int32(8), res.IDLength)
	assert.Equal(t, "ab", res.Alphabet)
}

func TestCUID2Generator_Config(t *testing.T) {
	_, err := NewCUID2Generator(1)
	assert.Error(t, err)
	_, err = NewCUID2Generator(33)
	assert.Error(t, err)
}
