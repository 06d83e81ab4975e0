package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weiawesome/snowflake-service/internal/generator"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := LoadFrom(t.TempDir(), "missing")
	require.NoError(t, err)

	assert.Equal(t, 8090, cfg.HTTP.Port)
	assert.Equal(t, 50053, cfg.GRPC.Port)
	assert.Equal(t, generator.DefaultSnowflakeConfig(1), cfg.Snowflake.Generator())
	assert.Equal(t, generator.DefaultNanoIDSize, cfg.NanoID.Size)
	assert.Equal(t, generator.DefaultCUID2Length, cfg.CUID2.Length)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Errors.ExposeDetails)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SNOWFLAKE_NODE_ID", "42")
	t.Setenv("SNOWFLAKE_NODE_BITS", "8")
	t.Setenv("GRPC_PORT", "6000")

	cfg, err := LoadFrom(t.TempDir(), "missing")
	require.NoError(t, err)

	assert.Equal(t, int64(42), cfg.Snowflake.NodeID)
	assert.Equal(t, 8, cfg.Snowflake.NodeBits)
	assert.Equal(t, 6000, cfg.GRPC.Port)
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	body := `
http:
  port: 9000
snowflake:
  node_id: 5
  epoch: 1700000000000
  sequence_bits: 14
  node_bits: 6
errors:
  expose_details: true
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "svc.yaml"), []byte(body), 0o600))

	cfg, err := LoadFrom(dir, "svc")
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.HTTP.Port)
	assert.Equal(t, generator.SnowflakeConfig{
		NodeID:       5,
		Epoch:        1700000000000,
		SequenceBits: 14,
		NodeBits:     6,
	}, cfg.Snowflake.Generator())
	assert.True(t, cfg.Errors.ExposeDetails)
}
