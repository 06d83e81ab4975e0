package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileFallsBackToEnv(t *testing.T) {
	t.Setenv("SNOWFLAKE_NODE_ID", "12")

	v, err := Load(t.TempDir(), "does-not-exist")
	require.NoError(t, err)
	assert.Equal(t, 12, v.GetInt("snowflake.node_id"))
}

func TestLoad_ReadsYAML(t *testing.T) {
	dir := t.TempDir()
	body := []byte("snowflake:\n  node_id: 3\n  epoch: 1700000000000\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "svc.yaml"), body, 0o600))

	v, err := Load(dir, "svc")
	require.NoError(t, err)
	assert.Equal(t, 3, v.GetInt("snowflake.node_id"))
	assert.Equal(t, int64(1700000000000), v.GetInt64("snowflake.epoch"))
}

func TestLoad_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte("snowflake: [\n"), 0o600))

	_, err := Load(dir, "bad")
	assert.Error(t, err)
}
