package resize_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/panoplyio/resize"
	"github.com/stretchr/testify/require"
)

func TestConfig_MaxBytesPerTable(t *testing.T) {
	cfg := resize.Config{MaxMBytesPerTable: 1.5}
	require.Equal(t, float64(3*1024*1024), cfg.MaxBytesPerTable())

	cfg = resize.Config{MaxMBytesPerTable: -1}
	require.True(t, cfg.MaxBytesPerTable() < 0)
}

func TestParseConfig(t *testing.T) {
	cfg, err := resize.ParseConfig([]byte("max_rows_per_table: 100\n"))
	require.NoError(t, err)
	require.Equal(t, 100, cfg.MaxRowsPerTable)
	require.Equal(t, float64(0), cfg.MaxMBytesPerTable)

	cfg, err = resize.ParseConfig([]byte("max_rows_per_table: -1\nmax_mbytes_per_table: 0.25\n"))
	require.NoError(t, err)
	require.Equal(t, 0.25, cfg.MaxMBytesPerTable)

	_, err = resize.ParseConfig([]byte("max_rows_per_table: 1\nmax_mbytes_per_table: 1\n"))
	require.IsType(t, &resize.ConfigurationError{}, err)

	_, err = resize.ParseConfig([]byte("{}"))
	require.IsType(t, &resize.ConfigurationError{}, err)

	_, err = resize.ParseConfig([]byte("max_rows_per_table: [1"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to parse config")
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resize.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_mbytes_per_table: 64\n"), 0o644))

	cfg, err := resize.LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, float64(64), cfg.MaxMBytesPerTable)

	_, err = resize.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to read config")
}
