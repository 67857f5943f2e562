package config

import (
	stderrors "errors"
	"testing"
	"time"

	"github.com/sheetcard/sheetcard-go/pkg/sheetcard"
	"github.com/sheetcard/sheetcard-go/pkg/sheetcard/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 30*time.Minute, cfg.Server.StoreTTL)
	assert.Equal(t, sheetcard.DefaultLimits(), cfg.LoadLimits())
	assert.Equal(t, 1, cfg.Defaults.HeaderRows)
	assert.Equal(t, "pivoted", cfg.Defaults.ViewMode)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SHEETCARD_ADDR", "127.0.0.1:9000")
	t.Setenv("SHEETCARD_MAX_ROWS", "500")
	t.Setenv("SHEETCARD_MAX_FILE_SIZE", "2048")
	t.Setenv("SHEETCARD_STORE_TTL", "5m")
	t.Setenv("SHEETCARD_HEADER_ROWS", "2")
	t.Setenv("SHEETCARD_HEADER_MODE", "composite")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	assert.Equal(t, 500, cfg.Limits.MaxRows)
	assert.Equal(t, int64(2048), cfg.Limits.MaxFileSize)
	assert.Equal(t, 5*time.Minute, cfg.Server.StoreTTL)
	assert.Equal(t, 2, cfg.Defaults.HeaderRows)
	assert.Equal(t, "composite", cfg.Defaults.HeaderMode)
}

func TestLoadRejectsInvalid(t *testing.T) {
	t.Setenv("SHEETCARD_VIEW_MODE", "cards")

	_, err := Load()
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.ErrConfig))
}

func TestLoadRejectsZeroHeaderRows(t *testing.T) {
	t.Setenv("SHEETCARD_HEADER_ROWS", "0")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadReadsLeadingZerosAsDecimal(t *testing.T) {
	t.Setenv("SHEETCARD_MAX_ROWS", "010")
	t.Setenv("SHEETCARD_MAX_FILE_SIZE", "0100")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Limits.MaxRows)
	assert.Equal(t, int64(100), cfg.Limits.MaxFileSize)
}
