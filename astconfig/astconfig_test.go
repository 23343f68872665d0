package astconfig_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astcore/astcore/astconfig"
)

func TestLoadDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := astconfig.Load("")
	require.NoError(t, err)

	assert.Equal(t, 256, cfg.Convert.MaxPasses)
	assert.Equal(t, 10000, cfg.Match.SiteCap)
	assert.Equal(t, "draft", cfg.Source.DefaultName)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadFromFile(t *testing.T) {
	t.Parallel()

	configContent := `
convert:
  max_passes: 16

match:
  site_cap: 500

source:
  default_name: "custom"
`

	tmpDir := t.TempDir()

	tmpFile, err := os.CreateTemp(tmpDir, "asttool-*.yaml")
	require.NoError(t, err)

	_, writeErr := tmpFile.WriteString(configContent)
	require.NoError(t, writeErr)
	require.NoError(t, tmpFile.Close())

	cfg, loadErr := astconfig.Load(tmpFile.Name())
	require.NoError(t, loadErr)

	assert.Equal(t, 16, cfg.Convert.MaxPasses)
	assert.Equal(t, 500, cfg.Match.SiteCap)
	assert.Equal(t, "custom", cfg.Source.DefaultName)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("AST_CONVERT_MAX_PASSES", "8")
	t.Setenv("AST_SOURCE_DEFAULT_NAME", "env-dialect")

	cfg, err := astconfig.Load("")
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.Convert.MaxPasses)
	assert.Equal(t, "env-dialect", cfg.Source.DefaultName)
}

func TestValidateRejectsNonPositiveMaxPasses(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	tmpFile, err := os.CreateTemp(tmpDir, "asttool-*.yaml")
	require.NoError(t, err)

	_, writeErr := tmpFile.WriteString("convert:\n  max_passes: 0\n")
	require.NoError(t, writeErr)
	require.NoError(t, tmpFile.Close())

	_, loadErr := astconfig.Load(tmpFile.Name())
	require.ErrorIs(t, loadErr, astconfig.ErrInvalidMaxPasses)
}

func TestValidateRejectsEmptySourceName(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	tmpFile, err := os.CreateTemp(tmpDir, "asttool-*.yaml")
	require.NoError(t, err)

	_, writeErr := tmpFile.WriteString("source:\n  default_name: \"\"\n")
	require.NoError(t, writeErr)
	require.NoError(t, tmpFile.Close())

	_, loadErr := astconfig.Load(tmpFile.Name())
	require.ErrorIs(t, loadErr, astconfig.ErrInvalidSourceName)
}
