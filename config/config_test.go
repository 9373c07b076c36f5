package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grovetools/flux/errors"
)

func TestLoadFromBytes(t *testing.T) {
	cfg, err := LoadFromBytes([]byte(`
mode: production
logging:
  level: debug
`))
	require.NoError(t, err)
	assert.Equal(t, ModeProduction, cfg.Mode)
	assert.True(t, cfg.IsProduction())
	assert.Contains(t, cfg.Extensions, "logging")
}

func TestLoadFromBytesEmpty(t *testing.T) {
	cfg, err := LoadFromBytes([]byte(""))
	require.NoError(t, err)
	assert.Empty(t, cfg.Mode)
	assert.False(t, cfg.IsProduction())
}

func TestLoadFromBytesRejectsUnknownMode(t *testing.T) {
	_, err := LoadFromBytes([]byte("mode: staging\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeConfigInvalid))
}

func TestLoadFromBytesExpandsEnvVars(t *testing.T) {
	t.Setenv("FLUX_TEST_LEVEL", "warn")

	cfg, err := LoadFromBytes([]byte(`
logging:
  level: ${FLUX_TEST_LEVEL}
`))
	require.NoError(t, err)

	var logCfg struct {
		Level string `yaml:"level"`
	}
	require.NoError(t, cfg.UnmarshalExtension("logging", &logCfg))
	assert.Equal(t, "warn", logCfg.Level)
}

func TestUnmarshalExtension(t *testing.T) {
	cfg, err := LoadFromBytes([]byte(`
logging:
  level: debug
  report_caller: true
`))
	require.NoError(t, err)

	var logCfg struct {
		Level        string `yaml:"level"`
		ReportCaller bool   `yaml:"report_caller"`
	}
	require.NoError(t, cfg.UnmarshalExtension("logging", &logCfg))
	assert.Equal(t, "debug", logCfg.Level)
	assert.True(t, logCfg.ReportCaller)
}

func TestUnmarshalExtensionMissingKey(t *testing.T) {
	cfg, err := LoadFromBytes([]byte("mode: development\n"))
	require.NoError(t, err)

	var logCfg struct {
		Level string `yaml:"level"`
	}
	require.NoError(t, cfg.UnmarshalExtension("logging", &logCfg))
	assert.Empty(t, logCfg.Level, "a missing extension leaves the target zero-valued")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "flux.yml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeConfigNotFound))
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flux.yml")
	require.NoError(t, os.WriteFile(path, []byte("mode: production\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
}

func TestFindConfigFileWalksUp(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b", "c")
	require.NoError(t, os.MkdirAll(nested, 0755))

	expected := filepath.Join(root, "a", "flux.yml")
	require.NoError(t, os.WriteFile(expected, []byte("mode: development\n"), 0644))

	found, err := FindConfigFile(nested)
	require.NoError(t, err)
	assert.Equal(t, expected, found)
}

func TestFindConfigFilePrecedence(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "flux.yml"), []byte(""), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".flux.yaml"), []byte(""), 0644))

	found, err := FindConfigFile(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "flux.yml"), found)
}

func TestFindConfigFileXDGFallback(t *testing.T) {
	xdgHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdgHome)

	globalDir := filepath.Join(xdgHome, "flux")
	require.NoError(t, os.MkdirAll(globalDir, 0755))
	globalPath := filepath.Join(globalDir, "flux.yml")
	require.NoError(t, os.WriteFile(globalPath, []byte("mode: development\n"), 0644))

	found, err := FindConfigFile(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, globalPath, found)
}

func TestFindConfigFileNotFound(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	_, err := FindConfigFile(t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeConfigNotFound))
}

func TestDevelopmentEnvOverride(t *testing.T) {
	t.Setenv("FLUX_MODE", ModeProduction)
	assert.False(t, Development())

	t.Setenv("FLUX_MODE", ModeDevelopment)
	assert.True(t, Development())
}

func TestIsProductionNilReceiver(t *testing.T) {
	var cfg *Config
	assert.False(t, cfg.IsProduction())
}
