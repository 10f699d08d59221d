package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/fuelco2/internal/logging"
)

func TestNew_Defaults(t *testing.T) {
	cfg := New()
	assert.Equal(t, FormatTable, cfg.Output.DefaultFormat)
	assert.Equal(t, 3, cfg.Output.Precision)
	assert.Equal(t, "en", cfg.Output.Locale)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, New().Output, cfg.Output)
}

func TestLoad_FileAndEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `output:
  default_format: json
  precision: 2
logging:
  level: debug
metrics:
  textfile: /tmp/fuelco2.prom
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("FUELCO2_OUTPUT__LOCALE", "ru")
	t.Setenv("FUELCO2_OUTPUT__PRECISION", "4")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, cfg.Output.DefaultFormat)
	assert.Equal(t, 4, cfg.Output.Precision)
	assert.Equal(t, "ru", cfg.Output.Locale)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "/tmp/fuelco2.prom", cfg.Metrics.Textfile)
	assert.Equal(t, path, cfg.ConfigPath())
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "unknown format", content: "output:\n  default_format: xml\n"},
		{name: "precision too large", content: "output:\n  precision: 99\n"},
		{name: "unknown log format", content: "logging:\n  format: logfmt\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))
			_, err := Load(path)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoad_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{"output": {"default_format": "ndjson", "locale": "ru"}, "logging": {"level": "warn"}}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, FormatNDJSON, cfg.Output.DefaultFormat)
	assert.Equal(t, "ru", cfg.Output.Locale)
	assert.Equal(t, 3, cfg.Output.Precision)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoad_PrecisionZero(t *testing.T) {
	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("output:\n  precision: 0\n"), 0o600))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 0, cfg.Output.Precision)
		assert.Equal(t, FormatTable, cfg.Output.DefaultFormat)
	})

	t.Run("env", func(t *testing.T) {
		t.Setenv("FUELCO2_OUTPUT__PRECISION", "0")

		cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.NoError(t, err)
		assert.Equal(t, 0, cfg.Output.Precision)
	})
}

func TestLoad_LoggingCaller(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  caller: true\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.Logging.Caller)
	assert.True(t, cfg.Logging.ToLoggingConfig().Caller)
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("x = 1\n"), 0o600))

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := New()
	cfg.Output.DefaultFormat = FormatChart
	cfg.SetConfigPath(path)
	require.NoError(t, cfg.Save())

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, FormatChart, loaded.Output.DefaultFormat)
}

func TestSave_NoPath(t *testing.T) {
	assert.Error(t, New().Save())
}

func TestGlobalConfig(t *testing.T) {
	ResetGlobalConfigForTest()
	t.Cleanup(ResetGlobalConfigForTest)

	assert.Equal(t, FormatTable, GetDefaultOutputFormat())

	cfg := New()
	cfg.Output.Locale = "ru"
	cfg.Output.Precision = 1
	cfg.Metrics.Textfile = "m.prom"
	SetGlobalConfig(cfg)
	assert.Equal(t, "ru", GetLocale())
	assert.Equal(t, 1, GetOutputPrecision())
	assert.Equal(t, "m.prom", GetMetricsTextfile())
}

func TestGetConfigDir_Env(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("FUELCO2_HOME", dir)

	got, err := GetConfigDir()
	require.NoError(t, err)
	assert.Equal(t, dir, got)

	path, err := DefaultConfigPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "config.yaml"), path)
}

func TestToLoggingConfig(t *testing.T) {
	lc := LoggingConfig{Level: "warn", Format: "console"}
	got := lc.ToLoggingConfig()
	assert.Equal(t, logging.OutputStderr, got.Output)

	lc.File = "/var/log/fuelco2.log"
	got = lc.ToLoggingConfig()
	assert.Equal(t, logging.OutputFile, got.Output)
	assert.Equal(t, "/var/log/fuelco2.log", got.File)
}

func TestEnsureLogDir(t *testing.T) {
	ResetGlobalConfigForTest()
	t.Cleanup(ResetGlobalConfigForTest)

	cfg := New()
	cfg.Logging.File = filepath.Join(t.TempDir(), "logs", "fuelco2.log")
	SetGlobalConfig(cfg)

	require.NoError(t, EnsureLogDir())
	info, err := os.Stat(filepath.Dir(cfg.Logging.File))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
