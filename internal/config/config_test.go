package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jonathan/resume-tailor/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	content := `{
		"backend_url": "https://tailor.example.com",
		"timeout_seconds": 45,
		"strict_schema": true,
		"log": {"level": "debug", "format": "json"}
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "https://tailor.example.com", cfg.BackendURL)
	assert.Equal(t, 45, cfg.TimeoutSeconds)
	assert.True(t, cfg.Strict())
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadConfig_ValidYAML(t *testing.T) {
	content := "backend_url: http://10.0.0.5:8000\ntimeout_seconds: 10\nlog:\n  level: warn\n"

	tmpFile := filepath.Join(t.TempDir(), "config.yaml")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)

	assert.Equal(t, "http://10.0.0.5:8000", cfg.BackendURL)
	assert.Equal(t, 10, cfg.TimeoutSeconds)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(`{ invalid json }`), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.yml")
	err := os.WriteFile(tmpFile, []byte("backend_url: [unclosed"), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config YAML")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "empty config", cfg: Config{}},
		{name: "defaults", cfg: Defaults()},
		{name: "not a url", cfg: Config{BackendURL: "localhost"}, wantErr: "config error"},
		{name: "wrong scheme", cfg: Config{BackendURL: "ftp://example.com"}, wantErr: "http or https"},
		{name: "negative timeout", cfg: Config{TimeoutSeconds: -1}, wantErr: "TimeoutSeconds"},
		{name: "bad log format", cfg: Config{Log: logger.Config{Format: "xml"}}, wantErr: "log format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestFromEnv(t *testing.T) {
	env := map[string]string{BackendURLEnv: " https://api.example.com/ ", "LOG_LEVEL": "debug"}
	cfg := FromEnv(func(k string) string { return env[k] })

	assert.Equal(t, "https://api.example.com/", cfg.BackendURL)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestResolution_DefaultWhenUnset(t *testing.T) {
	env := FromEnv(func(string) string { return "" })
	cfg := Config{}.MergeWithDefaults(env).MergeWithDefaults(Defaults())

	assert.Equal(t, DefaultBackendURL, cfg.BackendURL)
	assert.Equal(t, "http://localhost:8000", cfg.BaseURL())
}

func TestResolution_Precedence(t *testing.T) {
	flags := Config{BackendURL: "http://flag:1"}
	env := Config{BackendURL: "http://env:2"}
	file := Config{BackendURL: "http://file:3", TimeoutSeconds: 7, StrictSchema: Bool(true)}

	cfg := flags.MergeWithDefaults(env).MergeWithDefaults(file).MergeWithDefaults(Defaults())
	assert.Equal(t, "http://flag:1", cfg.BackendURL)
	assert.Equal(t, 7*time.Second, cfg.Timeout())
	assert.True(t, cfg.Strict())

	// An explicit false beats a lower layer's true.
	cfg = Config{StrictSchema: Bool(false)}.MergeWithDefaults(env).MergeWithDefaults(file).MergeWithDefaults(Defaults())
	assert.False(t, cfg.Strict())

	cfg = Config{}.MergeWithDefaults(env).MergeWithDefaults(file).MergeWithDefaults(Defaults())
	assert.Equal(t, "http://env:2", cfg.BackendURL)

	cfg = Config{}.MergeWithDefaults(Config{}).MergeWithDefaults(file).MergeWithDefaults(Defaults())
	assert.Equal(t, "http://file:3", cfg.BackendURL)
}

func TestStrict_DefaultsToFalse(t *testing.T) {
	assert.False(t, Config{}.Strict())
	assert.False(t, Defaults().Strict())
	require.NotNil(t, Defaults().StrictSchema)
}

func TestBaseURL_TrimsTrailingSlash(t *testing.T) {
	cfg := Config{BackendURL: "https://api.example.com/"}
	assert.Equal(t, "https://api.example.com", cfg.BaseURL())
}
