package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

// TestConfigStruct tests the Config struct fields.
func TestConfigStruct(t *testing.T) {
	t.Parallel()

	cfg := &Config{
		BaseURL:        "https://admin.example.com",
		StatePath:      "/tmp/state.json",
		LogLevel:       "info",
		RequestTimeout: "30s",
		UserAgent:      "adminctl/test",
		MaxLogLength:   "1MB",
	}

	assert.Equal(t, "https://admin.example.com", cfg.BaseURL)
	assert.Equal(t, "/tmp/state.json", cfg.StatePath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "30s", cfg.RequestTimeout)
	assert.Equal(t, "adminctl/test", cfg.UserAgent)
	assert.Equal(t, "1MB", cfg.MaxLogLength)
}

// TestLoadConfig tests the LoadConfig function.
//
//nolint:paralleltest // Viper keeps global state, so these cases must not run in parallel.
func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name          string
		configContent string
		expectError   bool
	}{
		{
			name: "valid config file",
			configContent: `
base_url: "https://admin.example.com"
log_level: "debug"
request_timeout: "30s"
`,
			expectError: false,
		},
		{
			name:          "malformed yaml",
			configContent: "base_url: [unterminated",
			expectError:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()

			configFile := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(configFile, []byte(tt.configContent), 0o600))

			cfg, err := LoadConfig(configFile)
			if tt.expectError {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "https://admin.example.com", cfg.BaseURL)
			assert.Equal(t, "debug", cfg.LogLevel)
		})
	}
}

// TestLoadConfig_MissingFile tests loading a nonexistent config file.
//
//nolint:paralleltest // Viper keeps global state.
func TestLoadConfig_MissingFile(t *testing.T) {
	viper.Reset()

	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

// TestValidateConfig tests the ValidateConfig function.
func TestValidateConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		cfg           *Config
		expectedError error
		check         func(*testing.T, *Config)
	}{
		{
			name: "valid minimal config fills defaults",
			cfg:  &Config{BaseURL: "https://admin.example.com"},
			check: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, zapcore.InfoLevel, cfg.ParsedLogLevel)
				assert.Equal(t, 60*time.Second, cfg.ParsedRequestTimeout)
				assert.Equal(t, uint64(DefaultMaxLogLength), cfg.ParsedMaxLogLength)
				assert.NotEmpty(t, cfg.UserAgent)
			},
		},
		{
			name: "trailing slash trimmed from base URL",
			cfg:  &Config{BaseURL: "https://admin.example.com/"},
			check: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "https://admin.example.com", cfg.BaseURL)
			},
		},
		{
			name:          "empty base URL",
			cfg:           &Config{},
			expectedError: ErrEmptyBaseURL,
		},
		{
			name:          "relative base URL",
			cfg:           &Config{BaseURL: "admin.example.com"},
			expectedError: ErrInvalidBaseURL,
		},
		{
			name:          "unknown log level",
			cfg:           &Config{BaseURL: "https://admin.example.com", LogLevel: "loud"},
			expectedError: ErrUnknownLogLevel,
		},
		{
			name: "invalid request timeout",
			cfg:  &Config{BaseURL: "https://admin.example.com", RequestTimeout: "soon"},
		},
		{
			name:          "negative request timeout",
			cfg:           &Config{BaseURL: "https://admin.example.com", RequestTimeout: "-5s"},
			expectedError: ErrInvalidRequestTimeout,
		},
		{
			name: "humanized max log length",
			cfg:  &Config{BaseURL: "https://admin.example.com", MaxLogLength: "2KB"},
			check: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, uint64(2000), cfg.ParsedMaxLogLength)
			},
		},
		{
			name: "invalid max log length",
			cfg:  &Config{BaseURL: "https://admin.example.com", MaxLogLength: "plenty"},
		},
		{
			name: "debug log level parsed",
			cfg:  &Config{BaseURL: "https://admin.example.com", LogLevel: "debug"},
			check: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, zapcore.DebugLevel, cfg.ParsedLogLevel)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateConfig(tt.cfg)

			switch {
			case tt.expectedError != nil:
				require.ErrorIs(t, err, tt.expectedError)
			case tt.check != nil:
				require.NoError(t, err)
				tt.check(t, tt.cfg)
			default:
				require.Error(t, err)
			}
		})
	}
}

// TestSaveBaseURL tests updating the base URL in an existing config file
// without disturbing key order.
//
//nolint:paralleltest // Viper keeps global state.
func TestSaveBaseURL(t *testing.T) {
	viper.Reset()

	configFile := filepath.Join(t.TempDir(), "config.yaml")
	original := `log_level: "debug"
base_url: "https://old.example.com"
request_timeout: "30s"
`
	require.NoError(t, os.WriteFile(configFile, []byte(original), 0o600))

	viper.SetConfigFile(configFile)
	require.NoError(t, viper.ReadInConfig())

	cfg := &Config{BaseURL: "https://new.example.com"}
	require.NoError(t, SaveBaseURL(cfg))

	content, err := os.ReadFile(configFile)
	require.NoError(t, err)

	assert.Contains(t, string(content), `base_url: "https://new.example.com"`)
	assert.NotContains(t, string(content), "old.example.com")

	// Key order is preserved: log_level still comes first.
	assert.Less(t,
		strings.Index(string(content), "log_level"),
		strings.Index(string(content), "base_url"))
}

// TestSaveBaseURL_CreatesMissingFile tests that a missing config file is created.
//
//nolint:paralleltest // Viper keeps global state.
func TestSaveBaseURL_CreatesMissingFile(t *testing.T) {
	viper.Reset()

	configFile := filepath.Join(t.TempDir(), "config.yaml")
	viper.SetConfigFile(configFile)

	cfg := &Config{BaseURL: "https://fresh.example.com"}
	require.NoError(t, SaveBaseURL(cfg))

	content, err := os.ReadFile(configFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), "fresh.example.com")
}
