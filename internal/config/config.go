package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/odanilov/adminctl/internal/constants"
	"github.com/odanilov/adminctl/internal/logger"
	http_transport "github.com/odanilov/adminctl/internal/transport/http"
)

// Config holds all configuration settings.
type Config struct {
	// BaseURL is the base URL of the admin API.
	BaseURL string `mapstructure:"base_url"`
	// StatePath is the path of the session state file.
	// Empty means the default location under the user's home.
	StatePath string `mapstructure:"state_path"`
	// LogLevel specifies the logging verbosity level.
	LogLevel string `mapstructure:"log_level"`
	// RequestTimeout is the timeout for a single HTTP request (e.g., "30s").
	RequestTimeout string `mapstructure:"request_timeout"`
	// UserAgent is the User-Agent string sent with every request.
	UserAgent string `mapstructure:"user_agent"`
	// MaxLogLength caps dumped request/response data at debug level
	// (humanized byte size, e.g. "1MB").
	MaxLogLength string `mapstructure:"max_log_length"`
	// ParsedLogLevel is the parsed zap log level.
	ParsedLogLevel zapcore.Level
	// ParsedRequestTimeout is the parsed request timeout.
	ParsedRequestTimeout time.Duration
	// ParsedMaxLogLength is the parsed log dump cap in bytes.
	ParsedMaxLogLength uint64
}

const (
	// DefaultConfigFilename is the default name of the configuration file.
	DefaultConfigFilename = ".adminctl.yaml"

	// DefaultLogLevel is the log level used when none is configured.
	DefaultLogLevel = "info"

	// DefaultRequestTimeout is the request timeout used when none is configured.
	DefaultRequestTimeout = "60s"

	// DefaultMaxLogLength is the default maximum size (in bytes) for dumped
	// request/response data.
	DefaultMaxLogLength = 1 * 1024 * 1024 // 1 MB
)

// Static error definitions for better error handling.
var (
	// ErrEmptyBaseURL indicates that the admin API base URL is missing.
	ErrEmptyBaseURL = errors.New("base_url cannot be empty")
	// ErrInvalidBaseURL indicates that the admin API base URL is malformed.
	ErrInvalidBaseURL = errors.New("base_url must be an absolute http(s) URL")
	// ErrUnknownLogLevel indicates that the log level is not recognized.
	ErrUnknownLogLevel = errors.New("unknown log level")
	// ErrInvalidRequestTimeout indicates that the request timeout is invalid.
	ErrInvalidRequestTimeout = errors.New("request_timeout must be positive")
)

// LoadConfig loads configuration settings from a YAML file.
func LoadConfig(configFilename string) (*Config, error) {
	if configFilename == "" {
		configFilename = DefaultConfigFilename
	}

	viper.SetConfigFile(configFilename)

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config from file: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// ValidateConfig checks the configuration for validity, fills defaults
// and sets derived fields.
func ValidateConfig(cfg *Config) error {
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		return ErrEmptyBaseURL
	}

	parsedURL, err := url.Parse(baseURL)
	if err != nil || !parsedURL.IsAbs() || parsedURL.Host == "" {
		return fmt.Errorf("%w: '%s'", ErrInvalidBaseURL, cfg.BaseURL)
	}

	cfg.BaseURL = strings.TrimRight(baseURL, "/")

	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}

	parsedLogLevel, isLogLevelCorrect := logger.ParseLogLevel(cfg.LogLevel)
	if !isLogLevelCorrect {
		return fmt.Errorf("%w: '%s'", ErrUnknownLogLevel, cfg.LogLevel)
	}

	cfg.ParsedLogLevel = parsedLogLevel

	if cfg.RequestTimeout == "" {
		cfg.RequestTimeout = DefaultRequestTimeout
	}

	cfg.ParsedRequestTimeout, err = time.ParseDuration(cfg.RequestTimeout)
	if err != nil {
		return fmt.Errorf("failed to parse request timeout: %w", err)
	}

	if cfg.ParsedRequestTimeout <= 0 {
		return ErrInvalidRequestTimeout
	}

	if cfg.UserAgent == "" {
		cfg.UserAgent = http_transport.DefaultUserAgent
	}

	maxLogLength := strings.TrimSpace(cfg.MaxLogLength)
	if maxLogLength == "" || maxLogLength == "0" {
		cfg.ParsedMaxLogLength = DefaultMaxLogLength
	} else {
		cfg.ParsedMaxLogLength, err = humanize.ParseBytes(maxLogLength)
		if err != nil {
			return fmt.Errorf("failed to parse max log length: %w", err)
		}
	}

	return nil
}

// SaveBaseURL updates the base_url value in the configuration file while
// preserving the original format and key order. A missing file is created.
func SaveBaseURL(cfg *Config) error {
	configFile := getConfigFilePath()

	originalContent, err := os.ReadFile(configFile)
	if err != nil {
		return handleMissingConfigFile(configFile, cfg.BaseURL, err)
	}

	// Parse YAML while preserving order using yaml.Node.
	var node yaml.Node
	if err = yaml.Unmarshal(originalContent, &node); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	updateBaseURLInNode(&node, cfg.BaseURL)

	newContent, err := yaml.Marshal(&node)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}

	if err = os.WriteFile(configFile, newContent, constants.DefaultFilePermissions); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// SetConfigFile records the configuration file path for subsequent
// loads and saves without reading it.
func SetConfigFile(configFilename string) {
	viper.SetConfigFile(configFilename)
}

// getConfigFilePath returns the config file path from viper or the default.
func getConfigFilePath() string {
	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		return DefaultConfigFilename
	}

	return configFile
}

// handleMissingConfigFile creates a new config file if it doesn't exist.
func handleMissingConfigFile(configFile, baseURL string, err error) error {
	if !os.IsNotExist(err) {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	viper.Set("base_url", baseURL)

	if err = viper.SafeWriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}

	return nil
}

// updateBaseURLInNode updates the base_url value in the YAML node tree.
func updateBaseURLInNode(node *yaml.Node, baseURL string) {
	// The root node is a document node, content[0] is the actual map.
	if len(node.Content) == 0 || node.Content[0].Kind != yaml.MappingNode {
		return
	}

	mapNode := node.Content[0]

	// Key-value pairs are stored as alternating nodes.
	for i := 0; i+1 < len(mapNode.Content); i += 2 {
		keyNode := mapNode.Content[i]
		valueNode := mapNode.Content[i+1]

		if keyNode.Value == "base_url" {
			valueNode.Value = baseURL

			if valueNode.Style == 0 {
				valueNode.Style = yaml.DoubleQuotedStyle
			}

			return
		}
	}

	// Key absent: append it to the end of the mapping.
	mapNode.Content = append(mapNode.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: "base_url"},
		&yaml.Node{Kind: yaml.ScalarNode, Value: baseURL, Style: yaml.DoubleQuotedStyle},
	)
}
