/*
Package config manages TOML config for the unscramble services.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/letterlab/unscramble/internal/utils"
	"github.com/letterlab/unscramble/pkg/unscramble"
)

// appName decides the config directory (~/.config/unscramble).
const appName = "unscramble"

// Config holds the entire config structure
type Config struct {
	Engine EngineConfig `toml:"engine"`
	Dict   DictConfig   `toml:"dict"`
	Server ServerConfig `toml:"server"`
	CLI    CliConfig    `toml:"cli"`
}

// EngineConfig carries the request defaults applied when a caller leaves
// a field unset.
type EngineConfig struct {
	DefaultMode         string `toml:"default_mode"`
	MinWordLength       int    `toml:"min_word_length"`
	MaxSuggestions      int    `toml:"max_suggestions"`
	PreserveSpaces      bool   `toml:"preserve_spaces"`
	PreservePunctuation bool   `toml:"preserve_punctuation"`
	SuggestAlternatives bool   `toml:"suggest_alternatives"`
	SortByLength        bool   `toml:"sort_by_length"`
}

// DictConfig holds dictionary options.
type DictConfig struct {
	Path     string `toml:"path"`
	MaxWords int    `toml:"max_words"`
}

// ServerConfig has IPC server related options.
type ServerConfig struct {
	MaxTextLength     int `toml:"max_text_length"`
	MaxSuggestionsCap int `toml:"max_suggestions_cap"`
}

// CliConfig holds cli interface options.
type CliConfig struct {
	MaxTextLength int `toml:"max_text_length"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Engine: EngineConfig{
			DefaultMode:         string(unscramble.ModeWord),
			MinWordLength:       3,
			MaxSuggestions:      5,
			PreserveSpaces:      true,
			PreservePunctuation: true,
			SuggestAlternatives: true,
			SortByLength:        true,
		},
		Dict: DictConfig{
			Path:     "",
			MaxWords: 0,
		},
		Server: ServerConfig{
			MaxTextLength:     4096,
			MaxSuggestionsCap: 64,
		},
		CLI: CliConfig{
			MaxTextLength: 256,
		},
	}
}

// Request builds an engine request from the configured defaults.
// The mode falls back to word mode if the configured one is invalid;
// that gets caught and logged once at load time, not per call.
func (c *Config) Request(text string) unscramble.Request {
	mode, err := unscramble.ParseMode(c.Engine.DefaultMode)
	if err != nil {
		mode = unscramble.ModeWord
	}
	return unscramble.Request{
		Text:                text,
		Mode:                mode,
		MinWordLength:       c.Engine.MinWordLength,
		PreserveSpaces:      c.Engine.PreserveSpaces,
		PreservePunctuation: c.Engine.PreservePunctuation,
		SuggestAlternatives: c.Engine.SuggestAlternatives,
		SortByLength:        c.Engine.SortByLength,
		MaxSuggestions:      c.Engine.MaxSuggestions,
	}
}

// Validate normalizes out-of-range values back to defaults.
func (c *Config) Validate() {
	defaults := DefaultConfig()
	if _, err := unscramble.ParseMode(c.Engine.DefaultMode); err != nil {
		log.Warnf("Invalid default_mode %q in config, using %q", c.Engine.DefaultMode, defaults.Engine.DefaultMode)
		c.Engine.DefaultMode = defaults.Engine.DefaultMode
	}
	if c.Engine.MinWordLength < 1 {
		log.Warnf("Invalid min_word_length %d in config, using %d", c.Engine.MinWordLength, defaults.Engine.MinWordLength)
		c.Engine.MinWordLength = defaults.Engine.MinWordLength
	}
	if c.Engine.MaxSuggestions < 0 {
		c.Engine.MaxSuggestions = defaults.Engine.MaxSuggestions
	}
	if c.Server.MaxTextLength < 1 {
		c.Server.MaxTextLength = defaults.Server.MaxTextLength
	}
	if c.CLI.MaxTextLength < 1 {
		c.CLI.MaxTextLength = defaults.CLI.MaxTextLength
	}
}

// GetDefaultConfigPath returns the default path for config.toml
func GetDefaultConfigPath() string {
	return filepath.Join(utils.GetConfigDir(appName), "config.toml")
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from --config flag
// 2. Default path: [UserConfigDir]/unscramble/config.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string) {
	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			config, err := LoadConfig(customConfigPath)
			if err == nil {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath
			}
			log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
		} else {
			log.Warnf("Custom config file not found at %s: %v. Trying default path...", customConfigPath, statErr)
		}
	}

	defaultPath := GetDefaultConfigPath()
	config, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), ""
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	config, err := LoadConfig(configPath)
	if err != nil {
		log.Warnf("Failed to load config from %s: %v. Using built-in defaults...", configPath, err)
		return DefaultConfig(), nil
	}
	return config, nil
}

// LoadConfig loads from a TOML file
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	config.Validate()
	return config, nil
}

// tryPartialParse salvages valid sections from a broken TOML file
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if engineSection, ok := utils.ExtractSection(tempConfig, "engine"); ok {
		extractEngineConfig(engineSection, &config.Engine)
	}
	if dictSection, ok := utils.ExtractSection(tempConfig, "dict"); ok {
		extractDictConfig(dictSection, &config.Dict)
	}
	if serverSection, ok := utils.ExtractSection(tempConfig, "server"); ok {
		extractServerConfig(serverSection, &config.Server)
	}
	if cliSection, ok := utils.ExtractSection(tempConfig, "cli"); ok {
		extractCliConfig(cliSection, &config.CLI)
	}
	config.Validate()
	return config, nil
}

// extractEngineConfig extracts engine defaults from a map
func extractEngineConfig(data map[string]any, engine *EngineConfig) {
	if val, ok := utils.ExtractString(data, "default_mode"); ok {
		engine.DefaultMode = val
	}
	if val, ok := utils.ExtractInt64(data, "min_word_length"); ok {
		engine.MinWordLength = val
	}
	if val, ok := utils.ExtractInt64(data, "max_suggestions"); ok {
		engine.MaxSuggestions = val
	}
	if val, ok := utils.ExtractBool(data, "preserve_spaces"); ok {
		engine.PreserveSpaces = val
	}
	if val, ok := utils.ExtractBool(data, "preserve_punctuation"); ok {
		engine.PreservePunctuation = val
	}
	if val, ok := utils.ExtractBool(data, "suggest_alternatives"); ok {
		engine.SuggestAlternatives = val
	}
	if val, ok := utils.ExtractBool(data, "sort_by_length"); ok {
		engine.SortByLength = val
	}
}

// extractDictConfig extracts dictionary configuration from a map
func extractDictConfig(data map[string]any, dict *DictConfig) {
	if val, ok := utils.ExtractString(data, "path"); ok {
		dict.Path = val
	}
	if val, ok := utils.ExtractInt64(data, "max_words"); ok {
		dict.MaxWords = val
	}
}

// extractServerConfig extracts server configuration from a map
func extractServerConfig(data map[string]any, server *ServerConfig) {
	if val, ok := utils.ExtractInt64(data, "max_text_length"); ok {
		server.MaxTextLength = val
	}
	if val, ok := utils.ExtractInt64(data, "max_suggestions_cap"); ok {
		server.MaxSuggestionsCap = val
	}
}

// extractCliConfig extracts CLI config from a map
func extractCliConfig(data map[string]any, cli *CliConfig) {
	if val, ok := utils.ExtractInt64(data, "max_text_length"); ok {
		cli.MaxTextLength = val
	}
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}

// GetActiveConfigPath returns the absolute path of loaded config file
func GetActiveConfigPath(configPath string) string {
	if configPath == "" {
		return GetDefaultConfigPath()
	}
	return utils.GetAbsolutePath(configPath)
}
