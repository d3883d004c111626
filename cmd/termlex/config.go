package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Core   CoreConfig        `toml:"core"`
	Lexer  LexerConfig       `toml:"lexer"`
	Colors map[string]string `toml:"colors"`
}

type CoreConfig struct {
	LogLevel string `toml:"log_level"`
	Color    string `toml:"color"` // auto, always or never
}

type LexerConfig struct {
	ValueSeparate   bool `toml:"value_separate"`
	EscapeSequences bool `toml:"escape_sequences"`
}

func NewDefaultConfig() *Config {
	return &Config{
		Core: CoreConfig{
			LogLevel: "info",
			Color:    "auto",
		},
		Lexer: LexerConfig{
			ValueSeparate:   false,
			EscapeSequences: false,
		},
		Colors: map[string]string{},
	}
}

func LoadConfigFromFile(path string) (*Config, error) {
	config := NewDefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return config, nil // no config file, return defaults
	}

	if _, err := toml.DecodeFile(path, config); err != nil {
		return nil, fmt.Errorf("failed to decode TOML config: %w", err)
	}

	return config, nil
}
