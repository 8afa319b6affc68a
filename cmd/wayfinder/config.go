package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ServerConfig configures the serve command. All fields have defaults;
// command-line flags override file values.
type ServerConfig struct {
	Addr            string `yaml:"addr"`
	MapFile         string `yaml:"map_file"`
	DefaultStrategy string `yaml:"default_strategy"`
	MaxExpansions   int    `yaml:"max_expansions"`
}

func defaultServerConfig() ServerConfig {
	return ServerConfig{
		Addr:            ":8080",
		DefaultStrategy: "a_star",
	}
}

// loadServerConfig reads a YAML config file on top of the defaults.
func loadServerConfig(path string) (ServerConfig, error) {
	config := defaultServerConfig()
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("parse config %s: %w", path, err)
	}
	if config.Addr == "" {
		config.Addr = ":8080"
	}
	if config.DefaultStrategy == "" {
		config.DefaultStrategy = "a_star"
	}
	return config, nil
}
