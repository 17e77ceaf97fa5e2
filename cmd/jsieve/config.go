package main

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

const defaultBufferSize = 64 * 1024

// fileConfig mirrors the YAML config file, e.g.
//
//	matches:
//	  - '{"users"}[]{"name"}'
//	  - '**{"id"}'
//	depth: 1-3
//	separator: "\n"
//	with_path: true
//	buffer_size: 65536
type fileConfig struct {
	Matches    []string `yaml:"matches"`
	Depth      string   `yaml:"depth"`
	Separator  string   `yaml:"separator"`
	WithPath   bool     `yaml:"with_path"`
	BufferSize int      `yaml:"buffer_size"`
}

func loadConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
