// Package config loads YAML files into typed configuration structs.
package config

import (
	"context"
	"fmt"
	"os"
	"vigenere/internal/ctxlog"
	"vigenere/internal/db"
	"vigenere/internal/server"

	"github.com/goccy/go-yaml"
)

// Config is the file shared by vigenered and keys.
type Config struct {
	Server server.Config `yaml:"server"`
	DB     db.Config     `yaml:"db"`
	LogDir string        `yaml:"logDir"`
}

// Load decodes filename into a T. Unknown fields are an error.
func Load[T any](ctx context.Context, filename string) (T, error) {
	var v T

	file, err := os.Open(filename)
	if err != nil {
		return v, fmt.Errorf("open %q: %w", filename, err)
	}
	defer ctxlog.Close(ctx, "config file", file)

	dec := yaml.NewDecoder(file, yaml.Strict())

	err = dec.Decode(&v)
	if err != nil {
		return v, fmt.Errorf("yaml: %w", err)
	}

	return v, nil
}
