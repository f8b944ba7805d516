package config

import (
	"fmt"
	"os"
)

type Config struct {
	// HTTP server
	Port   string
	APIKey string // empty disables authentication

	// Schema input
	SchemaPath string

	// Document output
	Output string
	Format string // "markdown" or "docx"
}

func Load() Config {
	return Config{
		Port:       envOr("PORT", "8091"),
		APIKey:     os.Getenv("TYPEDOC_API_KEY"),
		SchemaPath: os.Getenv("TYPEDOC_SCHEMA"),
		Output:     envOr("TYPEDOC_OUTPUT", "models.md"),
		Format:     envOr("TYPEDOC_FORMAT", "markdown"),
	}
}

func (c Config) Validate() error {
	if c.Format != "markdown" && c.Format != "docx" {
		return fmt.Errorf("unsupported output format %q (want markdown or docx)", c.Format)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
