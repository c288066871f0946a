package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/siutin/scheme-go/lisp"
	"github.com/siutin/scheme-go/parser"
	"github.com/siutin/scheme-go/repl"
	"gopkg.in/yaml.v3"
)

// Config is the contents of a configuration file.
type Config struct {
	Prompt         string `yaml:"prompt"`
	HistoryFile    string `yaml:"history-file"`
	LogLevel       string `yaml:"log-level"`
	ArgumentErrors string `yaml:"argument-errors"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Prompt:         repl.DefaultPrompt,
		LogLevel:       "warn",
		ArgumentErrors: lisp.AbortOnArgError.String(),
	}
}

// LoadConfig reads a YAML configuration file.  Settings missing from the file
// keep their default values.
func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodeConfig(f)
}

// DecodeConfig reads YAML configuration from r.  Unknown keys are rejected.
func DecodeConfig(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	err := decoder.Decode(cfg)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Logger returns a logger writing records at or above the configured level
// to w.
func (c *Config) Logger(w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(c.LogLevel))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), nil
}

// NewEnv returns an initialized user environment configured by c.  The
// environment prints to stdout and logs to stderr.
func (c *Config) NewEnv(stdout, stderr io.Writer) (*lisp.LEnv, error) {
	logger, err := c.Logger(stderr)
	if err != nil {
		return nil, err
	}
	policy, err := lisp.ParseArgumentPolicy(c.ArgumentErrors)
	if err != nil {
		return nil, err
	}
	env := lisp.NewEnv(nil)
	err = lisp.InitializeUserEnv(env,
		lisp.WithReader(parser.NewReader()),
		lisp.WithStdout(stdout),
		lisp.WithLogger(logger),
		lisp.WithArgumentPolicy(policy),
	)
	if err != nil {
		return nil, err
	}
	return env, nil
}
