// ABOUTME: Layered configuration: defaults, YAML config file, HYPERGALLERY_* environment, then flags.
// ABOUTME: Produces the explicit Config handed to the web server at startup.
package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// localConfigFile is looked up in the working directory when -config is not given.
const localConfigFile = "hypergallery.yaml"

var (
	ErrInvalidPort = errors.New("port must be between 1 and 65535")
	ErrEmptyRoot   = errors.New("example root must not be empty")
)

// Config is the resolved server configuration.
type Config struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
	Root string `yaml:"root"`
}

func defaultConfig() Config {
	return Config{
		Host: "localhost",
		Port: 8000,
		Root: "example_isomorphisms",
	}
}

// Addr returns the host:port listen address.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// URL returns the address a local browser should open. Wildcard binds are
// reported as localhost.
func (c Config) URL() string {
	host := c.Host
	switch host {
	case "", "0.0.0.0", "::":
		host = "localhost"
	}
	return "http://" + net.JoinHostPort(host, strconv.Itoa(c.Port))
}

// Validate checks that the config can be served.
func (c Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("%w: %d", ErrInvalidPort, c.Port)
	}
	if c.Root == "" {
		return ErrEmptyRoot
	}
	return nil
}

// resolveConfig layers the config sources in increasing precedence:
// defaults, config file, environment, explicit flags.
func resolveConfig(opts options) (Config, error) {
	cfg := defaultConfig()

	if opts.configPath != "" {
		found, err := loadConfigFile(opts.configPath, &cfg)
		if err != nil {
			return Config{}, err
		}
		if !found {
			return Config{}, fmt.Errorf("config file %s: %w", opts.configPath, fs.ErrNotExist)
		}
	} else {
		for _, path := range configFileCandidates() {
			found, err := loadConfigFile(path, &cfg)
			if err != nil {
				return Config{}, err
			}
			if found {
				break
			}
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}

	if opts.set["host"] {
		cfg.Host = opts.host
	}
	if opts.set["port"] {
		cfg.Port = opts.port
	}
	if opts.set["root"] {
		cfg.Root = opts.root
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// configFileCandidates lists the implicit config locations in lookup order.
func configFileCandidates() []string {
	candidates := []string{localConfigFile}
	if dir, err := defaultConfigDir(); err == nil {
		candidates = append(candidates, filepath.Join(dir, "config.yaml"))
	}
	return candidates
}

// loadConfigFile decodes a YAML file over cfg. Fields absent from the file
// keep their current values. Returns false if the file does not exist.
func loadConfigFile(path string, cfg *Config) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("reading config %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return true, nil
}

// applyEnv overrides cfg with any HYPERGALLERY_* variables that are set.
func applyEnv(cfg *Config) error {
	if v := os.Getenv("HYPERGALLERY_HOST"); v != "" {
		cfg.Host = v
	}
	if v := os.Getenv("HYPERGALLERY_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("HYPERGALLERY_PORT=%q: %w", v, ErrInvalidPort)
		}
		cfg.Port = port
	}
	if v := os.Getenv("HYPERGALLERY_ROOT"); v != "" {
		cfg.Root = v
	}
	return nil
}
