// Package file loads and persists refbase configuration as TOML.
// Configuration lives in ~/.refbase/config.toml by default; the OpenAI
// API key may also arrive via the OPENAI_API_KEY environment variable,
// which takes precedence over the file.
package file

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/refstack-labs/refbase-cli/internal/chunker"
	"github.com/refstack-labs/refbase-cli/internal/core/domain"
	"github.com/refstack-labs/refbase-cli/internal/core/services"
)

// envAPIKey overrides the embedding API key from the environment.
const envAPIKey = "OPENAI_API_KEY"

// configFileName is the TOML file within the config directory.
const configFileName = "config.toml"

// Config is the full refbase configuration.
type Config struct {
	Drive     DriveConfig     `toml:"drive"`
	Embedding EmbeddingConfig `toml:"embedding"`
	Chunking  ChunkingConfig  `toml:"chunking"`
	Retrieval RetrievalConfig `toml:"retrieval"`
	Reindex   ReindexConfig   `toml:"reindex"`
	Storage   StorageConfig   `toml:"storage"`
}

// DriveConfig configures the Google Drive document source.
type DriveConfig struct {
	// FolderID is the Drive folder holding the curated collection.
	FolderID string `toml:"folder_id"`

	// CredentialsFile points at a Google credentials JSON file.
	CredentialsFile string `toml:"credentials_file"`
}

// EmbeddingConfig configures the embedding provider.
type EmbeddingConfig struct {
	APIKey     string `toml:"api_key"`
	BaseURL    string `toml:"base_url"`
	Model      string `toml:"model"`
	Dimensions int    `toml:"dimensions"`
}

// ChunkingConfig configures the text chunker.
type ChunkingConfig struct {
	MaxChars     int `toml:"max_chars"`
	OverlapChars int `toml:"overlap_chars"`
}

// RetrievalConfig configures the retrieval engine.
type RetrievalConfig struct {
	TopK        int     `toml:"top_k"`
	MaxDistance float64 `toml:"max_distance"`
	MinResults  int     `toml:"min_results"`
}

// ReindexConfig configures the reindex run.
type ReindexConfig struct {
	Concurrency int `toml:"concurrency"`
}

// StorageConfig configures the SQLite store.
type StorageConfig struct {
	// DataDir holds the database file. Empty means ~/.refbase/data.
	DataDir string `toml:"data_dir"`
}

// DefaultConfigDir returns ~/.refbase.
func DefaultConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".refbase"), nil
}

// Default returns a configuration populated with every default value.
func Default() *Config {
	return &Config{
		Chunking: ChunkingConfig{
			MaxChars:     chunker.DefaultMaxChars,
			OverlapChars: chunker.DefaultOverlapChars,
		},
		Retrieval: RetrievalConfig{
			TopK:        services.DefaultTopK,
			MaxDistance: services.DefaultMaxDistance,
			MinResults:  services.DefaultMinResults,
		},
		Reindex: ReindexConfig{
			Concurrency: services.DefaultConcurrency,
		},
	}
}

// Load reads the configuration from configDir, applying defaults for
// any value the file omits. A missing file yields the defaults. If
// configDir is empty, ~/.refbase is used.
func Load(configDir string) (*Config, error) {
	if configDir == "" {
		dir, err := DefaultConfigDir()
		if err != nil {
			return nil, err
		}
		configDir = dir
	}

	cfg := Default()

	data, err := os.ReadFile(filepath.Join(configDir, configFileName))
	switch {
	case os.IsNotExist(err):
		// No config file yet - run on defaults and the environment.
	case err != nil:
		return nil, fmt.Errorf("reading config: %w", err)
	default:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	}

	if key := os.Getenv(envAPIKey); key != "" {
		cfg.Embedding.APIKey = key
	}

	cfg.applyDefaults()
	return cfg, nil
}

// Save writes the configuration to configDir with restricted
// permissions, creating the directory if needed.
func Save(configDir string, cfg *Config) error {
	if configDir == "" {
		dir, err := DefaultConfigDir()
		if err != nil {
			return err
		}
		configDir = dir
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	// The file may hold an API key.
	if err := os.WriteFile(filepath.Join(configDir, configFileName), data, 0600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// applyDefaults fills any zero value with its default.
func (c *Config) applyDefaults() {
	if c.Chunking.MaxChars <= 0 {
		c.Chunking.MaxChars = chunker.DefaultMaxChars
	}
	if c.Chunking.OverlapChars <= 0 {
		c.Chunking.OverlapChars = chunker.DefaultOverlapChars
	}
	if c.Retrieval.TopK <= 0 {
		c.Retrieval.TopK = services.DefaultTopK
	}
	if c.Retrieval.MaxDistance <= 0 {
		c.Retrieval.MaxDistance = services.DefaultMaxDistance
	}
	if c.Retrieval.MinResults <= 0 {
		c.Retrieval.MinResults = services.DefaultMinResults
	}
	if c.Reindex.Concurrency <= 0 {
		c.Reindex.Concurrency = services.DefaultConcurrency
	}
}

// ValidateForReindex checks that everything a reindex run needs is
// configured.
func (c *Config) ValidateForReindex() error {
	if c.Drive.FolderID == "" {
		return fmt.Errorf("%w: drive.folder_id", domain.ErrConfigIncomplete)
	}
	if c.Drive.CredentialsFile == "" {
		return fmt.Errorf("%w: drive.credentials_file", domain.ErrConfigIncomplete)
	}
	return c.ValidateForRetrieve()
}

// ValidateForRetrieve checks that everything a retrieval call needs is
// configured.
func (c *Config) ValidateForRetrieve() error {
	if c.Embedding.APIKey == "" {
		return fmt.Errorf("%w: embedding.api_key (or %s)", domain.ErrConfigIncomplete, envAPIKey)
	}
	return nil
}
