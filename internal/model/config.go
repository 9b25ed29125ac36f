package model

import "time"

// Config holds the complete orderlex configuration.
type Config struct {
	Annotator   AnnotatorConfig   `yaml:"annotator" json:"annotator"`
	Catalogs    CatalogsConfig    `yaml:"catalogs" json:"catalogs"`
	Matching    MatchingConfig    `yaml:"matching" json:"matching"`
	Cache       CacheConfig       `yaml:"cache" json:"cache"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" json:"concurrency"`
	Output      OutputConfig      `yaml:"output" json:"output"`
}

// AnnotatorConfig selects and tunes the linguistic annotator.
type AnnotatorConfig struct {
	// Provider name: "prose" (local, default) or "openai"
	Provider string `yaml:"provider" json:"provider"`

	// Model name for remote providers (e.g. gpt-4o-mini)
	Model string `yaml:"model" json:"model"`

	// APIKey for remote providers (prefer the OPENAI_API_KEY env var)
	APIKey string `yaml:"api_key,omitempty" json:"api_key,omitempty"`

	// BaseURL overrides the provider endpoint
	BaseURL string `yaml:"base_url,omitempty" json:"base_url,omitempty"`

	// Timeout for a single remote annotation call
	Timeout time.Duration `yaml:"timeout" json:"timeout"`

	// RequestsPerSecond / Burst rate-limit remote annotation calls
	RequestsPerSecond float64 `yaml:"requests_per_second" json:"requests_per_second"`
	Burst             int     `yaml:"burst" json:"burst"`
}

// CatalogsConfig points at the externally supplied catalog files. Empty
// paths fall back to the built-in defaults.
type CatalogsConfig struct {
	ModelCodesPath    string `yaml:"model_codes_path,omitempty" json:"model_codes_path,omitempty"`
	AbbreviationsPath string `yaml:"abbreviations_path,omitempty" json:"abbreviations_path,omitempty"`
	VocabularyPath    string `yaml:"vocabulary_path,omitempty" json:"vocabulary_path,omitempty"`
}

// MatchingConfig tunes the fuzzy matchers.
type MatchingConfig struct {
	// AbbreviationThreshold is the minimum partial-overlap score for an
	// abbreviation phrase to count as matched (0-100)
	AbbreviationThreshold int `yaml:"abbreviation_threshold" json:"abbreviation_threshold"`
}

// CacheConfig controls the interpretation result cache.
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled" json:"enabled"`
	Dir       string        `yaml:"dir" json:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl" json:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl" json:"disk_ttl"`
}

// ConcurrencyConfig controls batch processing.
type ConcurrencyConfig struct {
	Workers int `yaml:"workers" json:"workers"`
}

// OutputConfig controls CLI rendering.
type OutputConfig struct {
	Verbose bool `yaml:"verbose" json:"verbose"`
	Pretty  bool `yaml:"pretty" json:"pretty"`
}

// DefaultConfig returns the built-in defaults. The abbreviation
// threshold of 85 is part of the matching contract, not a tunable most
// deployments should touch.
func DefaultConfig() *Config {
	return &Config{
		Annotator: AnnotatorConfig{
			Provider:          "prose",
			Model:             "gpt-4o-mini",
			Timeout:           30 * time.Second,
			RequestsPerSecond: 2,
			Burst:             2,
		},
		Matching: MatchingConfig{
			AbbreviationThreshold: 85,
		},
		Cache: CacheConfig{
			Enabled:   false,
			Dir:       "",
			MemoryTTL: 15 * time.Minute,
			DiskTTL:   24 * time.Hour,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		Output: OutputConfig{
			Pretty: true,
		},
	}
}
