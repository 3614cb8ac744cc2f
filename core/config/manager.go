// Package config loads figgen configuration from YAML with environment
// overrides. Snapshots are swapped atomically so concurrent readers always
// see a consistent config.
package config

import (
	"fmt"
	"os"
	"strconv"
	"sync"
	"sync/atomic"
	"time"
	"unsafe"

	"gopkg.in/yaml.v3"

	"github.com/salt-lab/figgen/core/providers"
)

// Config is the full figgen configuration.
type Config struct {
	Provider  string                    `yaml:"provider"` // "openai" or "anthropic"
	OpenAI    providers.OpenAIConfig    `yaml:"openai"`
	Anthropic providers.AnthropicConfig `yaml:"anthropic"`
	Examples  ExamplesConfig            `yaml:"examples"`
}

// ExamplesConfig configures the Q&A example endpoint.
type ExamplesConfig struct {
	BaseURL string        `yaml:"base_url"`
	APIKey  string        `yaml:"api_key"`
	Timeout time.Duration `yaml:"timeout"`

	// Disabled skips example fetching entirely.
	Disabled bool `yaml:"disabled"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Provider:  string(providers.ProviderTypeOpenAI),
		OpenAI:    providers.DefaultOpenAIConfig(),
		Anthropic: providers.DefaultAnthropicConfig(),
		Examples: ExamplesConfig{
			Timeout: 30 * time.Second,
		},
	}
}

// Manager holds the current config snapshot.
type Manager struct {
	configPtr unsafe.Pointer
	path      string
	watchers  []func(*Config)
	watcherMu sync.RWMutex
}

// NewManager creates a manager whose Load reads path. An empty path loads
// defaults plus environment overrides only.
func NewManager(path string) *Manager {
	m := &Manager{path: path}
	atomic.StorePointer(&m.configPtr, unsafe.Pointer(DefaultConfig()))
	return m
}

// Get returns the current config snapshot.
func (m *Manager) Get() *Config {
	return (*Config)(atomic.LoadPointer(&m.configPtr))
}

// Load reads the config file (when present), applies environment overrides
// and swaps in the new snapshot.
func (m *Manager) Load() error {
	cfg := DefaultConfig()

	if m.path != "" {
		if err := loadYAMLFile(m.path, cfg); err != nil {
			return fmt.Errorf("config file: %w", err)
		}
	}

	applyEnvironment(cfg)

	atomic.StorePointer(&m.configPtr, unsafe.Pointer(cfg))
	m.notifyWatchers(cfg)
	return nil
}

// Watch registers a callback invoked after every successful Load.
func (m *Manager) Watch(fn func(*Config)) {
	m.watcherMu.Lock()
	defer m.watcherMu.Unlock()
	m.watchers = append(m.watchers, fn)
}

func (m *Manager) notifyWatchers(cfg *Config) {
	m.watcherMu.RLock()
	defer m.watcherMu.RUnlock()
	for _, fn := range m.watchers {
		fn(cfg)
	}
}

func loadYAMLFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

func applyEnvironment(cfg *Config) {
	if v := os.Getenv("FIGGEN_PROVIDER"); v != "" {
		cfg.Provider = v
	}
	if v := os.Getenv("FIGGEN_OPENAI_API_KEY"); v != "" {
		cfg.OpenAI.APIKey = v
	}
	if v := os.Getenv("FIGGEN_OPENAI_BASE_URL"); v != "" {
		cfg.OpenAI.BaseURL = v
	}
	if v := os.Getenv("FIGGEN_OPENAI_MODEL"); v != "" {
		cfg.OpenAI.Model = v
	}
	if v := os.Getenv("FIGGEN_ANTHROPIC_API_KEY"); v != "" {
		cfg.Anthropic.APIKey = v
	}
	if v := os.Getenv("FIGGEN_ANTHROPIC_BASE_URL"); v != "" {
		cfg.Anthropic.BaseURL = v
	}
	if v := os.Getenv("FIGGEN_QNA_BASE_URL"); v != "" {
		cfg.Examples.BaseURL = v
	}
	if v := os.Getenv("FIGGEN_QNA_API_KEY"); v != "" {
		cfg.Examples.APIKey = v
	}
	if v := os.Getenv("FIGGEN_QNA_DISABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Examples.Disabled = b
		}
	}
	if v := os.Getenv("FIGGEN_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.OpenAI.Timeout = d
			cfg.Anthropic.Timeout = d
		}
	}
}
