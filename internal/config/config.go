package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultTheme     = "classic"
	DefaultPattern   = "random"
	DefaultAlgorithm = "bubble"
	DefaultDataDir   = ".sortviz"
	DefaultLogLevel  = "info"
)

// Config holds user preferences. Array size, bar width and animation delay
// are fixed and deliberately absent.
type Config struct {
	Algorithm string      `yaml:"algorithm"`
	Pattern   string      `yaml:"pattern"`
	Seed      int64       `yaml:"seed"`
	Theme     string      `yaml:"theme"`
	DataDir   string      `yaml:"data_dir"`
	LogLevel  string      `yaml:"log_level"`
	Audio     AudioConfig `yaml:"audio"`
}

type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
	MinFreq float64 `yaml:"min_freq"`
	MaxFreq float64 `yaml:"max_freq"`
}

func DefaultConfig() *Config {
	return &Config{
		Algorithm: DefaultAlgorithm,
		Pattern:   DefaultPattern,
		Theme:     DefaultTheme,
		DataDir:   DefaultDataDir,
		LogLevel:  DefaultLogLevel,
		Audio: AudioConfig{
			Volume:  0.2,
			MinFreq: 120,
			MaxFreq: 1200,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
