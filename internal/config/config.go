package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/shootlab/internal/shooting"
)

const (
	DefaultLambda  = -1.0
	DefaultT       = 5.0
	DefaultXT      = 1.0
	DefaultTheta0  = 0.2
	DefaultTheta1  = 2.0
	DefaultSamples = 400
)

type Config struct {
	Lambda  float64 `yaml:"lambda"`
	T       float64 `yaml:"terminal_time"`
	XT      float64 `yaml:"terminal_value"`
	Theta0  float64 `yaml:"theta0"`
	Theta1  float64 `yaml:"theta1"`
	Samples int     `yaml:"samples"`
}

func DefaultConfig() *Config {
	return &Config{
		Lambda:  DefaultLambda,
		T:       DefaultT,
		XT:      DefaultXT,
		Theta0:  DefaultTheta0,
		Theta1:  DefaultTheta1,
		Samples: DefaultSamples,
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
	if cfg.Samples < 2 {
		cfg.Samples = DefaultSamples
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

// Problem returns the boundary value problem described by the config.
func (c *Config) Problem() shooting.Problem {
	return shooting.Problem{Lambda: c.Lambda, T: c.T, XT: c.XT}
}
