package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDt     = 0.01
	DefaultT1     = 10.0
	DefaultAbsTol = 1e-6
	DefaultRelTol = 1e-3
)

type Config struct {
	Problem   string             `yaml:"problem"`
	Solver    string             `yaml:"solver"`
	Dt        float64            `yaml:"dt"`
	T0        float64            `yaml:"t0"`
	T1        float64            `yaml:"t1"`
	AbsTol    float64            `yaml:"abstol"`
	RelTol    float64            `yaml:"reltol"`
	Adaptive  bool               `yaml:"adaptive"`
	SaveEvery int                `yaml:"save_every"`
	Seed      int64              `yaml:"seed"`
	Y0        []float64          `yaml:"y0"`
	Params    map[string]float64 `yaml:"params"`
}

func DefaultConfig() *Config {
	return &Config{
		Problem:   "lorenz",
		Solver:    "dopri5",
		Dt:        DefaultDt,
		T1:        DefaultT1,
		AbsTol:    DefaultAbsTol,
		RelTol:    DefaultRelTol,
		Adaptive:  true,
		SaveEvery: 1,
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
