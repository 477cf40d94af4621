package config

import (
	"fmt"
	"os"

	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"
)

// LoadGenesisConfig reads and parses the genesis.yml file
func LoadGenesisConfig(path string) (*GenesisConfig, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open genesis config: %w", err)
	}
	defer file.Close()

	var cfgFile ConfigFile
	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(&cfgFile); err != nil {
		return nil, fmt.Errorf("could not decode genesis config: %w", err)
	}
	return &cfgFile.Config, nil
}

// DefaultTuning returns the tuning values used when no server.ini is present
func DefaultTuning() *TuningConfig {
	return &TuningConfig{
		RPC: RPCTuning{
			Concurrency:     8,
			MaxBodyBytes:    1 << 20,
			ShutdownGraceMs: 5000,
		},
	}
}

// LoadTuningConfig reads the optional server.ini; missing file yields defaults
func LoadTuningConfig(path string) (*TuningConfig, error) {
	cfg := DefaultTuning()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	f, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("could not load tuning config: %w", err)
	}
	if err := f.Section("rpc").MapTo(&cfg.RPC); err != nil {
		return nil, fmt.Errorf("could not map rpc tuning section: %w", err)
	}
	return cfg, nil
}
