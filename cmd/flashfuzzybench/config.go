package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tailscale/hujson"
)

// EngineConfig holds the tunables exposed on Index (§6 "set_threshold",
// "set_max_errors", "set_max_results") plus the pool sizing from
// NewIndexWithCapacity, so a benchmark run can be reproduced from a single
// file instead of a pile of flags.
type EngineConfig struct {
	Threshold  uint32 `json:"threshold"`
	MaxErrors  uint32 `json:"max_errors"`
	MaxResults uint32 `json:"max_results"`

	MaxRecords int `json:"max_records,omitempty"`
	MaxTextLen int `json:"max_text_len,omitempty"`
	ArenaCap   int `json:"arena_cap,omitempty"`
}

// DefaultEngineConfig mirrors the Index package's own defaults, so a config
// file only needs to name the fields it wants to override.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		Threshold:  250,
		MaxErrors:  2,
		MaxResults: 50,
	}
}

// LoadEngineConfig reads a commented JSON (hjson-flavored) config file from
// path, standardizes it to plain JSON via hujson, and overlays it onto
// DefaultEngineConfig. A missing file is not an error — the caller gets
// defaults back.
func LoadEngineConfig(path string) (EngineConfig, error) {
	cfg := DefaultEngineConfig()

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return EngineConfig{}, &ConfigError{Path: path, Err: fmt.Errorf("%w: %v", ErrConfigFileRead, err)}
	}

	standardized, err := hujson.Standardize(data)
	if err != nil {
		return EngineConfig{}, &ConfigError{Path: path, Err: fmt.Errorf("%w: %v", ErrConfigInvalid, err)}
	}

	if err := json.Unmarshal(standardized, &cfg); err != nil {
		return EngineConfig{}, &ConfigError{Path: path, Err: fmt.Errorf("%w: %v", ErrConfigInvalid, err)}
	}

	if err := validateEngineConfig(cfg); err != nil {
		return EngineConfig{}, &ConfigError{Path: path, Err: err}
	}

	return cfg, nil
}

func validateEngineConfig(cfg EngineConfig) error {
	if cfg.Threshold > 1000 {
		return fmt.Errorf("%w: threshold %d exceeds 1000", ErrConfigInvalid, cfg.Threshold)
	}
	if cfg.MaxErrors > 3 {
		return fmt.Errorf("%w: max_errors %d exceeds 3", ErrConfigInvalid, cfg.MaxErrors)
	}
	if cfg.MaxResults > 100 {
		return fmt.Errorf("%w: max_results %d exceeds 100", ErrConfigInvalid, cfg.MaxResults)
	}
	return nil
}
