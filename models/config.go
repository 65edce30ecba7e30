package models

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// PairSpec names one baseline/variant comparison in a batch run.
type PairSpec struct {
	Baseline    string `yaml:"baseline" json:"baseline"`
	Variant     string `yaml:"variant" json:"variant"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// BatchConfig is the YAML file driving a batch run: an ordered list of
// comparison pairs. Pairs are processed in file order.
type BatchConfig struct {
	Pairs []PairSpec `yaml:"pairs" json:"pairs"`
}

// ParseBatchConfig decodes a batch config from raw YAML bytes.
func ParseBatchConfig(data []byte) (*BatchConfig, error) {
	var cfg BatchConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse batch config: %w", err)
	}
	if len(cfg.Pairs) == 0 {
		return nil, fmt.Errorf("batch config lists no pairs")
	}
	for i, p := range cfg.Pairs {
		if p.Baseline == "" || p.Variant == "" {
			return nil, fmt.Errorf("pair %d is missing a baseline or variant file", i)
		}
	}
	return &cfg, nil
}
