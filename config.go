package mysqlq

import (
	"fmt"

	"github.com/hashicorp/hcl"
)

const (
	DefaultAliasPrefix = "T"
	DefaultBindPrefix  = "value_"
)

// Config tunes name generation for a Session.
//
//	alias_ceiling = 100000
//	alias_prefix  = "T"
//	bind_prefix   = "value_"
type Config struct {
	AliasCeiling int    `hcl:"alias_ceiling"`
	AliasPrefix  string `hcl:"alias_prefix"`
	BindPrefix   string `hcl:"bind_prefix"`
}

// ParseConfig decodes an HCL configuration. Omitted settings get their defaults.
func ParseConfig(src string) (*Config, error) {
	cfg := &Config{}
	if err := hcl.Decode(cfg, src); err != nil {
		return nil, fmt.Errorf("mysqlq: parse config: %w", err)
	}
	cfg.setDefaults()
	return cfg, nil
}

func (cfg *Config) setDefaults() {
	if cfg.AliasCeiling <= 0 {
		cfg.AliasCeiling = DefaultCeiling
	}
	if cfg.AliasPrefix == "" {
		cfg.AliasPrefix = DefaultAliasPrefix
	}
	if cfg.BindPrefix == "" {
		cfg.BindPrefix = DefaultBindPrefix
	}
}
