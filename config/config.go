package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	Storage   Storage   `json:"storage" yaml:"storage" mapstructure:"storage"`
	Server    Server    `json:"server" yaml:"server" mapstructure:"server"`
	Loader    Loader    `json:"loader" yaml:"loader" mapstructure:"loader"`
	Dashboard Dashboard `json:"dashboard" yaml:"dashboard" mapstructure:"dashboard"`
}

type Server struct {
	Port int `json:"port" yaml:"port" mapstructure:"port"`
}

// Storage configuration is assumed to be for sqlite database only currently
type Storage struct {
	FilePath string `json:"filePath" yaml:"filePath" mapstructure:"filePath"`
}

// Loader controls memoization of source tables. When Memoize is false every
// render re-queries the store.
type Loader struct {
	Memoize bool `json:"memoize" yaml:"memoize" mapstructure:"memoize"`
}

// Dashboard houses display settings for the aggregates
type Dashboard struct {
	TopN           int `json:"topN" yaml:"topN" mapstructure:"topN"`
	DurationBins   int `json:"durationBins" yaml:"durationBins" mapstructure:"durationBins"`
	DefaultLowYear int `json:"defaultLowYear" yaml:"defaultLowYear" mapstructure:"defaultLowYear"`
}

type ConfigUnmarshaler interface {
	ReadInConfig() error
	Unmarshal(any, ...viper.DecoderConfigOption) error
	ConfigFileUsed() string
}

// New reads a new configuration
func New(cu ConfigUnmarshaler) (Config, error) {
	var c Config

	if cu.ConfigFileUsed() != "" {
		err := cu.ReadInConfig()
		if err != nil {
			return c, err
		}
	}

	err := cu.Unmarshal(&c)
	return c, err
}
