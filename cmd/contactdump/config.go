package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config groups export parameters. Values are read from the optional YAML
// file, CONTACTDUMP_* environment variables and command line flags, the
// latter taking precedence.
type Config struct {
	RPC      string        `mapstructure:"rpc"`
	Contract string        `mapstructure:"contract"`
	Out      string        `mapstructure:"out"`
	Postgres string        `mapstructure:"postgres"`
	PageSize int           `mapstructure:"page_size"`
	Timeout  time.Duration `mapstructure:"timeout"`
	Debug    bool          `mapstructure:"debug"`
}

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("contactauth-dump", pflag.ContinueOnError)
	fs.String("config", "", "Path to YAML configuration file")
	fs.String("rpc", "", "Network address of the Neo RPC server")
	fs.String("contract", "", "ContactAuth contract hash (LE) or address")
	fs.String("out", "", "Path to the output JSON Lines file")
	fs.String("postgres", "", "PostgreSQL connection string to export records to")
	fs.Int("page_size", defaultPageSize, "Number of records requested at once")
	fs.Duration("timeout", 15*time.Second, "Timeout of RPC requests")
	fs.Bool("debug", false, "Enable debug logging")

	return fs
}

// loadConfig parses command line arguments and the configuration file they
// refer to.
func loadConfig(args []string) (*Config, error) {
	fs := newFlagSet()
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetEnvPrefix("CONTACTDUMP")
	v.AutomaticEnv()
	v.SetDefault("page_size", defaultPageSize)
	v.SetDefault("timeout", 15*time.Second)

	if path, _ := fs.GetString("config"); path != "" {
		v.SetConfigType("yaml")
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	return &cfg, cfg.Validate()
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	switch {
	case c.RPC == "":
		return errors.New("missing Neo RPC endpoint")
	case c.Contract == "":
		return errors.New("missing contract")
	case c.Out == "" && c.Postgres == "":
		return errors.New("missing output, set JSON file or PostgreSQL")
	case c.PageSize <= 0 || c.PageSize > maxPageSize:
		return fmt.Errorf("page size must be in [1, %d]", maxPageSize)
	case c.Timeout <= 0:
		return errors.New("timeout must be positive")
	}

	return nil
}
