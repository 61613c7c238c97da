package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Manager loads configuration from file, environment and bound flags.
type Manager interface {
	Load() (*Config, error)
	BindFlag(key string, flag *pflag.Flag) error
	ConfigFileUsed() string
}

type manager struct {
	v *viper.Viper
}

// NewManager reads configFile, or .gutwipe.yaml from the working directory
// or the home directory when configFile is empty. A missing default file is
// not an error.
func NewManager(configFile string) (Manager, error) {
	var paths []string
	if cwd, err := os.Getwd(); err == nil {
		paths = append(paths, cwd)
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, home)
	}
	return newManager(viper.New(), configFile, paths...)
}

func newManager(v *viper.Viper, configFile string, searchPaths ...string) (Manager, error) {
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		for _, p := range searchPaths {
			v.AddConfigPath(p)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	return &manager{v: v}, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("random_source", RandomSourceCrypto)
	v.SetDefault("chunk_size", DefaultChunkSize)
	v.SetDefault("progress", true)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("report.dir", "")
	v.SetDefault("report.s3.bucket", "")
	v.SetDefault("report.s3.prefix", "")
	v.SetDefault("report.s3.region", "")
}

func (m *manager) Load() (*Config, error) {
	var cfg Config
	if err := m.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func (m *manager) BindFlag(key string, flag *pflag.Flag) error {
	if flag == nil {
		return fmt.Errorf("no flag for config key %s", key)
	}
	return m.v.BindPFlag(key, flag)
}

func (m *manager) ConfigFileUsed() string {
	return m.v.ConfigFileUsed()
}
