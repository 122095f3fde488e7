package config

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// CredentialSource selects how the blob store authenticates. It is resolved
// once at configuration-load time and never re-inferred per call.
type CredentialSource string

const (
	// CredentialStatic uses the access key pair from the configuration.
	CredentialStatic CredentialSource = "static"
	// CredentialDefault uses the ambient AWS credential chain (env vars,
	// shared config, instance profile).
	CredentialDefault CredentialSource = "default"
)

type Storage struct {
	Container        string           `mapstructure:"container"`
	Region           string           `mapstructure:"region"`
	Endpoint         string           `mapstructure:"endpoint"`
	CredentialSource CredentialSource `mapstructure:"credential_source"`
	AccessKeyID      string           `mapstructure:"access_key_id"`
	SecretAccessKey  string           `mapstructure:"secret_access_key"`
}

type Options struct {
	AllowedIPAddresses []string `mapstructure:"allowed_ip_addresses"`
	EnableHealth       bool     `mapstructure:"enable_health"`
	EnableStats        bool     `mapstructure:"enable_stats"`
	EnablePrometheus   bool     `mapstructure:"enable_prometheus"`
}

type Config struct {
	Debug          bool
	Port           int
	LogLevel       string   `mapstructure:"log_level"`
	AllowedHeaders []string `mapstructure:"allowed_headers"`
	AllowedMethods []string `mapstructure:"allowed_methods"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	Storage        *Storage
	Options        *Options
}

func DefaultConfig() *Config {
	return &Config{
		Port:     DefaultPort,
		LogLevel: DefaultLogLevel,
		Storage: &Storage{
			Container:        DefaultContainer,
			Region:           DefaultRegion,
			CredentialSource: CredentialDefault,
		},
		Options: &Options{
			EnableHealth: true,
		},
	}
}

func load(content string, isPath bool) (*Config, error) {
	config := &Config{}

	defaultConfig := DefaultConfig()

	viper.SetDefault("port", defaultConfig.Port)
	viper.SetDefault("log_level", defaultConfig.LogLevel)
	// Defaults are registered per key so a partial storage/options block in a
	// config file merges with them instead of shadowing the whole sub-tree.
	viper.SetDefault("storage.container", defaultConfig.Storage.Container)
	viper.SetDefault("storage.region", defaultConfig.Storage.Region)
	viper.SetDefault("storage.credential_source", string(defaultConfig.Storage.CredentialSource))
	viper.SetDefault("options.enable_health", defaultConfig.Options.EnableHealth)
	viper.SetEnvPrefix("portfolio")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	var err error

	if isPath == true {
		viper.SetConfigFile(content)
		err = viper.ReadInConfig()
		if err != nil {
			return nil, err
		}
	} else {
		viper.SetConfigType("yaml")
		err = viper.ReadConfig(bytes.NewBufferString(content))
		if err != nil {
			return nil, err
		}
	}

	if err = viper.Unmarshal(config); err != nil {
		return nil, err
	}

	if err = config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Load reads configuration from an optional YAML file plus PORTFOLIO_*
// environment variables.
func Load(path string) (*Config, error) {
	if path == "" {
		return load("", false)
	}
	return load(path, true)
}

// LoadFromString parses configuration from a YAML string. Used in tests.
func LoadFromString(content string) (*Config, error) {
	return load(content, false)
}

// validate rejects configurations the process must not start with. A missing
// storage credential is a fatal startup condition, not a per-request error.
func (c *Config) validate() error {
	if c.Storage == nil {
		return fmt.Errorf("storage configuration is required")
	}
	if c.Storage.Container == "" {
		return fmt.Errorf("storage container name is required")
	}

	switch c.Storage.CredentialSource {
	case CredentialStatic:
		if c.Storage.AccessKeyID == "" || c.Storage.SecretAccessKey == "" {
			return fmt.Errorf("credential_source %q requires access_key_id and secret_access_key", CredentialStatic)
		}
	case CredentialDefault:
	default:
		return fmt.Errorf("unknown credential_source %q", c.Storage.CredentialSource)
	}

	return nil
}
