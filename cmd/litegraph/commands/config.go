package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/litegraph/internal/constants"
)

// Config represents the CLI configuration file.
type Config struct {
	Endpoint  string `json:"endpoint,omitempty"   yaml:"endpoint,omitempty"`
	Tenant    string `json:"tenant,omitempty"     yaml:"tenant,omitempty"`
	Graph     string `json:"graph,omitempty"      yaml:"graph,omitempty"`
	AccessKey string `json:"access-key,omitempty" yaml:"access-key,omitempty"`
	Output    string `json:"output,omitempty"     yaml:"output,omitempty"`
	Timeout   string `json:"timeout,omitempty"    yaml:"timeout,omitempty"`
	Retries   int    `json:"retries,omitempty"    yaml:"retries,omitempty"`
}

// ConfigDir returns the directory holding config.yml.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(home, ".litegraph"), nil
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Show and change the endpoint, scope and output settings stored in ~/.litegraph/config.yml",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the effective configuration after flags and LITEGRAPH_* environment variables are applied",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := effectiveConfig()
			if config.AccessKey != "" {
				config.AccessKey = constants.MaskedSecret
			}

			return renderObject(cmd.OutOrStdout(), config, [][2]string{
				{"Endpoint", valueOrNA(config.Endpoint)},
				{"Tenant", valueOrNA(config.Tenant)},
				{"Graph", valueOrNA(config.Graph)},
				{"Access Key", valueOrNA(config.AccessKey)},
				{"Output", valueOrNA(config.Output)},
				{"Timeout", valueOrNA(config.Timeout)},
				{"Retries", strconv.Itoa(config.Retries)},
				{"Config File", valueOrNA(viper.ConfigFileUsed())},
			})
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long: `Set a configuration value and save it to the config file.

Keys: endpoint, tenant, graph, access-key, output, timeout, retries`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]

			config, err := loadConfigFile()
			if err != nil {
				return err
			}

			err = setConfigValue(config, key, value)
			if err != nil {
				return err
			}

			err = saveConfigFile(config)
			if err != nil {
				return err
			}

			viper.Set(key, value)

			shown := value
			if key == keyAccessKey {
				shown = constants.MaskedSecret
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %s to %s\n", key, shown)

			return nil
		},
	}
}

func setConfigValue(config *Config, key, value string) error {
	switch key {
	case keyEndpoint:
		config.Endpoint = value
	case keyTenant:
		config.Tenant = value
	case keyGraph:
		config.Graph = value
	case keyAccessKey:
		config.AccessKey = value
	case keyOutput:
		switch value {
		case constants.FormatTable, constants.FormatJSON, constants.FormatYAML:
			config.Output = value
		default:
			return fmt.Errorf("%w: output must be table, json or yaml", errInvalidConfigValue)
		}
	case keyTimeout:
		_, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("%w: timeout %q: %w", errInvalidConfigValue, value, err)
		}

		config.Timeout = value
	case keyRetries:
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			return fmt.Errorf("%w: retries must be a positive integer, got %q", errInvalidConfigValue, value)
		}

		config.Retries = n
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
	}

	return nil
}

// effectiveConfig reports what the commands will use.
func effectiveConfig() *Config {
	timeout := ""
	if d := viper.GetDuration(keyTimeout); d > 0 {
		timeout = d.String()
	}

	return &Config{
		Endpoint:  viper.GetString(keyEndpoint),
		Tenant:    viper.GetString(keyTenant),
		Graph:     viper.GetString(keyGraph),
		AccessKey: viper.GetString(keyAccessKey),
		Output:    viper.GetString(keyOutput),
		Timeout:   timeout,
		Retries:   viper.GetInt(keyRetries),
	}
}

func configFilePath() (string, error) {
	if file := viper.ConfigFileUsed(); file != "" {
		return file, nil
	}

	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, "config.yml"), nil
}

// loadConfigFile reads the config file as stored, without flags or
// environment overrides. A missing file is an empty config.
func loadConfigFile() (*Config, error) {
	path, err := configFilePath()
	if err != nil {
		return nil, err
	}

	config := &Config{}

	// #nosec G304 -- path is the CLI's own config file
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return config, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

func saveConfigFile(config *Config) error {
	path, err := configFilePath()
	if err != nil {
		return err
	}

	err = os.MkdirAll(filepath.Dir(path), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	err = os.WriteFile(path, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func valueOrNA(s string) string {
	if s == "" {
		return constants.NotAvailable
	}

	return s
}
