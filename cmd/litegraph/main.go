package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fivetwenty-io/litegraph/cmd/litegraph/commands"
	"github.com/fivetwenty-io/litegraph/internal/constants"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "litegraph",
	Short: "LiteGraph CLI",
	Long: `A command-line interface for a LiteGraph server.

Manage tenants, graphs, nodes and edges, inspect vector indexes and
backups, and issue session tokens. Settings are read from flags,
LITEGRAPH_* environment variables and ~/.litegraph/config.yml, in that order.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.litegraph/config.yml)")
	rootCmd.PersistentFlags().StringP("endpoint", "e", "", "LiteGraph server URL")
	rootCmd.PersistentFlags().StringP("tenant", "t", "", "tenant GUID")
	rootCmd.PersistentFlags().StringP("graph", "g", "", "graph GUID")
	rootCmd.PersistentFlags().StringP("access-key", "k", "", "bearer access key")
	rootCmd.PersistentFlags().String("output", constants.FormatTable, "output format (table, json, yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log requests to stderr")
	rootCmd.PersistentFlags().Duration("timeout", constants.DefaultHTTPTimeout, "timeout for a single request attempt")
	rootCmd.PersistentFlags().Int("retries", constants.DefaultMaxRetries, "attempts per request on connection failures")

	// Bind flags to viper
	for _, name := range []string{"config", "endpoint", "tenant", "graph", "access-key", "output", "verbose", "timeout", "retries"} {
		_ = viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name))
	}

	commands.SetVersion(version)

	// Add commands
	rootCmd.AddCommand(commands.NewVersionCommand(version, commit, date))
	rootCmd.AddCommand(commands.NewConfigCommand())
	rootCmd.AddCommand(commands.NewTenantsCommand())
	rootCmd.AddCommand(commands.NewGraphsCommand())
	rootCmd.AddCommand(commands.NewNodesCommand())
	rootCmd.AddCommand(commands.NewEdgesCommand())
	rootCmd.AddCommand(commands.NewTagsCommand())
	rootCmd.AddCommand(commands.NewLabelsCommand())
	rootCmd.AddCommand(commands.NewUsersCommand())
	rootCmd.AddCommand(commands.NewCredentialsCommand())
	rootCmd.AddCommand(commands.NewVectorIndexCommand())
	rootCmd.AddCommand(commands.NewBackupsCommand())
	rootCmd.AddCommand(commands.NewAuthCommand())
}

func initConfig() {
	cfgFile := viper.GetString("config")

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		configDir, err := commands.ConfigDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		// Search config in ~/.litegraph/config.yml
		viper.AddConfigPath(configDir)
		viper.SetConfigType("yml")
		viper.SetConfigName("config")
	}

	// LITEGRAPH_ACCESS_KEY and friends
	viper.SetEnvPrefix("LITEGRAPH")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
