package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/endorses/cwsearch/cmd/search"
	"github.com/endorses/cwsearch/cmd/tables"
	"github.com/endorses/cwsearch/internal/pkg/config"
	"github.com/endorses/cwsearch/internal/pkg/constants"
	"github.com/endorses/cwsearch/internal/pkg/logger"
	"github.com/endorses/cwsearch/internal/pkg/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:     "cws",
	Short:   "cws finds many patterns at once",
	Long:    fmt.Sprintf("cws %s - multi-pattern search with the Commentz-Walter algorithm", version.GetVersion()),
	Version: version.GetFullVersion(),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if lvl := viper.GetString(config.KeyLogLevel); lvl != "" {
			return logger.SetLevel(lvl)
		}
		return nil
	},
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func addSubCommandPalattes() {
	rootCmd.AddCommand(search.SearchCmd)
	rootCmd.AddCommand(tables.TablesCmd)
}

func init() {
	cobra.OnInitialize(initConfig)

	// Initialize structured logging
	logger.Initialize()

	addSubCommandPalattes()

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.cws.yaml)")
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level: debug, info, warn, error")
	_ = viper.BindPFlag(config.KeyLogLevel, rootCmd.PersistentFlags().Lookup("log-level"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(constants.ConfigFileName)
	}

	viper.SetEnvPrefix(constants.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		logger.Debug("Using config file", "path", viper.ConfigFileUsed())
	}
}
