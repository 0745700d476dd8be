package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"deckdrop/internal/observability"
)

var (
	verbose bool
	quiet   bool

	rootCmd = &cobra.Command{
		Use:   "deckdrop",
		Short: "Generate account decks from Snowflake",
		Long:  "DeckDrop - A CLI tool for generating account overview decks from Snowflake data with simple account selection",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := observability.LogLevelFromString(viper.GetString("logging.level"))
			if verbose {
				level = observability.DebugLevel
			}
			if quiet {
				level = observability.ErrorLevel
			}

			logger := observability.NewLogger(observability.LoggerConfig{
				Level:   level,
				Output:  os.Stderr,
				Service: "deckdrop",
				Version: Version,
			})
			observability.SetDefaultLogger(logger)

			// Spans are recorded per pipeline stage; export them to the
			// log only when verbose output is requested.
			if verbose {
				observability.InitTracing("deckdrop", observability.NewLoggingSpanExporter(logger))
			}
		},
	}
)

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
}

func initConfig() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	home, err := os.UserHomeDir()
	if err == nil {
		viper.AddConfigPath(home + "/.deckdrop")
	}

	viper.SetEnvPrefix("DECKDROP")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// Config file not found is okay for now
	}
}
