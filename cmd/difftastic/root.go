package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// globalFlags holds the root command's persistent flags, bound through
// viper so a config file or environment variable can supply the same
// values as an explicit flag (viper's usual cobra pairing, not used for
// internal/lang's own embedded descriptor data).
type globalFlags struct {
	lang        string
	backend     string
	jsonOutput  bool
	metricsAddr string
}

var flags globalFlags

var rootCmd = &cobra.Command{
	Use:   "difftastic",
	Short: "Structural diff of two source files",
	Long: `difftastic compares two source files by their syntax structure
rather than by line, aligning matching atoms and delimited lists and
reporting what changed, was added, or was textually replaced.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&flags.lang, "lang", "", "language descriptor name (defaults to file extension lookup)")
	rootCmd.PersistentFlags().StringVar(&flags.backend, "backend", "regex", "tree builder backend: regex or treesitter")
	rootCmd.PersistentFlags().BoolVar(&flags.jsonOutput, "json", false, "print the alignment summary as JSON")
	rootCmd.PersistentFlags().StringVar(&flags.metricsAddr, "metrics-addr", "", "if set, serve Prometheus metrics on this address while running")

	_ = viper.BindPFlag("lang", rootCmd.PersistentFlags().Lookup("lang"))
	_ = viper.BindPFlag("backend", rootCmd.PersistentFlags().Lookup("backend"))
	_ = viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	_ = viper.BindPFlag("metrics-addr", rootCmd.PersistentFlags().Lookup("metrics-addr"))
}

// initConfig lets a $HOME/.config/difftastic/config.yaml (or
// DIFFTASTIC_-prefixed environment variables) override defaults, using the
// usual flag/env/config-file precedence cobra and viper give for free.
func initConfig() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("$HOME/.config/difftastic")
	viper.SetEnvPrefix("DIFFTASTIC")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "difftastic: warning: reading config file: %v\n", err)
		}
	}
}

func execute() error {
	return rootCmd.Execute()
}
