package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/span/core/config"
	"github.com/msto63/span/core/log"
)

var (
	cfgFile   string
	verbose   bool
	logFormat string
	kindName  string
	pattern   string

	logger = log.GetDefault()
)

var rootCmd = &cobra.Command{
	Use:   "span",
	Short: "span - calendar values on the command line",
	Long: `span parses, renders and calculates with times of day, dates and
datetimes using strftime-like patterns.

Value kinds (--kind):
  time      - hour, minute, second
  date      - year, month, day
  datetime  - year, month, day, hour, minute, second

Patterns come from --pattern, the [format] section of the config file,
the SPAN_FORMAT_* environment variables, or the built-in defaults.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the root command and reports errors on stderr.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./span.toml or <user config dir>/span/span.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format (text, json, logfmt)")
	rootCmd.PersistentFlags().StringVarP(&kindName, "kind", "k", "datetime", "value kind (time, date, datetime)")
	rootCmd.PersistentFlags().StringVarP(&pattern, "pattern", "p", "", "pattern of the selected kind, overriding config and environment")
}

// setup configures logging first so that config loading can already trace,
// then installs the configured format and clock as process defaults.
func setup(cmd *cobra.Command, args []string) error {
	lf, err := log.ParseFormat(logFormat)
	if err != nil {
		return err
	}
	level := log.LevelWarn
	if verbose {
		level = log.LevelDebug
	}
	logger = log.NewWithConfig(log.Config{
		Level:  level,
		Format: lf,
		Output: cmd.ErrOrStderr(),
		Name:   "span",
	})
	log.SetDefault(logger)

	var cfg *config.Config
	if cfgFile != "" {
		cfg, err = config.LoadWithOptions(cfgFile, config.LoadOptions{Format: config.FormatAuto, Logger: logger})
	} else {
		opts := config.DefaultDiscoveryOptions()
		opts.Load.Logger = logger
		cfg, err = config.Discover(opts)
	}
	if err != nil {
		return err
	}
	if pattern != "" {
		k, err := lookupKind(kindName)
		if err != nil {
			return err
		}
		cfg.Set(k.key, pattern)
	}
	logger.Debug("settings loaded", log.Stringer("config", cfg))
	return cfg.Apply()
}

func printError(err error) {
	logger.LogError(err, log.String("command", "span"))
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}
