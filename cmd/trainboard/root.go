package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ukaji3/trainboard-go/internal/config"
	"github.com/ukaji3/trainboard-go/internal/logging"
	"github.com/ukaji3/trainboard-go/pkg/trainboard/source"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "trainboard",
		Short: "Training plan dashboard backed by a spreadsheet",
		Long: `trainboard renders a weekly training plan, exercise library, body
condition notes and free-form notes from a spreadsheet as a dashboard that
adapts to desktop and phone screens.`,
		SilenceUsage: true,
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is ./trainboard.yaml or $XDG_CONFIG_HOME/trainboard/config.yaml)")
	rootCmd.PersistentFlags().String("source", "", "source kind: xlsx, yaml or google")
	rootCmd.PersistentFlags().String("path", "", "workbook or fixture path for xlsx and yaml sources")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("source.kind", rootCmd.PersistentFlags().Lookup("source"))
	_ = viper.BindPFlag("source.path", rootCmd.PersistentFlags().Lookup("path"))
	_ = viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.AddCommand(
		newServeCmd(),
		newRenderCmd(),
		newPreviewCmd(),
		newSheetsCmd(),
	)
	return rootCmd
}

func initConfig() {
	config.SetDefaults()

	if cfgFile := configFile(); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}

	viper.SetEnvPrefix(config.EnvPrefix)
	// TRAINBOARD_SOURCE_CACHE_TTL for source.cache_ttl
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	_ = viper.ReadInConfig()
}

// configFile picks the --config flag, then ./trainboard.yaml, then the
// user config file.
func configFile() string {
	if f := viper.GetString("config"); f != "" {
		return f
	}
	for _, f := range []string{"trainboard.yaml", config.ConfigFile()} {
		if _, err := os.Stat(f); err == nil {
			return f
		}
	}
	return ""
}

// app bundles what every subcommand needs.
type app struct {
	cfg    *config.Config
	logger *logging.Logger
	src    source.Source
}

func loadApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger := logging.NewStderr(cfg.Logging.Level, cfg.Logging.Format)
	src, err := source.Open(cfg.SourceOptions(), source.WithLeveledLogger(logger.Slog()))
	if err != nil {
		return nil, err
	}
	return &app{cfg: cfg, logger: logger, src: src}, nil
}
