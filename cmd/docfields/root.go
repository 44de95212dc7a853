package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/joseph-ayodele/docfields/internal/common"
)

var (
	cfgFile  string
	logLevel string

	// resolved in PersistentPreRun; a config error is kept so extract can still write an error result
	appCfg *common.Config
	cfgErr error
	logger = slog.Default()
)

var rootCmd = &cobra.Command{
	Use:   "docfields",
	Short: "Template-driven field extraction for CNH, CRLV and tariff statements",
	Long: `docfields reads one scanned or digital document and writes its fields as a
single JSON object.

  - CNH and CRLV pages are classified by their header region, then every
    region of the matching template is OCR'd
  - TARIFAS statements are parsed line by line into service records

The path of the JSON result is printed on stdout. Logs go to stderr.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setup()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml, <exe dir>/config.yaml or ~/.docfields/config.yaml)",
	)
	rootCmd.PersistentFlags().StringVar(
		&logLevel, "log-level", "", "debug, info, warn or error (overrides log.level)",
	)

	rootCmd.AddCommand(extractCmd, statementCmd, annotateCmd, watchCmd, configCmd)
}

func setup() {
	cfg, err := common.LoadConfig(cfgFile)
	if err == nil {
		err = cfg.Validate()
	}
	if cfg == nil {
		cfg = common.DefaultConfig()
	}
	appCfg, cfgErr = cfg, err

	level := logLevel
	if level == "" {
		level = cfg.Log.Level
	}
	logger = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLevel(level),
	}))
	slog.SetDefault(logger)

	if cfgErr != nil {
		logger.Warn("configuration invalid", "error", cfgErr)
	}
}

func parseLevel(s string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return l
}
