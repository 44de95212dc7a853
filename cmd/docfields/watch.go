package main

import (
	"context"
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/joseph-ayodele/docfields/constants"
	"github.com/joseph-ayodele/docfields/internal/common"
	"github.com/joseph-ayodele/docfields/internal/ingest"
	"github.com/joseph-ayodele/docfields/internal/pipeline"
)

var (
	watchDebounce time.Duration
	watchExisting bool
)

var watchCmd = &cobra.Command{
	Use:   "watch <TYPE> <DIR>",
	Short: "Process every document dropped into DIR, one at a time",
	Long: `Watch DIR (recursively) and extract each new PDF or image as <TYPE>.
Results are written to <output.dir>/<base>_extraido.json. Stops on SIGINT/SIGTERM.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfgErr != nil {
			return cfgErr
		}
		docType, ok := constants.ParseDocType(args[0])
		if !ok {
			return common.InvalidInputError("unknown document type %q, supported: %v", args[0], constants.AllDocTypes())
		}
		dir := args[1]

		proc, _, err := pipeline.Build(appCfg, logger)
		if err != nil {
			return err
		}

		handle := func(ctx context.Context, path string) error {
			out := proc.Run(ctx, string(docType), path)
			dest := pipeline.NamedOutputPath(appCfg.Output.Dir, path)
			if err := pipeline.WriteJSON(dest, out); err != nil {
				return err
			}
			logger.Info("watch: result written", "input", path, "result", dest, "status", out.Result.Status)
			return out.Err
		}

		logger.Info("watching", "dir", dir, "type", docType, "output_dir", appCfg.Output.Dir)
		stats, err := ingest.Watch(cmd.Context(), ingest.WatchConfig{
			Roots:       []string{dir},
			InitialScan: watchExisting,
			Debounce:    watchDebounce,
			Logger:      logger,
		}, handle)
		logger.Info("watch stopped", "seen", stats.Seen, "succeeded", stats.Succeeded, "failed", stats.Failed)
		if err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	},
}

func init() {
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 2*time.Second, "wait this long after the last write before processing a file")
	watchCmd.Flags().BoolVar(&watchExisting, "existing", false, "also process files already in DIR")
}
