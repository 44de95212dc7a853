package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/joseph-ayodele/docfields/internal/common"
	"github.com/joseph-ayodele/docfields/internal/pipeline"
)

var extractOut string

var extractCmd = &cobra.Command{
	Use:   "extract <TYPE> <PATH>",
	Short: "Extract one document (CNH, CRLV or TARIFAS) into a JSON result",
	Long: `Extract one document and write exactly one JSON object to
<output.dir>/dados_<uuid>.json (or --out). The file is written on failure too,
as {"status":"error","message":...}; the exit code is 0 whenever it was written.`,
	// argument errors are reported in the result file, not by cobra
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var out pipeline.Outcome
		if len(args) != 2 {
			out = pipeline.Failed(common.InvalidInputError("usage: docfields extract <TYPE> <PATH>"))
		} else {
			out = process(cmd.Context(), args[0], args[1])
		}

		path := extractOut
		if path == "" {
			path = pipeline.OutputPath(appCfg.Output.Dir)
		}
		return writeResult(cmd, path, out)
	},
}

func init() {
	extractCmd.Flags().StringVar(&extractOut, "out", "", "result file (default: <output.dir>/dados_<uuid>.json)")
}

// process runs one request through a freshly built pipeline.
func process(ctx context.Context, docType, input string) pipeline.Outcome {
	ctx = common.WithRequestID(ctx, uuid.NewString())
	if cfgErr != nil {
		return pipeline.Failed(cfgErr)
	}
	proc, _, err := pipeline.Build(appCfg, logger)
	if err != nil {
		logger.Error("pipeline setup failed", "error", err)
		return pipeline.Failed(err)
	}
	return proc.Run(ctx, docType, input)
}

func writeResult(cmd *cobra.Command, path string, out pipeline.Outcome) error {
	if err := pipeline.WriteJSON(path, out); err != nil {
		logger.Error("write result failed", "path", path, "error", err)
		return err
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}
