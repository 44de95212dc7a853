package main

import (
	"github.com/spf13/cobra"

	"github.com/joseph-ayodele/docfields/constants"
	"github.com/joseph-ayodele/docfields/internal/export"
	"github.com/joseph-ayodele/docfields/internal/pipeline"
)

var (
	statementOut   string
	statementXLSX  string
	statementNamed bool
)

var statementCmd = &cobra.Command{
	Use:   "statement <PATH>",
	Short: "Parse a tariff/service statement into service records",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := args[0]
		out := process(cmd.Context(), string(constants.TARIFAS), input)

		path := statementOut
		switch {
		case path != "":
		case statementNamed:
			path = pipeline.NamedOutputPath(appCfg.Output.Dir, input)
		default:
			path = pipeline.OutputPath(appCfg.Output.Dir)
		}
		if err := writeResult(cmd, path, out); err != nil {
			return err
		}

		if statementXLSX == "" || !out.OK() {
			return nil
		}
		if err := export.NewService(logger).WriteStatementXLSX(statementXLSX, out.Records); err != nil {
			logger.Error("xlsx export failed", "path", statementXLSX, "error", err)
			return err
		}
		logger.Info("xlsx written", "path", statementXLSX, "rows", len(out.Records))
		return nil
	},
}

func init() {
	statementCmd.Flags().StringVar(&statementOut, "out", "", "result file (default: <output.dir>/dados_<uuid>.json)")
	statementCmd.Flags().BoolVar(&statementNamed, "named", false, "name the result after the input: <output.dir>/<base>_extraido.json")
	statementCmd.Flags().StringVar(&statementXLSX, "xlsx", "", "also write the services to this .xlsx workbook")
}
