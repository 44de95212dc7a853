package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joseph-ayodele/docfields/internal/annotate"
	"github.com/joseph-ayodele/docfields/internal/pipeline"
)

var annotateOut string

var annotateCmd = &cobra.Command{
	Use:   "annotate <TYPE> <PATH>",
	Short: "Draw the regions of the matching template over page 1",
	Long: `Classify the document like extract does, then save page 1 with every region
of the selected template outlined and labelled. Useful when adjusting template
coordinates.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfgErr != nil {
			return cfgErr
		}
		docType, input := args[0], args[1]

		proc, store, err := pipeline.Build(appCfg, logger)
		if err != nil {
			return err
		}
		page, id, err := proc.Classify(cmd.Context(), docType, input)
		if err != nil {
			return err
		}
		t, err := store.Variant(id)
		if err != nil {
			return err
		}

		path := annotateOut
		if path == "" {
			path = annotate.OutputPath(appCfg.Output.Dir, input, id)
		}
		if err := annotate.Save(path, annotate.Draw(page, t, annotate.DefaultStyle)); err != nil {
			return err
		}
		logger.Info("overlay written", "path", path, "template", id.String(), "fields", len(t.Fields))
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

func init() {
	annotateCmd.Flags().StringVar(&annotateOut, "out", "", "overlay image (.png or .jpg; default: <output.dir>/<base>_<variant>.png)")
}
