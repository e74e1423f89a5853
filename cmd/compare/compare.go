// Package compare handles the reconciliation command.
package compare

import (
	"fmt"

	"github.com/spf13/cobra"

	"source4/dash-etl/cmd/root"
	"source4/dash-etl/internal/comparator"
	"source4/dash-etl/internal/logging"
)

var (
	againstPath  string
	againstSheet string
	strict       bool
)

// Cmd represents the compare command
var Cmd = &cobra.Command{
	Use:   "compare",
	Short: "Reconcile a pipeline output against a reference dataset",
	Long: `Compare matches a pipeline output file against a reference dataset
(for example last month's dashboard workbook) on the invoice+SKU key,
reports keys present on only one side, and diffs the configured numeric
fields for every matched key.`,
	RunE: compareFunc,
}

func init() {
	Cmd.Flags().StringVarP(&againstPath, "against", "a", "", "Reference dataset to compare against (CSV or XLSX)")
	Cmd.Flags().StringVar(&againstSheet, "against-sheet", "", "Sheet of the reference workbook (default: first sheet)")
	Cmd.Flags().BoolVar(&strict, "strict", false, "Exit with an error when the datasets disagree")
	_ = Cmd.MarkFlagRequired("against")
}

func compareFunc(cmd *cobra.Command, args []string) error {
	if root.SharedFlags.Input == "" {
		return fmt.Errorf("compare requires --input")
	}

	output, err := comparator.LoadRecords(root.SharedFlags.Input, root.SharedFlags.Sheet)
	if err != nil {
		return err
	}
	reference, err := comparator.LoadRecords(againstPath, againstSheet)
	if err != nil {
		return err
	}

	comp := comparator.New(comparator.Options{
		Fields:      root.Cfg.Compare.Fields,
		SampleLimit: root.Cfg.Compare.SampleLimit,
	}, root.Log)
	report := comp.Compare(output, reference)

	printReport(report)

	if strict && !report.Clean() {
		return fmt.Errorf("datasets disagree: %d extra, %d missing, %d field mismatches",
			report.ExtraCount, report.MissingCount, report.MismatchCount)
	}
	return nil
}

func printReport(r comparator.Report) {
	root.Log.WithFields(
		logging.Field{Key: "output_rows", Value: r.OutputRows},
		logging.Field{Key: "reference_rows", Value: r.ReferenceRows},
		logging.Field{Key: "matched_keys", Value: r.MatchedKeys},
		logging.Field{Key: "extra", Value: r.ExtraCount},
		logging.Field{Key: "missing", Value: r.MissingCount},
		logging.Field{Key: "field_mismatches", Value: r.MismatchCount},
	).Info("Comparison summary")

	for _, key := range r.ExtraSample {
		root.Log.WithField("key", key).Warn("Key only in output")
	}
	for _, key := range r.MissingSample {
		root.Log.WithField("key", key).Warn("Key only in reference")
	}
	for _, m := range r.MismatchSample {
		root.Log.WithFields(
			logging.Field{Key: "key", Value: m.Key},
			logging.Field{Key: "field", Value: m.Field},
			logging.Field{Key: "output", Value: m.Output},
			logging.Field{Key: "reference", Value: m.Reference},
		).Warn("Field mismatch")
	}

	if r.Clean() {
		root.Log.Info("Datasets match")
	}
}
