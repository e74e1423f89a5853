// Package process handles the end-to-end enrichment command.
package process

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"source4/dash-etl/cmd/root"
	"source4/dash-etl/internal/catclass"
	"source4/dash-etl/internal/logging"
	"source4/dash-etl/internal/pipeline"
	"source4/dash-etl/internal/taxonomy"
)

var (
	workbook  bool
	reviewOut string
	keepEmpty bool
	idMapFile string
)

// Cmd represents the process command
var Cmd = &cobra.Command{
	Use:   "process",
	Short: "Enrich a sales export against the master catalog",
	Long: `Process reads a sales export (CSV or XLSX), resolves each line against
the master reference catalog, allocates invoice-level shipping and discount
charges across product lines, and writes the enriched record set plus a
review queue of products no reference match could categorize.`,
	RunE: processFunc,
}

func init() {
	Cmd.Flags().BoolVarP(&workbook, "workbook", "w", false, "Write a multi-sheet QC workbook instead of a flat CSV")
	Cmd.Flags().StringVar(&reviewOut, "review", "", "Review queue CSV path (default: <output>_review.csv)")
	Cmd.Flags().BoolVar(&keepEmpty, "keep-empty-rows", false, "Keep rows with neither SKU nor description")
	Cmd.Flags().StringVar(&idMapFile, "id-map", "", "Optional external-ID to SKU mapping file (CSV or XLSX)")
}

func processFunc(cmd *cobra.Command, args []string) error {
	if root.SharedFlags.Input == "" || root.SharedFlags.Reference == "" || root.SharedFlags.Output == "" {
		return fmt.Errorf("process requires --input, --reference and --output")
	}

	cfg := root.Cfg
	if cmd.Flags().Changed("keep-empty-rows") {
		cfg.Pipeline.KeepIdentitylessRows = keepEmpty
	}

	tax, err := taxonomy.NewStore(cfg.Taxonomy.File, root.Log).Load()
	if err != nil {
		return fmt.Errorf("loading taxonomy: %w", err)
	}

	refs, err := pipeline.LoadReferences(root.SharedFlags.Reference, root.Log)
	if err != nil {
		return err
	}

	lines, err := pipeline.LoadSalesExport(root.SharedFlags.Input, root.SharedFlags.Sheet, root.Log)
	if err != nil {
		return err
	}

	var suggester catclass.Suggester
	if cfg.AI.Enabled && cfg.AI.APIKey != "" {
		gemini, err := catclass.NewGeminiSuggester(cmd.Context(), cfg.AI.APIKey, cfg.AI.Model, root.Log)
		if err != nil {
			root.Log.WithError(err).Warn("AI suggester unavailable, continuing without it")
		} else {
			defer gemini.Close()
			suggester = gemini
		}
	}

	p := pipeline.New(cfg, tax, refs, suggester, root.Log)
	if idMapFile != "" {
		idMap, err := pipeline.LoadIDMappings(idMapFile, "", root.Log)
		if err != nil {
			return err
		}
		p.AddIDMappings(idMap)
	}
	result, err := p.Run(cmd.Context(), lines)
	if err != nil {
		return err
	}

	if workbook {
		err = pipeline.WriteQCWorkbook(result.Enriched, result.Review, tax, cfg.Pipeline.HighROIThreshold, root.SharedFlags.Output, root.Log)
	} else {
		err = pipeline.WriteEnrichedCSV(result.Enriched, root.SharedFlags.Output, root.Log)
	}
	if err != nil {
		return err
	}

	// The flat-CSV mode carries the review queue in a sidecar file; the
	// workbook already holds it as a sheet.
	if !workbook {
		path := reviewOut
		if path == "" {
			path = reviewPath(root.SharedFlags.Output)
		}
		if err := pipeline.WriteReviewCSV(result.Review, path, root.Log); err != nil {
			return err
		}
	}

	printSummary(result.Summary)
	return nil
}

func reviewPath(output string) string {
	ext := filepath.Ext(output)
	return strings.TrimSuffix(output, ext) + "_review.csv"
}

func printSummary(s pipeline.Summary) {
	root.Log.WithFields(
		logging.Field{Key: "input_rows", Value: s.InputRows},
		logging.Field{Key: "filtered", Value: s.FilteredRows},
		logging.Field{Key: "charge_lines", Value: s.ChargeLines},
		logging.Field{Key: "dropped", Value: s.DroppedRows},
		logging.Field{Key: "output_rows", Value: s.OutputRows},
		logging.Field{Key: "invoices", Value: s.Invoices},
		logging.Field{Key: "resolved", Value: s.Resolved},
		logging.Field{Key: "unresolved", Value: s.Unresolved},
		logging.Field{Key: "missing_cost", Value: s.MissingCost},
		logging.Field{Key: "review_rows", Value: s.ReviewRows},
	).Info("Run summary")
}
