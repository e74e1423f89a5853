// Package categorize handles ad-hoc product classification.
package categorize

import (
	"fmt"

	"github.com/spf13/cobra"

	"source4/dash-etl/cmd/root"
	"source4/dash-etl/internal/catclass"
	"source4/dash-etl/internal/logging"
	"source4/dash-etl/internal/models"
	"source4/dash-etl/internal/taxonomy"
	"source4/dash-etl/internal/vendorclass"
)

var (
	title  string
	sku    string
	vendor string
	useAI  bool
)

// Cmd represents the categorize command
var Cmd = &cobra.Command{
	Use:   "categorize",
	Short: "Classify a single product title",
	Long: `Categorize runs the vendor and category classifiers over one product,
showing what the pipeline would do with it: the canonical vendor, the
suggested category with its confidence, and whether the suggestion would
be applied automatically or routed to review.`,
	RunE: categorizeFunc,
}

func init() {
	Cmd.Flags().StringVarP(&title, "title", "t", "", "Product title to classify")
	Cmd.Flags().StringVarP(&sku, "sku", "s", "", "Product SKU (optional)")
	Cmd.Flags().StringVar(&vendor, "vendor", "", "Vendor name as the export carries it (optional)")
	Cmd.Flags().BoolVar(&useAI, "ai", false, "Also ask the AI suggester when keywords find nothing")
	_ = Cmd.MarkFlagRequired("title")
}

func categorizeFunc(cmd *cobra.Command, args []string) error {
	cfg := root.Cfg

	tax, err := taxonomy.NewStore(cfg.Taxonomy.File, root.Log).Load()
	if err != nil {
		return fmt.Errorf("loading taxonomy: %w", err)
	}

	vendors := vendorclass.New(tax, root.Log)
	cats := catclass.New(tax, cfg.Classification.ConfidenceDivisor, root.Log)

	canonical := vendors.Classify("", vendor, sku, title)
	sugg := cats.Classify(title, "")

	if useAI && sugg.Source == models.SourceUnresolved {
		apiKey := cfg.AI.APIKey
		if apiKey == "" {
			root.Log.Warn("AI requested but no API key configured")
		} else {
			gemini, err := catclass.NewGeminiSuggester(cmd.Context(), apiKey, cfg.AI.Model, root.Log)
			if err != nil {
				return err
			}
			defer gemini.Close()

			if cat, err := gemini.Suggest(cmd.Context(), title, cats.CategoryNames()); err != nil {
				root.Log.WithError(err).Warn("AI suggestion failed")
			} else {
				root.Log.WithField(logging.FieldCategory, cat).Info("AI suggestion")
			}
		}
	}

	root.Log.WithFields(
		logging.Field{Key: logging.FieldVendor, Value: canonical},
		logging.Field{Key: logging.FieldCategory, Value: sugg.Category},
		logging.Field{Key: "confidence", Value: fmt.Sprintf("%.2f", sugg.Confidence)},
		logging.Field{Key: "source", Value: string(sugg.Source)},
		logging.Field{Key: "auto_applicable", Value: sugg.AutoApplicable()},
	).Info("Classification result")
	return nil
}
