// Package taxonomycmd manages the classification taxonomy file.
package taxonomycmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"source4/dash-etl/cmd/root"
	"source4/dash-etl/internal/logging"
	"source4/dash-etl/internal/taxonomy"
)

var exportPath string

// Cmd represents the taxonomy command
var Cmd = &cobra.Command{
	Use:   "taxonomy",
	Short: "Inspect or export the classification taxonomy",
	Long: `Taxonomy shows the vendor and category rules the classifiers run with.
With --export the effective taxonomy (compiled-in defaults merged with any
configured file) is written out as YAML, ready to edit and point
taxonomy.file at.`,
	RunE: taxonomyFunc,
}

func init() {
	Cmd.Flags().StringVarP(&exportPath, "export", "e", "", "Write the effective taxonomy to this YAML file")
}

func taxonomyFunc(cmd *cobra.Command, args []string) error {
	store := taxonomy.NewStore(root.Cfg.Taxonomy.File, root.Log)
	tax, err := store.Load()
	if err != nil {
		return fmt.Errorf("loading taxonomy: %w", err)
	}

	root.Log.WithFields(
		logging.Field{Key: "main_vendors", Value: len(tax.MainVendors)},
		logging.Field{Key: "vendor_rules", Value: len(tax.VendorRules)},
		logging.Field{Key: "categories", Value: len(tax.Categories)},
	).Info("Taxonomy loaded")

	if exportPath == "" {
		return nil
	}
	if err := store.Save(tax, exportPath); err != nil {
		return err
	}
	root.Log.WithField(logging.FieldOutputFile, exportPath).Info("Taxonomy exported")
	return nil
}
