// Package root contains the root command for the application
package root

import (
	"github.com/spf13/cobra"

	"source4/dash-etl/internal/config"
	"source4/dash-etl/internal/logging"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input     string
	Reference string
	Output    string
	Sheet     string
}

var (
	// Log is the shared logger instance for commands. Reconfigured from
	// the loaded configuration in PersistentPreRunE.
	Log = logging.NewLogrusAdapter("info", "text")

	// Cfg is the application configuration, loaded before any command runs.
	Cfg *config.Config

	// SharedFlags are the flags common to the file-processing commands.
	SharedFlags = CommonFlags{}

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "dash-etl",
		Short: "Enrich and reconcile sales exports for dashboard import.",
		Long: `dash-etl turns raw ERP sales exports into dashboard-ready records:
it normalizes SKUs, resolves costs and vendors against the master catalog,
allocates invoice-level shipping and discounts across product lines, and
queues unclassifiable products for human review. It can also reconcile a
pipeline output against a reference workbook field by field.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to dash-etl!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.LoadEnv()

			cfg, err := config.InitializeConfig()
			if err != nil {
				return err
			}
			Cfg = cfg
			Log = logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)
			return nil
		},
	}
)

// Init registers the root command's persistent flags.
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input sales export (CSV or XLSX)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Reference, "reference", "r", "", "Master reference catalog CSV")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file path")
	Cmd.PersistentFlags().StringVar(&SharedFlags.Sheet, "sheet", "", "Workbook sheet to read (default: first sheet)")
}
