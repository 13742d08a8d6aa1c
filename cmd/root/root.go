// Package root contains the root command for the application
package root

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"warren/finparse/internal/aiclient"
	"warren/finparse/internal/config"
	"warren/finparse/internal/logging"
	"warren/finparse/internal/taxonomy"
)

// CommonFlags represents the flags shared by the processing commands.
type CommonFlags struct {
	Input   string
	Output  string
	Format  string
	Company string
}

var (
	// Log is the shared logger instance for commands.
	Log = logging.NewLogrusAdapter("info", "text")

	// Cfg holds the resolved configuration after PersistentPreRun.
	Cfg = defaultConfig()

	// SharedFlags are accessible to all commands.
	SharedFlags = CommonFlags{}

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "finparse",
		Short: "Analyze and classify financial statement spreadsheets.",
		Long: `finparse converts raw spreadsheet tables (profit and loss, balance sheet,
cash flow) into structured, categorized line items with validation diagnostics.
An AI completion does the primary classification; deterministic fallbacks keep
the pipeline fully functional without it.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to finparse!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			cfg, err := config.Initialize()
			if err != nil {
				Log.WithError(err).Fatal("Failed to load configuration")
			}
			Cfg = *cfg
			Log = logging.NewLogrusAdapterFromLogger(config.ConfigureLogging(cfg))
		},
	}
)

func defaultConfig() config.Config {
	c := config.Config{Validation: config.DefaultValidationConfig()}
	c.Log.Level = "info"
	c.Log.Format = "text"
	return c
}

// Init initializes the root command and all shared flags.
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input CSV file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file (stdout when empty)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Format, "format", "f", "json", "Output format: json or csv")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Company, "company", "c", "", "Company id for custom categories")
}

// Completer builds the AI client from configuration, or returns nil when
// AI is disabled or no API key is configured.
func Completer() aiclient.Completer {
	if !Cfg.AI.Enabled || Cfg.AI.APIKey == "" {
		Log.Debug("AI disabled or unconfigured, running fully local")
		return nil
	}
	return aiclient.NewGeminiClient(Cfg.AI.APIKey, Cfg.AI.Model, Log)
}

// Registry loads the default taxonomy, merged with the company's custom
// categories when a company id is given.
func Registry() (*taxonomy.Registry, error) {
	registry, err := taxonomy.Defaults()
	if err != nil {
		return nil, err
	}
	if SharedFlags.Company == "" {
		return registry, nil
	}

	store := taxonomy.NewCustomStore(Cfg.Taxonomy.CustomCategoriesFile, Log)
	custom, err := store.Load(SharedFlags.Company)
	if err != nil {
		return nil, err
	}
	return registry.Merge(custom)
}

// Context returns the per-run context, bounded by the configured AI
// timeout.
func Context() (context.Context, context.CancelFunc) {
	if Cfg.AI.TimeoutSeconds <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), time.Duration(Cfg.AI.TimeoutSeconds)*time.Second)
}
