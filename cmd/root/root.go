// Package root contains the root command for the application
package root

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"rmachado/extrato-xlsx/internal/classifier"
	"rmachado/extrato-xlsx/internal/config"
	"rmachado/extrato-xlsx/internal/logging"
	"rmachado/extrato-xlsx/internal/store"
	"rmachado/extrato-xlsx/internal/writer"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input  string
	Output string
	Format string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg is the application configuration loaded before any command runs
	Cfg *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "extrato-xlsx",
		Short: "A CLI tool to extract transaction lines from bank statements into XLSX.",
		Long: `extrato-xlsx reads Brazilian bank statements (.txt, .csv or .pdf),
recognizes transaction lines and writes one spreadsheet row per line with
the date, description, amount and balance split into their own columns.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to extrato-xlsx!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cfg, err := config.Load()
			if err != nil {
				Log.Fatalf("Failed to load configuration: %v", err)
			}
			Cfg = cfg
			Log = config.ConfigureLogging(cfg)

			// Hand the configured logger to every package that logs.
			writer.SetLogger(GetLogrusAdapter())
		},
	}

	// SharedFlags holds common flags accessible to all commands
	SharedFlags = CommonFlags{}

	// Specific convert/batch command flags
	Column       string
	MinNumbers   int
	Contains     []string
	NoDateFilter bool
	KeepAllLines bool
	TableMode    bool
)

// GetLogrusAdapter wraps the shared logrus instance in the logging.Logger
// interface parsers expect.
func GetLogrusAdapter() logging.Logger {
	return logging.NewLogrusAdapterFromLogger(Log)
}

// Rules builds the line classifier ruleset from configuration and flags.
// Flags that were set on the command line win over the config file.
func Rules(cmd *cobra.Command) classifier.Ruleset {
	rules := classifier.Default()

	if Cfg != nil {
		rules.RequireDate = Cfg.Heuristics.RequireDate
		rules.MinNumbers = Cfg.Heuristics.MinNumbers
		rules.AllowKeywords = Cfg.Heuristics.Contains

		if Cfg.Heuristics.StopwordsFile != "" {
			keywords := store.NewKeywordStore(Cfg.Heuristics.StopwordsFile)
			keywords.SetLogger(GetLogrusAdapter())
			rules.Stopwords = keywords.Load(classifier.DefaultStopwords())
		}
	}

	if cmd.Flags().Changed("no-date-filter") {
		rules.RequireDate = !NoDateFilter
	}
	if cmd.Flags().Changed("min-numbers") {
		rules.MinNumbers = MinNumbers
	}
	if cmd.Flags().Changed("contains") {
		rules.AllowKeywords = Contains
	}

	return rules
}

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Format, "format", "f", "xlsx", "Output format (xlsx or csv)")
	Cmd.PersistentFlags().StringVar(&Column, "col", "", "Column name holding the statement text (CSV input)")
	Cmd.PersistentFlags().IntVar(&MinNumbers, "min-numbers", 2, "Minimum numeric tokens for a PDF line to count as a transaction")
	Cmd.PersistentFlags().StringSliceVar(&Contains, "contains", nil, "Keep only PDF lines containing one of these keywords")
	Cmd.PersistentFlags().BoolVar(&NoDateFilter, "no-date-filter", false, "Do not require a leading DD/MM/YYYY date on PDF lines")
	Cmd.PersistentFlags().BoolVar(&KeepAllLines, "keep-all-lines", false, "Bypass the PDF line classifier and keep every line")
	Cmd.PersistentFlags().BoolVar(&TableMode, "table-mode", false, "Extract PDF ruled tables instead of text lines")
}
