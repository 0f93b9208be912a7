package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"salon-verifier/config"
	"salon-verifier/models"
	"salon-verifier/search"
	"salon-verifier/services"
	"salon-verifier/storage"
	"salon-verifier/utils"
)

type options struct {
	engine    string
	timeout   int
	output    string
	status    string
	logLevel  string
	noPreview bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "salon-verifier <listings.csv|listings.xlsx>",
		Short: "Check salon listings for Yelp, Instagram, Vagaro and StyleSeat presence",
		Long: `salon-verifier reads a listings file with Title, Google Address and Location
columns, searches the web for each business and writes an annotated CSV
named <input>_verified_salons.csv.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(cmd, opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.engine, "engine", "", "Search engine: google, browser, tavily (overrides SEARCH_ENGINE)")
	cmd.Flags().IntVar(&opts.timeout, "timeout", 0, "Per-search timeout in seconds (overrides SEARCH_TIMEOUT_SEC)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output CSV path (default: <input>_verified_salons.csv)")
	cmd.Flags().StringVar(&opts.status, "status", services.StatusAll, "Show only rows with this Verification Status in the preview")
	cmd.Flags().StringVar(&opts.logLevel, "log", "", "Log level: debug, info, warn, error (overrides LOG_LEVEL)")
	cmd.Flags().BoolVar(&opts.noPreview, "no-preview", false, "Skip the results table")

	return cmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func runVerify(cmd *cobra.Command, opts *options, inputPath string) error {
	cfg := config.Load()
	applyFlags(cfg, opts)

	logger := utils.NewLoggerTo(cmd.ErrOrStderr())
	if err := logger.SetLevel(cfg.LogLevel); err != nil {
		return err
	}
	if err := validateStatus(opts.status); err != nil {
		return err
	}

	logger.Info("=== Listing verification starting ===")
	logger.Info("Config: engine %s | timeout %v | input %s", cfg.SearchEngine, cfg.SearchTimeout(), inputPath)

	table, err := storage.ReadTable(inputPath)
	if err != nil {
		logger.Error("Failed to read input: %v", err)
		return err
	}

	rows, err := services.NewNormalizer(logger).Normalize(table)
	if err != nil {
		logger.Error("Input is missing a required column: %v", err)
		return err
	}

	engine, err := search.New(cfg, logger)
	if err != nil {
		logger.Error("Failed to set up search engine: %v", err)
		return err
	}
	if closer, ok := engine.(io.Closer); ok {
		defer closer.Close()
	}

	verifier := services.NewVerifier(engine, cfg.SearchTimeout(), logger)
	records := verifier.Run(cmd.Context(), rows)

	outPath := outputPath(inputPath, cfg.OutputDir, opts.output)
	if err := writeRecords(outPath, records); err != nil {
		logger.Error("Failed to write results: %v", err)
		return err
	}
	logger.Info("Results saved to %s", outPath)

	out := cmd.OutOrStdout()
	if !opts.noPreview {
		fmt.Fprintf(out, "\nFilter options: %v (showing %q)\n", services.StatusOptions(records), opts.status)
		services.RenderTable(out, services.FilterByStatus(records, opts.status))
	}

	summary := services.NewSummaryService(logger)
	summary.Print(out, summary.Generate(records))
	return nil
}

func applyFlags(cfg *config.Config, opts *options) {
	if opts.engine != "" {
		cfg.SearchEngine = opts.engine
	}
	if opts.timeout > 0 {
		cfg.SearchTimeoutSec = opts.timeout
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}
}

func validateStatus(status string) error {
	switch status {
	case "", services.StatusAll,
		string(models.StatusVerified), string(models.StatusMaybe), string(models.StatusNotFound):
		return nil
	}
	return fmt.Errorf("unknown status %q: want All, Verified, Maybe or Not Found", status)
}

// outputPath resolves the artifact location: explicit flag, then OUTPUT_DIR,
// then next to the input file.
func outputPath(inputPath, outputDir, explicit string) string {
	if explicit != "" {
		return explicit
	}
	if outputDir == "" {
		outputDir = filepath.Dir(inputPath)
	}
	return filepath.Join(outputDir, services.OutputFileName(inputPath))
}

func writeRecords(path string, records []models.VerificationRecord) error {
	w, err := storage.NewCSVWriter(path)
	if err != nil {
		return err
	}
	if err := w.WriteRecords(records); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}
