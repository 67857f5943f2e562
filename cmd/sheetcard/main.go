// Package main provides the CLI entry point for sheetcard.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sheetcard/sheetcard-go/internal/config"
	"github.com/sheetcard/sheetcard-go/internal/logging"
	"github.com/sheetcard/sheetcard-go/internal/server"
	"github.com/sheetcard/sheetcard-go/pkg/sheetcard"
	"github.com/sheetcard/sheetcard-go/pkg/sheetcard/models"
	"github.com/sheetcard/sheetcard-go/pkg/sheetcard/output"
	"github.com/spf13/cobra"
)

var (
	outputPath string
	pretty     bool
	format     string
	sheetName  string
	headerRows int
	headerMode string
	viewMode   string
	cellRange  string
	printArea  bool
	rawValues  bool
	sheetsDir  string
	addr       string
	logLevel   string
)

var (
	cfg    *config.Config
	logger *logging.Logger
)

func main() {
	// A missing .env file is fine; the environment still applies.
	_ = godotenv.Load()

	c, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}

	if err := newRootCmd(c).Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. Flag defaults are taken from c.
func newRootCmd(c *config.Config) *cobra.Command {
	cfg = c
	rootCmd := &cobra.Command{
		Use:   "sheetcard",
		Short: "Present spreadsheet sheets as tables or per-record cards",
		Long: `sheetcard loads .xlsx workbooks into merge-aware grids and renders
each data row either as a flat table row or as a pivoted card whose
header labels keep the shape of the sheet's merged header.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := cfg.LogLevel
			if logLevel != "" {
				level = logLevel
			}
			logger = logging.New(log.New(cmd.ErrOrStderr(), "", log.LstdFlags), logging.ParseLevel(level))
		},
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: error, warn, info, debug (default: $LOG_LEVEL or info)")

	rootCmd.AddCommand(sheetsCmd(), viewCmd(), serveCmd())
	return rootCmd
}

func sheetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sheets [input.xlsx]",
		Short: "List the sheets of a workbook",
		Args:  cobra.ExactArgs(1),
		RunE:  runSheets,
	}
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	return cmd
}

func viewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view [input.xlsx]",
		Short: "Render a sheet as a table or as per-record cards",
		Args:  cobra.ExactArgs(1),
		RunE:  runView,
	}
	d := cfg.Defaults
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	cmd.Flags().StringVar(&format, "format", "json", "Output format: json, text, html")
	cmd.Flags().StringVar(&sheetName, "sheet", "", "Sheet to render (default: first sheet)")
	cmd.Flags().IntVar(&headerRows, "header-rows", d.HeaderRows, "Number of leading header rows")
	cmd.Flags().StringVar(&headerMode, "header-mode", d.HeaderMode, "Header labels: single, composite")
	cmd.Flags().StringVar(&viewMode, "mode", d.ViewMode, "View mode: table, pivoted")
	cmd.Flags().StringVar(&cellRange, "range", "", "Restrict sheets to an A1 range such as B2:F20")
	cmd.Flags().BoolVar(&printArea, "print-area", false, "Restrict sheets to their print area")
	cmd.Flags().BoolVar(&rawValues, "raw", false, "Read values without number formats")
	cmd.Flags().StringVar(&sheetsDir, "sheets-dir", "", "Render every sheet into this directory, one file per sheet")
	return cmd
}

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve workbook uploads and sheet views over HTTP",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
	cmd.Flags().StringVar(&addr, "addr", cfg.Server.Addr, "Listen address")
	return cmd
}

func loadOptions(inputPath string) sheetcard.Options {
	opts := sheetcard.Options{
		BookName:     filepath.Base(inputPath),
		Range:        cellRange,
		UsePrintArea: printArea,
		RawValues:    rawValues,
		Limits:       cfg.LoadLimits(),
	}
	if sheetName != "" && sheetsDir == "" {
		opts.Sheets = []string{sheetName}
	}
	return opts
}

func load(ctx context.Context, inputPath string, opts sheetcard.Options) (*models.Workbook, error) {
	lg := logger.With("load")
	wb, err := sheetcard.LoadFile(ctx, inputPath, opts)
	if err != nil {
		return nil, fmt.Errorf("load failed: %w", err)
	}
	for _, s := range wb.Sheets {
		for _, m := range s.SkippedMerges {
			lg.Warn("%s: skipped merge %s (overlapping or outside the sheet)", s.Name, m.Ref())
		}
		lg.Debug("%s: %d rows, %d cols, %d merges", s.Name, s.Grid.Rows(), s.Grid.Cols(), len(s.Merges))
	}
	return wb, nil
}

func runSheets(cmd *cobra.Command, args []string) error {
	wb, err := load(cmd.Context(), args[0], sheetcard.Options{
		BookName: filepath.Base(args[0]),
		Limits:   cfg.LoadLimits(),
	})
	if err != nil {
		return err
	}

	jsonData, err := output.ToJSON(output.Listing(wb), pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
	return nil
}

func runView(cmd *cobra.Command, args []string) error {
	inputPath := args[0]
	wb, err := load(cmd.Context(), inputPath, loadOptions(inputPath))
	if err != nil {
		return err
	}
	viewOpts := sheetcard.ViewOptions{
		HeaderRows: headerRows,
		HeaderMode: headerMode,
		Mode:       viewMode,
	}

	if sheetsDir != "" {
		return writeSheetFiles(wb, viewOpts, sheetsDir)
	}

	r, err := sheetcard.View(wb, sheetName, viewOpts)
	if err != nil {
		return err
	}

	if outputPath == "" {
		return render(cmd.OutOrStdout(), r)
	}
	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	defer f.Close()
	if err := render(f, r); err != nil {
		return err
	}
	return f.Close()
}

// writeSheetFiles renders every sheet of wb into dir. Sheets whose header
// settings do not fit are skipped with a warning.
func writeSheetFiles(wb *models.Workbook, opts sheetcard.ViewOptions, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	lg := logger.With("view")
	for _, s := range wb.Sheets {
		r, err := sheetcard.View(wb, s.Name, opts)
		if err != nil {
			lg.Warn("skipping sheet %q: %v", s.Name, err)
			continue
		}

		filename := filepath.Join(dir, s.Name+extension())
		f, err := os.Create(filename)
		if err != nil {
			return err
		}
		err = render(f, r)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return err
		}
		lg.Info("wrote %s", filename)
	}
	return nil
}

func extension() string {
	switch format {
	case "text":
		return ".txt"
	case "html":
		return ".html"
	default:
		return ".json"
	}
}

func render(w io.Writer, r models.Renderable) error {
	switch format {
	case "json":
		jsonData, err := output.ToJSON(r, pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		_, err = fmt.Fprintln(w, string(jsonData))
		return err
	case "text":
		return output.WriteText(w, r)
	case "html":
		return output.WriteHTML(w, r)
	default:
		return fmt.Errorf("invalid format: %s (must be json, text, or html)", format)
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverCfg := *cfg
	serverCfg.Server.Addr = addr
	return server.NewServer(&serverCfg, logger).Run(ctx)
}
