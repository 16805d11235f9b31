// Package main provides the CLI entry point for xlsxedit.
package main

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/ukaji3/xlsxedit-go/pkg/xlsxedit"
	"github.com/ukaji3/xlsxedit-go/pkg/xlsxedit/models"
	"github.com/ukaji3/xlsxedit-go/pkg/xlsxedit/output"
	"github.com/ukaji3/xlsxedit-go/pkg/xlsxedit/plan"
)

var (
	verbose bool

	outputPath    string
	pretty        bool
	mode          string
	sheetsDir     string
	printAreasDir string

	sheetName    string
	asText       bool
	bold         bool
	italic       bool
	fontColor    string
	fillColor    string
	numberFormat string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "xlsxedit",
		Short: "Edit and inspect xlsx workbooks",
		Long: `xlsxedit edits cell values, formats, column widths and row heights of
xlsx workbooks in place, and exports workbooks as JSON or AsciiDoc.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output to stderr")

	dumpCmd := &cobra.Command{
		Use:   "dump [input.xlsx]",
		Short: "Export workbook content as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  runDump,
	}
	dumpCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	dumpCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	dumpCmd.Flags().StringVar(&mode, "mode", "standard", "Export mode: light, standard, verbose")
	dumpCmd.Flags().StringVar(&sheetsDir, "sheets-dir", "", "Directory for per-sheet output files")
	dumpCmd.Flags().StringVar(&printAreasDir, "print-areas-dir", "", "Directory for per-print-area output files")

	adocCmd := &cobra.Command{
		Use:   "adoc [input.xlsx]",
		Short: "Render a sheet as an AsciiDoc table",
		Args:  cobra.ExactArgs(1),
		RunE:  runAdoc,
	}
	adocCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	adocCmd.Flags().StringVar(&sheetName, "sheet", "", "Sheet name (default: first sheet)")

	setCmd := &cobra.Command{
		Use:   "set [input.xlsx] [cell] [value]",
		Short: "Write one cell value, optionally with a format",
		Args:  cobra.ExactArgs(3),
		RunE:  runSet,
	}
	setCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: overwrite input)")
	setCmd.Flags().StringVar(&sheetName, "sheet", "", "Sheet name (default: first sheet)")
	setCmd.Flags().BoolVar(&asText, "text", false, "Store the value as text even if it looks like a number")
	setCmd.Flags().BoolVar(&bold, "bold", false, "Bold font")
	setCmd.Flags().BoolVar(&italic, "italic", false, "Italic font")
	setCmd.Flags().StringVar(&fontColor, "color", "", "Font color as RRGGBB")
	setCmd.Flags().StringVar(&fillColor, "fill", "", "Solid fill color as RRGGBB")
	setCmd.Flags().StringVar(&numberFormat, "number-format", "", "Number format code, e.g. 0.00")

	applyCmd := &cobra.Command{
		Use:   "apply [input.xlsx] [plan.yaml]",
		Short: "Apply a YAML edit plan",
		Args:  cobra.ExactArgs(2),
		RunE:  runApply,
	}
	applyCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: overwrite input)")

	rootCmd.AddCommand(dumpCmd, adocCmd, setCmd, applyCmd)
	return rootCmd
}

func logger() *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func open(path string, opts xlsxedit.Options) (*xlsxedit.Workbook, error) {
	opts.Logger = logger()
	wb, err := xlsxedit.Open(path, opts)
	if err != nil {
		return nil, fmt.Errorf("open failed: %w", err)
	}
	return wb, nil
}

func selectSheet(wb *xlsxedit.Workbook) (*xlsxedit.Sheet, error) {
	if sheetName == "" {
		return wb.SheetAt(1)
	}
	return wb.Sheet(sheetName)
}

func save(wb *xlsxedit.Workbook) error {
	if outputPath != "" {
		return wb.SaveAs(outputPath)
	}
	return wb.Save()
}

func runDump(cmd *cobra.Command, args []string) error {
	exportMode, ok := xlsxedit.ParseMode(mode)
	if !ok {
		return fmt.Errorf("invalid mode: %s (must be light, standard, or verbose)", mode)
	}
	opts := xlsxedit.Options{Mode: exportMode}

	wb, err := open(args[0], opts)
	if err != nil {
		return err
	}
	defer wb.Close()

	data, err := wb.Export(opts)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	jsonData, err := output.ToJSON(data, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else if sheetsDir == "" && printAreasDir == "" {
		fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
	}

	if sheetsDir != "" {
		if err := writeSheetFiles(data, sheetsDir); err != nil {
			return fmt.Errorf("failed to write sheet files: %w", err)
		}
	}

	if printAreasDir != "" {
		if err := writePrintAreaFiles(data, printAreasDir); err != nil {
			return fmt.Errorf("failed to write print area files: %w", err)
		}
	}

	return nil
}

func writeSheetFiles(wb *models.WorkbookData, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	for _, name := range wb.SheetNames {
		sheet := wb.Sheets[name]
		jsonData, err := output.SheetToJSON(&sheet, pretty)
		if err != nil {
			return err
		}

		filename := filepath.Join(dir, name+".json")
		if err := os.WriteFile(filename, jsonData, 0644); err != nil {
			return err
		}
	}

	return nil
}

func writePrintAreaFiles(wb *models.WorkbookData, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	for _, name := range wb.SheetNames {
		sheet := wb.Sheets[name]
		for i, area := range sheet.PrintAreas {
			view := output.CreatePrintAreaView(wb.BookName, name, sheet, area)
			jsonData, err := output.PrintAreaViewToJSON(&view, pretty)
			if err != nil {
				return err
			}

			filename := filepath.Join(dir, fmt.Sprintf("%s_area%d.json", name, i+1))
			if err := os.WriteFile(filename, jsonData, 0644); err != nil {
				return err
			}
		}
	}

	return nil
}

func runAdoc(cmd *cobra.Command, args []string) error {
	wb, err := open(args[0], xlsxedit.DefaultOptions())
	if err != nil {
		return err
	}
	defer wb.Close()

	s, err := selectSheet(wb)
	if err != nil {
		return err
	}
	text, err := output.ToAsciiDoc(s)
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}
	if outputPath != "" {
		return os.WriteFile(outputPath, text, 0644)
	}
	_, err = cmd.OutOrStdout().Write(text)
	return err
}

func runSet(cmd *cobra.Command, args []string) error {
	wb, err := open(args[0], xlsxedit.DefaultOptions())
	if err != nil {
		return err
	}
	defer wb.Close()

	s, err := selectSheet(wb)
	if err != nil {
		return err
	}

	var value interface{} = args[2]
	if !asText {
		value = parseValue(args[2])
	}

	if f, ok := formatFromFlags(); ok {
		err = s.WriteWithFormat(args[1], value, f)
	} else {
		err = s.Write(args[1], value)
	}
	if err != nil {
		return err
	}
	return save(wb)
}

func runApply(cmd *cobra.Command, args []string) error {
	p, err := plan.LoadFile(args[1])
	if err != nil {
		return err
	}

	wb, err := open(args[0], xlsxedit.DefaultOptions())
	if err != nil {
		return err
	}
	defer wb.Close()

	if err := p.Apply(wb); err != nil {
		return err
	}
	return save(wb)
}

// parseValue reads booleans and numbers the way a spreadsheet would.
func parseValue(s string) interface{} {
	switch s {
	case "TRUE", "true":
		return true
	case "FALSE", "false":
		return false
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
		return f
	}
	return s
}

func formatFromFlags() (models.Format, bool) {
	var f models.Format
	f.Font.Bold = bold
	f.Font.Italic = italic
	if fontColor != "" {
		f.Font.Color = models.RGBColor(fontColor)
	}
	if fillColor != "" {
		f.Fill.Pattern = "solid"
		f.Fill.Foreground = models.RGBColor(fillColor)
	}
	f.NumberFormat.Code = numberFormat
	return f, f != models.Format{}
}
