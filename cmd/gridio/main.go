// Package main provides the CLI entry point for gridio.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/gridio-go/internal/config"
	"github.com/ukaji3/gridio-go/internal/logging"
	"github.com/ukaji3/gridio-go/pkg/gridio"
)

// cli holds the flags shared by every command.
type cli struct {
	sheet     string
	delimiter escapedString
	newline   escapedString
	logLevel  string
	envFile   string
	cfg       *config.Config
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	rootCmd := &cobra.Command{
		Use:   "gridio",
		Short: "Read and write spreadsheet sheets as grids, text and tables",
		Long: `gridio moves data between xlsx sheets and delimited text, JSON rows,
records and typed tables.`,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
	}

	rootCmd.PersistentFlags().StringVar(&c.sheet, "sheet", "", "Sheet name (default: first sheet)")
	rootCmd.PersistentFlags().Var(&c.delimiter, "delimiter", `Field delimiter, escapes like \t allowed (env: GRIDIO_DELIMITER)`)
	rootCmd.PersistentFlags().Var(&c.newline, "newline", `Line terminator, escapes like \r\n allowed (env: GRIDIO_NEWLINE)`)
	rootCmd.PersistentFlags().StringVar(&c.logLevel, "log-level", "", "ERROR, WARN, INFO, DEBUG or TRACE (env: GRIDIO_LOG_LEVEL)")
	rootCmd.PersistentFlags().StringVar(&c.envFile, "env-file", ".env", "Optional file with GRIDIO_* settings")

	rootCmd.AddCommand(
		newExportCmd(c),
		newImportCmd(c),
		newGetCmd(c),
		newSetCmd(c),
		newSheetsCmd(c),
		newAddSheetCmd(c),
		newRemoveSheetCmd(c),
		newInspectCmd(c),
	)
	return rootCmd
}

// setup loads configuration and fills flags that were not given.
func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(c.envFile)
	if err != nil {
		return err
	}
	c.cfg = cfg

	flags := cmd.Flags()
	if !flags.Changed("delimiter") && cfg.Delimiter != "" {
		if err := c.delimiter.Set(cfg.Delimiter); err != nil {
			return fmt.Errorf("%s: %w", config.EnvDelimiter, err)
		}
	}
	if !flags.Changed("newline") && cfg.Newline != "" {
		if err := c.newline.Set(cfg.Newline); err != nil {
			return fmt.Errorf("%s: %w", config.EnvNewline, err)
		}
	}

	level := cfg.LogLevel
	if c.logLevel != "" {
		l, ok := logging.ParseLevel(c.logLevel)
		if !ok {
			return fmt.Errorf("invalid log level: %s", c.logLevel)
		}
		level = l
	}
	logging.Default.SetLevel(level)
	return nil
}

func (c *cli) options() gridio.Options {
	opts := gridio.DefaultOptions()
	if c.delimiter != "" {
		opts.Delimiter = string(c.delimiter)
	}
	if c.newline != "" {
		opts.LineTerminator = string(c.newline)
	}
	return opts
}

// pickSheet returns the sheet named by --sheet, or the first sheet.
func (c *cli) pickSheet(wb *gridio.Workbook) (*gridio.Sheet, error) {
	if c.sheet != "" {
		return wb.Sheet(c.sheet)
	}
	sheets := wb.Sheets()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	return sheets[0], nil
}

// writeOutput writes data to path, or to w when path is empty.
func writeOutput(w io.Writer, path string, data []byte) error {
	if path != "" {
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}
