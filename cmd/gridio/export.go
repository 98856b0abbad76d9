package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ukaji3/gridio-go/pkg/gridio"
	"github.com/ukaji3/gridio-go/pkg/gridio/address"
	"github.com/ukaji3/gridio-go/pkg/gridio/convert"
	"github.com/ukaji3/gridio-go/pkg/gridio/grid"
	"github.com/ukaji3/gridio-go/pkg/gridio/output"
	"github.com/ukaji3/gridio-go/pkg/gridio/parser"
)

type exportFlags struct {
	format     string
	header     bool
	infer      bool
	cellRange  string
	outputPath string
	pretty     bool
}

func newExportCmd(c *cli) *cobra.Command {
	f := &exportFlags{}
	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Export a sheet as delimited text or JSON",
		Long: `Export one sheet of a workbook.

Formats:
  csv      quoted, delimited text (see --delimiter and --newline)
  json     table with named, optionally typed columns
  rows     non-empty rows with typed values keyed by column number
  records  array of objects keyed by the header row

Examples:
  gridio export book.xlsx --sheet Prices
  gridio export book.xlsx --format json --header --infer --pretty
  gridio export book.xlsx --range "'My Sheet'!B2:D10" --delimiter '\t'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if !flags.Changed("header") && c.cfg != nil {
				f.header = c.cfg.Header
			}
			if !flags.Changed("infer") && c.cfg != nil {
				f.infer = c.cfg.Infer
			}
			return runExport(cmd, c, f, args[0])
		},
	}

	cmd.Flags().StringVar(&f.format, "format", "csv", "Output format: csv, json, rows, records")
	cmd.Flags().BoolVar(&f.header, "header", false, "Use the first row as column names (env: GRIDIO_HEADER)")
	cmd.Flags().BoolVar(&f.infer, "infer", false, "Infer column types (env: GRIDIO_INFER)")
	cmd.Flags().StringVar(&f.cellRange, "range", "", "Export only this range, e.g. A1:D10 or Sheet1!A1:D10")
	cmd.Flags().StringVarP(&f.outputPath, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().BoolVar(&f.pretty, "pretty", false, "Pretty-print JSON output")
	return cmd
}

func runExport(cmd *cobra.Command, c *cli, f *exportFlags, path string) error {
	opts := c.options()
	wb, err := gridio.OpenReadOnly(path, opts)
	if err != nil {
		return err
	}

	var rng *address.Range
	if f.cellRange != "" {
		sheetName, r, err := address.ParseSheetRange(f.cellRange)
		if err != nil {
			return fmt.Errorf("invalid range %q: %w", f.cellRange, err)
		}
		if sheetName != "" {
			c.sheet = sheetName
		}
		rng = &r
	}

	sheet, err := c.pickSheet(wb)
	if err != nil {
		return err
	}
	g, err := sheet.Grid()
	if err != nil {
		return err
	}

	var m grid.Matrix
	if rng != nil {
		m, err = g.Slice(*rng)
	} else {
		m, err = g.Dense()
	}
	if err != nil {
		return gridio.NewSheetError(sheet.Name(), "read", err)
	}
	tableOpts := convert.TableOptions{Header: f.header, InferTypes: f.infer}

	var data []byte
	switch strings.ToLower(f.format) {
	case "csv":
		data = []byte(convert.ToText(m, opts.TextOptions()))
	case "json":
		var t convert.Table
		if t, err = exportTable(sheet.Name(), g, m, rng, tableOpts); err != nil {
			return err
		}
		data, err = output.TableToJSON(t, f.pretty)
	case "rows":
		if rng != nil {
			g = matrixGrid(m, rng.Start)
		}
		data, err = output.RowsToJSON(path, sheet.Name(), parser.ExtractRows(g), f.pretty)
	case "records":
		tableOpts.Header = true
		var t convert.Table
		if t, err = exportTable(sheet.Name(), g, m, rng, tableOpts); err != nil {
			return err
		}
		data, err = output.ToJSON(tableRecords(t), f.pretty)
	default:
		return fmt.Errorf("invalid format: %s (must be csv, json, rows, or records)", f.format)
	}
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	return writeOutput(cmd.OutOrStdout(), f.outputPath, data)
}

// exportTable builds the table from the stored cells when the whole sheet
// is exported, so that empty but present cells keep their place in type
// inference.
func exportTable(name string, g *grid.Grid, m grid.Matrix, rng *address.Range, opts convert.TableOptions) (convert.Table, error) {
	if rng == nil {
		return convert.TableFromGrid(name, g, opts)
	}
	return convert.TableFromMatrix(name, m, opts), nil
}

// matrixGrid places the non-empty values of m back at their sheet
// positions, with origin as the top-left cell.
func matrixGrid(m grid.Matrix, origin address.Address) *grid.Grid {
	g := grid.New()
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			if v := m.At(x, y); v != "" {
				g.PutAt(address.Address{Col: origin.Col + x, Row: origin.Row + y}, v)
			}
		}
	}
	return g
}

// tableRecords turns each table row into an object keyed by column name.
// Absent cells are left out.
func tableRecords(t convert.Table) []map[string]any {
	records := make([]map[string]any, 0, len(t.Rows))
	for _, row := range t.Rows {
		rec := make(map[string]any, len(t.Columns))
		for x, col := range t.Columns {
			if x < len(row) && row[x] != nil {
				rec[col.Name] = row[x]
			}
		}
		records = append(records, rec)
	}
	return records
}
