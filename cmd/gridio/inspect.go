package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ukaji3/gridio-go/pkg/gridio"
	"github.com/ukaji3/gridio-go/pkg/gridio/address"
	"github.com/ukaji3/gridio-go/pkg/gridio/convert"
	"github.com/ukaji3/gridio-go/pkg/gridio/output"
	"github.com/ukaji3/gridio-go/pkg/gridio/parser"
)

// sheetReport summarizes one sheet.
type sheetReport struct {
	Name            string                  `json:"name"`
	UsedRange       string                  `json:"used_range,omitempty"`
	Width           int                     `json:"width"`
	Height          int                     `json:"height"`
	Cells           int                     `json:"cells"`
	TableCandidates []string                `json:"table_candidates"`
	Columns         []convert.ColumnSummary `json:"columns"`
}

func newInspectCmd(c *cli) *cobra.Command {
	var pretty bool
	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Summarize sheets: bounds, table candidates, column statistics",
		Long: `Summarize every sheet, or the one named by --sheet. Columns are named
from the first row and typed from the rest.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wb, err := gridio.OpenReadOnly(args[0], c.options())
			if err != nil {
				return err
			}
			reports, err := inspectWorkbook(cmd, c, wb)
			if err != nil {
				return err
			}
			data, err := output.ToJSON(reports, pretty)
			if err != nil {
				return fmt.Errorf("serialization failed: %w", err)
			}
			return writeOutput(cmd.OutOrStdout(), "", data)
		},
	}
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	return cmd
}

func inspectWorkbook(cmd *cobra.Command, c *cli, wb *gridio.Workbook) ([]sheetReport, error) {
	tables, err := wb.Tables(cmd.Context(), convert.TableOptions{Header: true, InferTypes: true})
	if err != nil {
		return nil, err
	}

	reports := []sheetReport{}
	for i, sheet := range wb.Sheets() {
		if c.sheet != "" && sheet.Name() != c.sheet {
			continue
		}
		g, err := sheet.Grid()
		if err != nil {
			return nil, err
		}
		m, err := g.Dense()
		if err != nil {
			return nil, gridio.NewSheetError(sheet.Name(), "read", err)
		}
		r := sheetReport{
			Name:            sheet.Name(),
			Width:           m.Width(),
			Height:          m.Height(),
			Cells:           g.Len(),
			TableCandidates: parser.DetectTables(m, parser.DefaultTableParams()),
			Columns:         convert.Describe(tables[i]),
		}
		if !m.IsEmpty() {
			r.UsedRange = address.Range{
				End: address.Address{Col: m.Width() - 1, Row: m.Height() - 1},
			}.String()
		}
		if r.TableCandidates == nil {
			r.TableCandidates = []string{}
		}
		reports = append(reports, r)
	}

	if c.sheet != "" && len(reports) == 0 {
		return nil, gridio.NewSheetError(c.sheet, "open", gridio.ErrSheetNotFound)
	}
	return reports, nil
}
