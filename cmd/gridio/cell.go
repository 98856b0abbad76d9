package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ukaji3/gridio-go/pkg/gridio"
)

func newGetCmd(c *cli) *cobra.Command {
	var typed bool
	cmd := &cobra.Command{
		Use:   "get <file> <ref>",
		Short: "Print the value of one cell",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			wb, err := gridio.OpenReadOnly(args[0], c.options())
			if err != nil {
				return err
			}
			sheet, err := c.pickSheet(wb)
			if err != nil {
				return err
			}
			cell, err := sheet.Cell(args[1])
			if err != nil {
				return err
			}
			if typed {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", cell.Ref, cell.Kind(), cell.Value)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), cell.Value)
			return nil
		},
	}
	cmd.Flags().BoolVar(&typed, "typed", false, "Also print the reference and inferred type")
	return cmd
}

func newSetCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "set <file> <ref> <value>",
		Short: "Write one cell and save the workbook",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			wb, err := gridio.Open(args[0], c.options())
			if err != nil {
				return err
			}
			defer wb.Close()

			sheet, err := c.pickSheet(wb)
			if err != nil {
				return err
			}
			if err := sheet.SetCell(args[1], args[2]); err != nil {
				return err
			}
			return wb.Save()
		},
	}
}
