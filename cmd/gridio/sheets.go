package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ukaji3/gridio-go/pkg/gridio"
)

func newSheetsCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "sheets <file>",
		Short: "List sheet names",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wb, err := gridio.OpenReadOnly(args[0], c.options())
			if err != nil {
				return err
			}
			for _, name := range wb.SheetNames() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func newAddSheetCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "add-sheet <file> [name]",
		Short: "Add an empty sheet and print its final name",
		Long: `Add an empty sheet. The name is cleaned up first: quotes around it and the
characters / \ ? * : [ ] are removed, it is cut to 30 characters, and a blank
or reserved name becomes SheetN.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) == 2 {
				name = args[1]
			}
			wb, err := gridio.Open(args[0], c.options())
			if err != nil {
				return err
			}
			defer wb.Close()

			sheet, err := wb.AddSheet(name)
			if err != nil {
				return err
			}
			if err := wb.Save(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), sheet.Name())
			return nil
		},
	}
}

func newRemoveSheetCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "remove-sheet <file> <name>",
		Short: "Delete a sheet",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			wb, err := gridio.Open(args[0], c.options())
			if err != nil {
				return err
			}
			defer wb.Close()

			if err := wb.RemoveSheet(args[1]); err != nil {
				return err
			}
			return wb.Save()
		},
	}
}
