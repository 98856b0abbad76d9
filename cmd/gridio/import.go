package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ukaji3/gridio-go/internal/logging"
	"github.com/ukaji3/gridio-go/pkg/gridio"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

type importFlags struct {
	encoding string
	create   bool
}

func newImportCmd(c *cli) *cobra.Command {
	f := &importFlags{}
	cmd := &cobra.Command{
		Use:   "import <file> <input>",
		Short: "Replace a sheet with delimited text",
		Long: `Replace the content of a sheet with delimited text read from <input>
("-" reads standard input). Quotes around fields are removed; one trailing
line terminator is ignored.

Examples:
  gridio import book.xlsx data.csv --sheet Data
  gridio import book.xlsx legacy.txt --encoding shift_jis --delimiter '\t'
  cat data.csv | gridio import new.xlsx - --create`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, c, f, args[0], args[1])
		},
	}

	cmd.Flags().StringVar(&f.encoding, "encoding", "utf-8", "Character encoding of the input (WHATWG name, e.g. windows-1252, shift_jis)")
	cmd.Flags().BoolVar(&f.create, "create", false, "Create the workbook and sheet when missing")
	return cmd
}

func runImport(cmd *cobra.Command, c *cli, f *importFlags, path, input string) error {
	var in io.Reader = cmd.InOrStdin()
	if input != "-" {
		file, err := os.Open(input)
		if err != nil {
			return err
		}
		defer file.Close()
		in = file
	}
	r, err := decodeInput(in, f.encoding)
	if err != nil {
		return err
	}
	raw, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	opts := c.options()
	wb, created, err := openOrCreate(path, opts, f.create)
	if err != nil {
		return err
	}
	defer wb.Close()

	sheet, err := c.pickSheet(wb)
	if errors.Is(err, gridio.ErrSheetNotFound) && f.create {
		sheet, err = wb.AddSheet(c.sheet)
	}
	if err != nil {
		return err
	}

	text := strings.TrimSuffix(string(raw), opts.LineTerminator)
	if err := sheet.SetText(text); err != nil {
		return err
	}

	if created {
		err = wb.SaveAs(path)
	} else {
		err = wb.Save()
	}
	if err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "imported into %s!%s\n", path, sheet.Name())
	return nil
}

func openOrCreate(path string, opts gridio.Options, create bool) (*gridio.Workbook, bool, error) {
	wb, err := gridio.Open(path, opts)
	if err == nil {
		return wb, false, nil
	}
	if !create || !errors.Is(err, gridio.ErrFileNotFound) {
		return nil, false, err
	}
	logging.Default.Info("creating %s", path)
	return gridio.Create(opts), true, nil
}

// decodeInput converts r from the named encoding to UTF-8. A byte order
// mark, if present, wins over the name and is dropped.
func decodeInput(r io.Reader, name string) (io.Reader, error) {
	if name == "" {
		name = "utf-8"
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("unknown encoding %q: %w", name, err)
	}
	return transform.NewReader(r, unicode.BOMOverride(enc.NewDecoder())), nil
}
