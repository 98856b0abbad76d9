package parser

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"

	"github.com/ukaji3/gridio-go/pkg/gridio/address"
	"github.com/ukaji3/gridio-go/pkg/gridio/models"
)

// xlsxC is a <c> element of sheetData.
type xlsxC struct {
	R  string  `xml:"r,attr"`
	T  string  `xml:"t,attr"`
	V  string  `xml:"v"`
	IS *xlsxSI `xml:"is"`
}

// xlsxSI is a shared or inline string item: plain text or rich-text runs.
type xlsxSI struct {
	T string  `xml:"t"`
	R []xlsxR `xml:"r"`
}

type xlsxR struct {
	T string `xml:"t"`
}

func (si *xlsxSI) text() string {
	if si == nil {
		return ""
	}
	s := si.T
	for _, r := range si.R {
		s += r.T
	}
	return s
}

func (c xlsxC) raw(ref string) models.RawCell {
	switch c.T {
	case "s":
		return models.RawCell{Ref: ref, Value: c.V, Shared: true}
	case "inlineStr":
		return models.RawCell{Ref: ref, Value: c.IS.text()}
	}
	return models.RawCell{Ref: ref, Value: c.V}
}

// parseSheetData streams the rows of a worksheet part. Rows without an r
// attribute follow the previous row; cells without one follow the
// previous cell of their row.
func parseSheetData(rd io.Reader) ([]models.Row, error) {
	decoder := xml.NewDecoder(rd)
	var rows []models.Row
	inSheetData := false
	nextCol := 0

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: sheet data: %v", ErrInvalidPackage, err)
		}

		switch t := token.(type) {
		case xml.StartElement:
			switch {
			case t.Name.Local == "sheetData":
				inSheetData = true
			case !inSheetData:
			case t.Name.Local == "row":
				index := 1
				if n := len(rows); n > 0 {
					index = rows[n-1].Index + 1
				}
				if r, err := strconv.Atoi(attr(t, "r")); err == nil && r > 0 {
					index = r
				}
				rows = append(rows, models.Row{Index: index})
				nextCol = 0
			case t.Name.Local == "c" && len(rows) > 0:
				var c xlsxC
				if err := decoder.DecodeElement(&c, &t); err != nil {
					return nil, fmt.Errorf("%w: cell: %v", ErrInvalidPackage, err)
				}
				row := &rows[len(rows)-1]
				ref := c.R
				if ref == "" {
					ref = address.Encode(nextCol, row.Index-1)
				}
				nextCol = address.Decode(ref).Col + 1
				row.Cells = append(row.Cells, c.raw(ref))
			}
		case xml.EndElement:
			if t.Name.Local == "sheetData" {
				return rows, nil
			}
		}
	}

	return rows, nil
}

// parseSharedStrings reads the shared string table.
func parseSharedStrings(data []byte) (models.SharedStrings, error) {
	var sst struct {
		SI []xlsxSI `xml:"si"`
	}
	if err := xml.Unmarshal(data, &sst); err != nil {
		return nil, fmt.Errorf("%w: shared strings: %v", ErrInvalidPackage, err)
	}
	strs := make(models.SharedStrings, len(sst.SI))
	for i := range sst.SI {
		strs[i] = sst.SI[i].text()
	}
	return strs, nil
}
