package parser

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"io"
	"path"
	"strconv"
	"strings"
)

// ErrInvalidPackage is returned when the input is not a readable
// spreadsheet package.
var ErrInvalidPackage = errors.New("invalid spreadsheet package")

const (
	workbookPart     = "xl/workbook.xml"
	workbookRelsPart = "xl/_rels/workbook.xml.rels"
	sharedStringPart = "xl/sharedStrings.xml"
)

// sheetEntry is a <sheet> element of the workbook part.
type sheetEntry struct {
	name string
	id   int
	rID  string
}

// relationship is a <Relationship> element of a rels part.
type relationship struct {
	typ    string
	target string
}

func findZipFile(r *zip.Reader, name string) *zip.File {
	for _, f := range r.File {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// readZipFile returns the content of the named entry, or nil when the
// package has no such entry.
func readZipFile(r *zip.Reader, name string) ([]byte, error) {
	f := findZipFile(r, name)
	if f == nil {
		return nil, nil
	}
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// resolveRelativePath resolves a relationship target against the
// directory of the part that declared it.
func resolveRelativePath(target, baseDir string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	return path.Clean(path.Join(baseDir, target))
}

func attr(se xml.StartElement, local string) string {
	for _, a := range se.Attr {
		if a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}

// parseWorkbookSheets lists the sheets of the workbook part in order.
func parseWorkbookSheets(data []byte) ([]sheetEntry, error) {
	var sheets []sheetEntry
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		se, ok := token.(xml.StartElement)
		if !ok || se.Name.Local != "sheet" {
			continue
		}
		e := sheetEntry{name: attr(se, "name"), rID: attr(se, "id")}
		e.id, _ = strconv.Atoi(attr(se, "sheetId"))
		if e.name != "" {
			sheets = append(sheets, e)
		}
	}

	return sheets, nil
}

// parseRels maps relationship ids to their resolved part paths.
func parseRels(data []byte, baseDir string) (map[string]relationship, error) {
	result := make(map[string]relationship)
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		se, ok := token.(xml.StartElement)
		if !ok || se.Name.Local != "Relationship" {
			continue
		}
		if attr(se, "TargetMode") == "External" {
			continue
		}
		result[attr(se, "Id")] = relationship{
			typ:    attr(se, "Type"),
			target: resolveRelativePath(attr(se, "Target"), baseDir),
		}
	}

	return result, nil
}
