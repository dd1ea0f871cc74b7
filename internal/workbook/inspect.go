package workbook

import (
	"archive/zip"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
)

// Info is a read-only report on a workbook's protection state.
type Info struct {
	// SheetNames holds the sheet tab names in workbook order.
	SheetNames []string

	// ProtectedParts lists the worksheet members carrying a protection
	// marker, in archive order.
	ProtectedParts []string
}

// Inspect reports a workbook's sheet names and which worksheet members
// carry a protection marker. It never modifies the file.
func Inspect(path string) (*Info, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &ProcessError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	info := &Info{SheetNames: f.GetSheetList()}

	// The marker scan happens on the raw archive members: excelize
	// exposes sheet metadata but not the untouched worksheet XML, and
	// the scan must see exactly the bytes the rewrite would see.
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, &ProcessError{Op: "open", Path: path, Err: err}
	}
	defer zr.Close()

	for _, entry := range zr.File {
		if !strings.HasPrefix(entry.Name, worksheetPrefix) {
			continue
		}
		payload, err := readEntry(entry)
		if err != nil {
			return nil, &ProcessError{Op: "read", Path: entry.Name, Err: err}
		}
		if !utf8.Valid(payload) {
			return nil, &ProcessError{Op: "decode", Path: entry.Name, Err: ErrInvalidUTF8}
		}
		if protectionPattern.Match(payload) {
			info.ProtectedParts = append(info.ProtectedParts, entry.Name)
		}
	}
	return info, nil
}
