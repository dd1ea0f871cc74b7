// Package workbook rewrites .xlsx workbook archives to strip per-worksheet
// protection markers. The rewrite is a single pass over the zip entries:
// worksheet members get the marker removed, everything else is copied byte
// for byte, and entry order and header metadata are preserved throughout.
package workbook

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/Noshadi-sec/Excel-Worksheet-Unlocker/internal/log"
)

// StatusFunc receives human-readable status messages as the rewrite
// progresses, one per worksheet where a removal occurred plus a final
// summary line. It must not panic.
type StatusFunc func(message string)

// worksheetPrefix designates the archive members holding worksheet XML.
const worksheetPrefix = "xl/worksheets/"

// protectionPattern matches a <sheetProtection .../> element lexically: the
// shortest span from the tag open to the next self-closing terminator,
// whatever attributes lie in between. (?s) lets a tag wrap across lines.
// This is deliberately not an XML parse; the same literal sequence inside a
// comment or an attribute value would also match. The payoff is that every
// byte outside the matched spans is left exactly as it was.
var protectionPattern = regexp.MustCompile(`(?s)<sheetProtection.*?/>`)

// Result reports what a RemoveProtection run did.
type Result struct {
	// ProtectionRemoved is true if at least one marker was removed
	// anywhere in the workbook.
	ProtectionRemoved bool

	// ModifiedSheets lists the archive members that were rewritten, in
	// archive order.
	ModifiedSheets []string

	// EntriesWritten counts all members copied to the destination.
	EntriesWritten int
}

// RemoveProtection copies the workbook at inputPath to outputPath,
// stripping every protection marker found in worksheet members. The
// destination is written even when nothing is found, so a clean run still
// yields a full, valid copy. On any failure the partial destination file
// is removed and a *ProcessError naming the failing entry is returned.
//
// The rewrite is synchronous and non-reentrant; concurrent calls against
// the same destination path are the caller's responsibility to prevent.
func RemoveProtection(inputPath, outputPath string, status StatusFunc) (*Result, error) {
	if status == nil {
		status = func(string) {}
	}

	zin, err := zip.OpenReader(inputPath)
	if err != nil {
		return nil, &ProcessError{Op: "open", Path: inputPath, Err: err}
	}
	defer zin.Close()

	fout, err := os.Create(outputPath)
	if err != nil {
		return nil, &ProcessError{Op: "create", Path: outputPath, Err: err}
	}
	zout := zip.NewWriter(fout)

	// A failed run must not leave anything behind that could be mistaken
	// for a finished workbook.
	cleanup := func() {
		_ = zout.Close()
		_ = fout.Close()
		_ = os.Remove(outputPath)
	}

	result := &Result{}
	for _, entry := range zin.File {
		payload, err := readEntry(entry)
		if err != nil {
			cleanup()
			return nil, &ProcessError{Op: "read", Path: entry.Name, Err: err}
		}

		if strings.HasPrefix(entry.Name, worksheetPrefix) {
			if !utf8.Valid(payload) {
				cleanup()
				return nil, &ProcessError{Op: "decode", Path: entry.Name, Err: ErrInvalidUTF8}
			}
			xml := string(payload)
			if n := len(protectionPattern.FindAllStringIndex(xml, -1)); n > 0 {
				result.ProtectionRemoved = true
				result.ModifiedSheets = append(result.ModifiedSheets, entry.Name)
				status(fmt.Sprintf("Found and removed protection in: %s", entry.Name))
				log.Debug("removed protection markers",
					log.String("entry", entry.Name), log.Int("count", n))
				payload = []byte(protectionPattern.ReplaceAllString(xml, ""))
			}
		}

		if err := writeEntry(zout, entry, payload); err != nil {
			cleanup()
			return nil, &ProcessError{Op: "write", Path: entry.Name, Err: err}
		}
		result.EntriesWritten++
	}

	// Close the writer before the file so the central directory is
	// flushed; a failure at either step still removes the output.
	if err := zout.Close(); err != nil {
		_ = fout.Close()
		_ = os.Remove(outputPath)
		return nil, &ProcessError{Op: "finalize", Path: outputPath, Err: err}
	}
	if err := fout.Close(); err != nil {
		_ = os.Remove(outputPath)
		return nil, &ProcessError{Op: "finalize", Path: outputPath, Err: err}
	}

	if result.ProtectionRemoved {
		status(fmt.Sprintf("Success! Unprotected file saved as: %s", outputPath))
	} else {
		status("No worksheet protection was found in the file.")
	}
	log.Info("workbook rewritten",
		log.String("output", outputPath),
		log.Int("entries", result.EntriesWritten),
		log.Bool("protection_removed", result.ProtectionRemoved))

	return result, nil
}

// readEntry reads a member's full payload into memory. Workbook parts are
// small, and whole-payload buffering keeps the pass-through copy byte-exact.
func readEntry(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// writeEntry writes payload under a copy of the source member's header so
// its name, timestamps, and compression method survive the rewrite. The
// zip writer recomputes sizes and CRC from the payload it is given.
func writeEntry(zw *zip.Writer, src *zip.File, payload []byte) error {
	hdr := src.FileHeader
	w, err := zw.CreateHeader(&hdr)
	if err != nil {
		return err
	}
	_, err = w.Write(payload)
	return err
}
