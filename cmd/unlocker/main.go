// Excel Worksheet Unlocker
//
// Rewrites .xlsx workbook archives to strip per-worksheet sheetProtection
// markers, producing an unprotected copy. Every other archive member is
// copied byte for byte, preserving entry order and metadata.
//
// Out of scope: workbook-level protection and password-encrypted files.
package main

import (
	"os"

	"github.com/Noshadi-sec/Excel-Worksheet-Unlocker/internal/cli"
)

// version is displayed by the --version flag.
// Format: "vMAJOR.MINOR" (e.g., "v1.0")
const version = "v1.0"

func main() {
	if err := cli.Execute(version); err != nil {
		os.Exit(1)
	}
}
