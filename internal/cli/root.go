package cli

import (
	"github.com/spf13/cobra"

	"github.com/Noshadi-sec/Excel-Worksheet-Unlocker/internal/log"
)

// Version is set by main.go
var Version = "dev"

var verbose bool

// rootCmd is the base command when called without subcommands
var rootCmd = &cobra.Command{
	Use:   "unlocker",
	Short: "Remove worksheet protection from Excel workbooks",
	Long: `unlocker rewrites an .xlsx workbook archive, stripping the
sheetProtection marker from every worksheet while leaving all other
archive members byte-identical. Entry order and metadata are preserved,
so the output opens anywhere the input did.

It does not touch workbook-level protection, and it cannot open
password-encrypted files.`,
	Version: Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.EnableDebugLogging()
		}
	},
}

// Execute runs the CLI application with the given version string.
func Execute(version string) error {
	Version = version
	rootCmd.Version = version
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging to stderr")

	// Disable default completion command
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
