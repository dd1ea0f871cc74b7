package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Noshadi-sec/Excel-Worksheet-Unlocker/internal/workbook"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.xlsx>",
	Short: "Report a workbook's sheets and protection state",
	Long: `Report a workbook's sheet names and which worksheet members carry
a protection marker, without modifying the file.

Examples:
  unlocker inspect report.xlsx`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.SilenceErrors = true
	inspectCmd.SilenceUsage = true
}

func runInspect(cmd *cobra.Command, args []string) error {
	path := args[0]

	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("file not found: %s", path)
	}

	info, err := workbook.Inspect(path)
	if err != nil {
		NewReporter(false).PrintError("%v", err)
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Workbook: %s\n", filepath.Base(path))
	fmt.Fprintf(out, "Sheets (%d): %s\n", len(info.SheetNames), strings.Join(info.SheetNames, ", "))
	if len(info.ProtectedParts) == 0 {
		fmt.Fprintln(out, "No worksheet protection found.")
		return nil
	}
	fmt.Fprintf(out, "Protected worksheet parts (%d):\n", len(info.ProtectedParts))
	for _, name := range info.ProtectedParts {
		fmt.Fprintf(out, "  %s\n", name)
	}
	return nil
}
