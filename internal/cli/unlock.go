package cli

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Noshadi-sec/Excel-Worksheet-Unlocker/internal/util"
	"github.com/Noshadi-sec/Excel-Worksheet-Unlocker/internal/workbook"
)

var unlockCmd = &cobra.Command{
	Use:   "unlock",
	Short: "Remove worksheet protection from an .xlsx file",
	Long: `Remove worksheet protection from an .xlsx file, saving the
unprotected copy alongside the original.

Every archive member other than the rewritten worksheets is copied byte
for byte, so formatting, formulas, and anything else in the workbook are
untouched. The output is written even when no protection is found, as a
full, valid copy of the input.

Examples:
  # Unlock a workbook (writes report_unprotected.xlsx)
  unlocker unlock -i report.xlsx

  # Choose the output path explicitly
  unlocker unlock -i report.xlsx -o clean.xlsx

  # Overwrite an existing output file without prompting
  unlocker unlock -i report.xlsx -o clean.xlsx -y

  # Script-friendly: no status output, exit code only
  unlocker unlock -i report.xlsx -q -y`,
	RunE: runUnlock,
}

// Unlock flags
var (
	unlockInput  string
	unlockOutput string
	unlockQuiet  bool
	unlockYes    bool
)

func init() {
	rootCmd.AddCommand(unlockCmd)

	// Silence Cobra's default error/usage printing - we handle it ourselves
	unlockCmd.SilenceErrors = true
	unlockCmd.SilenceUsage = true

	unlockCmd.Flags().StringVarP(&unlockInput, "input", "i", "", "Input .xlsx file")
	unlockCmd.Flags().StringVarP(&unlockOutput, "output", "o", "", "Output file path (default: <input>_unprotected.xlsx)")
	unlockCmd.Flags().BoolVarP(&unlockQuiet, "quiet", "q", false, "Suppress status output")
	unlockCmd.Flags().BoolVarP(&unlockYes, "yes", "y", false, "Overwrite output file without prompting")

	_ = unlockCmd.MarkFlagRequired("input")
}

func runUnlock(cmd *cobra.Command, args []string) error {
	if unlockInput == "" {
		return fmt.Errorf("an input file is required (-i)")
	}

	info, err := os.Stat(unlockInput)
	if err != nil {
		return fmt.Errorf("input file not found: %s", unlockInput)
	}
	if info.IsDir() {
		return fmt.Errorf("input is a directory: %s", unlockInput)
	}

	outputFile := unlockOutput
	if outputFile == "" {
		outputFile = DefaultOutputName(unlockInput)
	}
	if outputFile == unlockInput {
		return fmt.Errorf("output path must differ from input path")
	}

	// Check if output exists
	if _, err := os.Stat(outputFile); err == nil && !unlockYes {
		fmt.Fprintf(os.Stderr, "Output file %s already exists. Overwrite? [y/N]: ", outputFile)
		reader := bufio.NewReader(os.Stdin)
		response, _ := reader.ReadString('\n')
		response = strings.TrimSpace(strings.ToLower(response))
		if response != "y" && response != "yes" {
			return fmt.Errorf("operation cancelled")
		}
	}

	reporter := NewReporter(unlockQuiet)

	result, err := workbook.RemoveProtection(unlockInput, outputFile, reporter.Status)
	if err != nil {
		reporter.PrintError("%v", err)
		return err
	}

	if result.ProtectionRemoved {
		var size int64
		if stat, err := os.Stat(outputFile); err == nil {
			size = stat.Size()
		}
		reporter.PrintSuccess("Removed protection from %d worksheet(s): %s (%s)",
			len(result.ModifiedSheets), outputFile, util.Sizeify(size))
	} else {
		reporter.PrintWarn("No worksheet protection found; wrote an unmodified copy to %s", outputFile)
	}
	return nil
}

// DefaultOutputName derives the output path from the input path:
// report.xlsx becomes report_unprotected.xlsx.
func DefaultOutputName(input string) string {
	ext := filepath.Ext(input)
	base := strings.TrimSuffix(input, ext)
	if ext == "" {
		ext = ".xlsx"
	}
	return base + "_unprotected" + ext
}
