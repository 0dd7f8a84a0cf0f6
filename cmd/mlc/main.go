// Command mlc is the toolchain's command-line entry point: run, check, and
// build subcommands over cobra's command tree. Grounded on
// CWBudde-go-dws/cmd/dwscript/cmd's root/version/run commands.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	version = "0.1.0-dev"

	errColor  = color.New(color.FgRed, color.Bold)
	warnColor = color.New(color.FgYellow)
	okColor   = color.New(color.FgGreen)
	typeColor = color.New(color.FgCyan)
)

var rootCmd = &cobra.Command{
	Use:   "mlc",
	Short: "mlc is a toolchain for a small Hindley-Milner typed language",
	Long: `mlc type-checks, interprets, and lowers programs written in a tiny
Hindley-Milner typed language of integers, booleans, conditionals, and
multi-parameter lambdas.`,
	Version: version,
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(buildCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		errColor.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func readSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}
