package main

import (
	"fmt"
	"os"

	"github.com/nilsra/mlc/driver"
	"github.com/nilsra/mlc/lower"
	"github.com/spf13/cobra"
)

var buildOutput string

var buildCmd = &cobra.Command{
	Use:   "build <file>",
	Short: "Lower a program to C source",
	Args:  cobra.ExactArgs(1),
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().StringVarP(&buildOutput, "output", "o", "", "write C source to this path instead of stdout")
}

func runBuild(_ *cobra.Command, args []string) error {
	source, err := readSource(args[0])
	if err != nil {
		return err
	}

	d := driver.NewDriver()
	warnings, err := d.CompileAll(source)
	for _, w := range warnings {
		warnColor.Fprintf(os.Stderr, "warning: %s\n", w)
	}
	if err != nil {
		return fmt.Errorf("compilation failed: %w", err)
	}

	text, err := lower.Program(d)
	if err != nil {
		return fmt.Errorf("lowering failed: %w", err)
	}

	if buildOutput == "" {
		fmt.Print(text)
		return nil
	}
	if err := os.WriteFile(buildOutput, []byte(text), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", buildOutput, err)
	}
	okColor.Fprintf(os.Stderr, "wrote %s\n", buildOutput)
	return nil
}
