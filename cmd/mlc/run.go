package main

import (
	"fmt"
	"os"

	"github.com/nilsra/mlc/driver"
	"github.com/nilsra/mlc/interp"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Type-check and interpret a program",
	Args:  cobra.ExactArgs(1),
	RunE:  runRun,
}

func runRun(_ *cobra.Command, args []string) error {
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

	if err := interp.Run(d, os.Stdout); err != nil {
		return fmt.Errorf("execution failed: %w", err)
	}
	return nil
}
