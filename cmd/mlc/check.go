package main

import (
	"fmt"
	"os"

	"github.com/nilsra/mlc/driver"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Type-check a program and print each declaration's inferred type",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func runCheck(_ *cobra.Command, args []string) error {
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
		return fmt.Errorf("type-checking failed: %w", err)
	}

	symtab := d.Symtab()
	for _, entry := range d.Code() {
		fmt.Printf("%s : ", entry.Name)
		typeColor.Println(symtab[entry.Name].String())
	}
	okColor.Fprintln(os.Stderr, "check passed")
	return nil
}
