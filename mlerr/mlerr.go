// Package mlerr defines the error taxonomy shared by every stage of the
// toolchain: lexer, parser, types, interpretation, and compiler (driver/lower).
package mlerr

import (
	"errors"
	"fmt"
)

// Module is one of the five tags spec.md's error surface is built from.
type Module string

const (
	Lexer         Module = "lexer"
	Parser        Module = "parser"
	Types         Module = "types"
	Interpretation Module = "interpretation"
	Compiler      Module = "compiler"
)

// NoOffset marks an error that carries no byte offset (types, interpretation,
// and compiler errors, per spec.md §6).
const NoOffset = -1

// Error is the single error type every stage returns. It always carries a
// module tag and a human-readable message; lexer and parser errors also carry
// the byte offset of the offending input.
type Error struct {
	Module  Module
	Message string
	Offset  int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Module, e.Message)
}

// New builds an Error with no offset.
func New(module Module, format string, args ...any) *Error {
	return &Error{Module: module, Message: fmt.Sprintf(format, args...), Offset: NoOffset}
}

// NewAt builds an Error with an offset into the source buffer.
func NewAt(module Module, offset int, format string, args ...any) *Error {
	return &Error{Module: module, Message: fmt.Sprintf(format, args...), Offset: offset}
}

// Is reports whether err is, or wraps, an *Error tagged with module.
func Is(err error, module Module) bool {
	var e *Error
	return errors.As(err, &e) && e.Module == module
}
