// errors.go - argument error taxonomy.
// SPDX-License-Identifier: GPL-3.0-or-later

package sigparse

import (
	"fmt"
	"strings"

	"github.com/bassosimone/textwrap"
	"github.com/kballard/go-shellquote"
)

// argContext carries the position, offending value, and parameter
// attached to an [ArgumentError] while the main parse loop runs, the
// same way pkg/scanner attaches an Index to every token — except here
// the metadata rides on errors instead of tokens.
type argContext struct {
	pos    int
	val    string
	param  Parameter
	hasPos bool
}

// ArgumentError is implemented by every error that [*CLISignature.Parse]
// can return because of a malformed command line. Construction-time
// errors raised by [SignatureConverter] do not implement this interface:
// they have no position in an input argument vector to report.
type ArgumentError interface {
	error

	// Pos returns the index into the input argument vector at which the
	// error occurred, and whether that index is meaningful (fallback
	// recovery, recoverAlternate in parse.go, uses this to scan the input
	// past the offending token for an alternate command).
	Pos() (int, bool)
}

func (c argContext) Pos() (int, bool) {
	return c.pos, c.hasPos
}

// UnknownOptionError is returned when a token looks like an option but
// has no matching alias in the signature.
type UnknownOptionError struct {
	argContext
	Name string
}

func (e *UnknownOptionError) Error() string {
	return fmt.Sprintf("unknown option %q", e.Name)
}

// MissingValueError is returned when a named parameter expects a value
// but the input ends before one is supplied.
type MissingValueError struct {
	argContext
}

func (e *MissingValueError) Error() string {
	if e.param != nil {
		return fmt.Sprintf("%s: expected a value", e.param.DisplayName())
	}
	return "expected a value"
}

// BadArgumentFormatError is returned when a [ValueConverter] rejects a
// value; it wraps the original conversion error.
type BadArgumentFormatError struct {
	argContext
	Cause error
}

func (e *BadArgumentFormatError) Error() string {
	name := "argument"
	if e.param != nil {
		name = e.param.DisplayName()
	}
	return fmt.Sprintf("%s: bad value %q: %s", name, e.val, e.Cause)
}

func (e *BadArgumentFormatError) Unwrap() error { return e.Cause }

// DuplicateNamedArgumentError is returned when the same named parameter
// is supplied more than once.
type DuplicateNamedArgumentError struct {
	argContext
}

func (e *DuplicateNamedArgumentError) Error() string {
	name := "option"
	if e.param != nil {
		name = e.param.DisplayName()
	}
	return fmt.Sprintf("%s: given more than once", name)
}

// TooManyArgumentsError is returned when the positional cursor is
// exhausted; it carries the overflow tail, which Error re-quotes for
// display using a shell-quoting library.
type TooManyArgumentsError struct {
	argContext
	Overflow []string
}

func (e *TooManyArgumentsError) Error() string {
	return fmt.Sprintf("too many arguments: %s", shellquote.Join(e.Overflow...))
}

// TooManyValuesError is returned when a multi-valued parameter receives
// more values than its configured maximum.
type TooManyValuesError struct {
	argContext
}

func (e *TooManyValuesError) Error() string {
	name := "argument"
	if e.param != nil {
		name = e.param.DisplayName()
	}
	return fmt.Sprintf("%s: too many values", name)
}

// NotEnoughValuesError is returned when a multi-valued parameter received
// some values, but fewer than its configured minimum.
type NotEnoughValuesError struct {
	argContext
}

func (e *NotEnoughValuesError) Error() string {
	name := "argument"
	if e.param != nil {
		name = e.param.DisplayName()
	}
	return fmt.Sprintf("%s: not enough values", name)
}

// MissingRequiredArgumentsError is returned when one or more required
// parameters are never satisfied. The list of missing parameter names is
// word-wrapped at 72 columns with the textwrap package.
type MissingRequiredArgumentsError struct {
	Params []Parameter
}

func (e *MissingRequiredArgumentsError) Error() string {
	names := make([]string, 0, len(e.Params))
	for _, p := range e.Params {
		names = append(names, p.DisplayName())
	}
	body := textwrap.Do("missing required arguments: "+strings.Join(names, ", "), 72, "")
	return body
}

// ArgsBeforeAlternateCommandError is returned when an [AlternateCommand]
// is given anywhere but as the first token.
type ArgsBeforeAlternateCommandError struct {
	argContext
}

func (e *ArgsBeforeAlternateCommandError) Error() string {
	name := "command"
	if e.param != nil {
		name = e.param.DisplayName()
	}
	return fmt.Sprintf("%s: must be the first argument", name)
}

// --- construction-time errors (raised by SignatureConverter / CLISignature) ---

// DuplicateAliasError is returned when two parameters in a signature
// claim the same alias.
type DuplicateAliasError struct {
	Alias    string
	Existing Parameter
	New      Parameter
}

func (e *DuplicateAliasError) Error() string {
	return fmt.Sprintf("parameters %s and %s use a duplicate alias %q",
		e.Existing.DisplayName(), e.New.DisplayName(), e.Alias)
}

// WhitespaceInAliasError is returned when an alias string contains
// whitespace.
type WhitespaceInAliasError struct {
	Alias string
}

func (e *WhitespaceInAliasError) Error() string {
	return fmt.Sprintf("alias %q cannot contain whitespace", e.Alias)
}

// DuplicateConverterError is returned when a field's annotation supplies
// two value converters.
type DuplicateConverterError struct {
	Field string
}

func (e *DuplicateConverterError) Error() string {
	return fmt.Sprintf("field %s: coercion function specified twice", e.Field)
}

// MisplacedParameterConverterError is returned when a parameter
// converter is found anywhere but the very first annotation item.
type MisplacedParameterConverterError struct {
	Field string
}

func (e *MisplacedParameterConverterError) Error() string {
	return fmt.Sprintf("field %s: a parameter converter must be the first annotation", e.Field)
}

// UnconvertibleParameterError is returned when no factory can convert a
// given callee-parameter descriptor into a [Parameter].
type UnconvertibleParameterError struct {
	Field string
}

func (e *UnconvertibleParameterError) Error() string {
	return fmt.Sprintf("field %s: cannot convert this parameter", e.Field)
}

// withContext stamps pos/val/param onto err if err is one of the
// argContext-embedding error types declared above, as the error
// propagates out of the main parse loop (see parse.go).
func withContext(err error, pos int, val string, param Parameter) error {
	switch e := err.(type) {
	case *UnknownOptionError:
		e.pos, e.val, e.param, e.hasPos = pos, val, param, true
	case *MissingValueError:
		e.pos, e.val, e.param, e.hasPos = pos, val, param, true
	case *BadArgumentFormatError:
		e.pos, e.val, e.param, e.hasPos = pos, val, param, true
	case *DuplicateNamedArgumentError:
		e.pos, e.val, e.param, e.hasPos = pos, val, param, true
	case *TooManyArgumentsError:
		e.pos, e.val, e.param, e.hasPos = pos, val, param, true
	case *TooManyValuesError:
		e.pos, e.val, e.param, e.hasPos = pos, val, param, true
	case *NotEnoughValuesError:
		e.pos, e.val, e.param, e.hasPos = pos, val, param, true
	case *ArgsBeforeAlternateCommandError:
		e.pos, e.val, e.param, e.hasPos = pos, val, param, true
	}
	return err
}
