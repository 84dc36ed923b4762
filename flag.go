// flag.go - Flag parameter.
// SPDX-License-Identifier: GPL-3.0-or-later

package sigparse

import (
	"strings"
)

// falseTriggers are the `--flag=X` suffixes that select
// [Flag.FalseValue] instead of [Flag.Value].
var falseTriggers = map[string]struct{}{
	"0": {}, "n": {}, "no": {}, "f": {}, "false": {},
}

func isFalseTrigger(s string) bool {
	_, ok := falseTriggers[strings.ToLower(s)]
	return ok
}

// Flag is a named parameter that takes no value on the command line.
// `--name` and its short forms set [Flag.Value]; `--name=no` (and the
// other [falseTriggers]) set [Flag.FalseValue] instead.
type Flag struct {
	namedBase
	Value      any
	FalseValue any
}

// NewFlag builds a [Flag] parameter. value and falseValue are typically
// true/false, but any pair of values is accepted (e.g. enum-like flags).
func NewFlag(aliases []string, argumentName string, value, falseValue any) *Flag {
	return &Flag{
		namedBase:  newNamedBase(aliases, argumentName),
		Value:      value,
		FalseValue: falseValue,
	}
}

var _ Parameter = (*Flag)(nil)

// IsRequired is always false: a [Flag]'s absence simply means its
// [Flag.FalseValue] (or the caller's own zero value) applies.
func (f *Flag) IsRequired() bool { return false }

func (f *Flag) ReadArgument(ba *BoundArguments, st *parseState, i int) error {
	arg := ba.InArgs[i]
	if len(arg) >= 2 && arg[1] == '-' {
		ba.Kwargs[f.argumentName] = f.pick(arg)
		return nil
	}
	ba.Kwargs[f.argumentName] = f.Value
	return redispatchShortArg(ba, st, i, arg[2:])
}

// pick decides between Value and FalseValue for a long-form occurrence,
// e.g. "--verbose", "--verbose=no", "--verbose=true".
func (f *Flag) pick(arg string) any {
	if arg[1] != '-' {
		return f.Value
	}
	_, sep, val := strings.Cut(arg, "=")
	if !sep || (val != "" && !isFalseTrigger(val)) {
		return f.Value
	}
	return f.FalseValue
}

func (f *Flag) ApplyGenericFlags(ba *BoundArguments, st *parseState) {
	applyGenericFlags(f, ba, st)
}

func (f *Flag) Unsatisfied(ba *BoundArguments, st *parseState) (bool, error) {
	return false, nil
}
