// option.go - Option, IntOption, and MultiOption parameters.
// SPDX-License-Identifier: GPL-3.0-or-later

package sigparse

import "strings"

// Option is a named parameter that takes a value, via `--name=value`,
// `--name value`, `-xVALUE`, or `-x value`.
type Option struct {
	namedBase
	valueBase
}

// NewOption builds an [Option] parameter. Pass [Unset] as deflt to make
// the parameter required.
func NewOption(aliases []string, argumentName string, conv ValueConverter, deflt any) *Option {
	if conv == nil {
		conv = StringConverter
	}
	return &Option{
		namedBase: newNamedBase(aliases, argumentName),
		valueBase: valueBase{conv: conv, deflt: deflt, argName: argumentName},
	}
}

var _ Parameter = (*Option)(nil)

func (o *Option) IsRequired() bool { return o.isRequired() }

func (o *Option) ReadArgument(ba *BoundArguments, st *parseState, i int) error {
	if _, dup := ba.Kwargs[o.argumentName]; dup {
		return &DuplicateNamedArgumentError{}
	}
	text, err := getValue(ba, st, i)
	if err != nil {
		return err
	}
	val, err := o.coerce(text)
	if err != nil {
		return err
	}
	ba.Kwargs[o.argumentName] = val
	return nil
}

func (o *Option) ApplyGenericFlags(ba *BoundArguments, st *parseState) {
	applyGenericFlags(o, ba, st)
}

func (o *Option) Unsatisfied(ba *BoundArguments, st *parseState) (bool, error) {
	return defaultUnsatisfied(ba, st)
}

// splitIntRest splits s at the first non-digit rune, returning the digit
// prefix and the remainder. The remainder never starts with a digit. An
// empty digit prefix is treated as an error elsewhere (see
// IntOption.ReadArgument): this function just performs the split, the
// caller decides what an empty digit prefix means.
func splitIntRest(s string) (digits, rest string) {
	for i, c := range s {
		if c < '0' || c > '9' {
			return s[:i], s[i:]
		}
	}
	return s, ""
}

// IntOption is like [Option], but its short form additionally accepts a
// digit tail that feeds the option's value, followed by further chained
// short flags: `-n5vvv` behaves like `-n 5 -vvv`.
type IntOption struct {
	namedBase
	valueBase
}

// NewIntOption builds an [IntOption] parameter. The converter is always
// [IntConverter]; callers don't get to override it, since the whole point
// of the variant is the digit-tail short form.
func NewIntOption(aliases []string, argumentName string, deflt any) *IntOption {
	return &IntOption{
		namedBase: newNamedBase(aliases, argumentName),
		valueBase: valueBase{conv: IntConverter, deflt: deflt, argName: argumentName},
	}
}

var _ Parameter = (*IntOption)(nil)

func (o *IntOption) IsRequired() bool { return o.isRequired() }

func (o *IntOption) ReadArgument(ba *BoundArguments, st *parseState, i int) error {
	if _, dup := ba.Kwargs[o.argumentName]; dup {
		return &DuplicateNamedArgumentError{}
	}

	arg := ba.InArgs[i]
	if strings.HasPrefix(arg, "--") {
		return o.readLong(ba, st, i)
	}

	tail := strings.TrimLeft(arg, "-")
	if len(tail) <= 1 {
		return o.readLong(ba, st, i)
	}
	tail = tail[1:] // drop the option letter itself, e.g. "n5vvv" -> "5vvv"

	digits, rest := splitIntRest(tail)
	if digits == "" {
		// A tail that starts with a non-digit (so splitIntRest finds
		// no leading digits at all) is reported as an unknown option
		// named after its first character, without redispatching it.
		return &UnknownOptionError{Name: "-" + tail[:1]}
	}

	val, err := o.coerce(digits)
	if err != nil {
		return err
	}
	ba.Kwargs[o.argumentName] = val

	return redispatchShortArg(ba, st, i, rest)
}

func (o *IntOption) readLong(ba *BoundArguments, st *parseState, i int) error {
	text, err := getValue(ba, st, i)
	if err != nil {
		return err
	}
	val, err := o.coerce(text)
	if err != nil {
		return err
	}
	ba.Kwargs[o.argumentName] = val
	return nil
}

func (o *IntOption) ApplyGenericFlags(ba *BoundArguments, st *parseState) {
	applyGenericFlags(o, ba, st)
}

func (o *IntOption) Unsatisfied(ba *BoundArguments, st *parseState) (bool, error) {
	return defaultUnsatisfied(ba, st)
}

// MultiOption is a named parameter that takes a value like [Option], but
// may be given more than once: each occurrence's converted value is
// appended to a slice under [BoundArguments.Kwargs], instead of
// rejecting the repeat with [*DuplicateNamedArgumentError]. A `--par`
// option built with [NewMultiOption] parsed against
// `--par=one --par two` yields `Kwargs["par"] == []any{"one", "two"}`.
type MultiOption struct {
	namedBase
	multiBase
}

// NewMultiOption builds a [MultiOption] parameter. min/max bound the
// number of values accepted, matching [ExtraPositional.SetBounds]; max
// of 0 means unbounded. The parameter is required iff min > 0.
func NewMultiOption(aliases []string, argumentName string, conv ValueConverter, min, max int) *MultiOption {
	if conv == nil {
		conv = StringConverter
	}
	return &MultiOption{
		namedBase: newNamedBase(aliases, argumentName),
		multiBase: multiBase{
			valueBase: valueBase{conv: conv, deflt: Unset, argName: argumentName},
			min:       min,
			max:       max,
		},
	}
}

var _ Parameter = (*MultiOption)(nil)

func (m *MultiOption) IsRequired() bool { return m.isRequired() }

func (m *MultiOption) ReadArgument(ba *BoundArguments, st *parseState, i int) error {
	text, err := getValue(ba, st, i)
	if err != nil {
		return err
	}
	val, err := m.coerce(text)
	if err != nil {
		return err
	}
	col, _ := ba.Kwargs[m.argumentName].([]any)
	col = append(col, val)
	ba.Kwargs[m.argumentName] = col
	return m.checkBounds(col, m, st)
}

// ApplyGenericFlags only needs to handle LastOption: checkBounds already
// discarded m from st.unsatisfied once min was reached, the way
// [ExtraPositional.ApplyGenericFlags] leaves that bookkeeping to
// checkBounds too.
func (m *MultiOption) ApplyGenericFlags(ba *BoundArguments, st *parseState) {
	if m.LastOption() {
		st.posargOnly = true
	}
}

// Unsatisfied mirrors [ExtraPositional.Unsatisfied]: no values seen at
// all falls through to the ordinary [*MissingRequiredArgumentsError]
// path, while some-but-too-few values raises [*NotEnoughValuesError]
// instead.
func (m *MultiOption) Unsatisfied(ba *BoundArguments, st *parseState) (bool, error) {
	col, _ := ba.Kwargs[m.argumentName].([]any)
	if len(col) == 0 || st.unsatisfied.len() > 1 {
		return true, nil
	}
	return false, &NotEnoughValuesError{}
}
