// positional.go - Positional and ExtraPositional parameters.
// SPDX-License-Identifier: GPL-3.0-or-later

package sigparse

// unset is the sentinel distinguishing "no default value" from "the
// default value is nil", so that a parameter's required-ness is
// derivable from whether a default was given at all, not from the zero
// value of its type.
type unset struct{}

// Unset is the sentinel default value meaning "this parameter is
// required". Pass it as the default to [NewPositional] or [NewOption]
// instead of a real value.
var Unset any = unset{}

func isUnset(v any) bool {
	_, ok := v.(unset)
	return ok
}

// valueBase factors out the fields and coercion behavior shared by any
// parameter that takes a value from the arguments, with a possible
// default and/or conversion.
type valueBase struct {
	conv    ValueConverter
	deflt   any
	argName string
}

func (v *valueBase) isRequired() bool { return isUnset(v.deflt) }

func (v *valueBase) coerce(text string) (any, error) {
	val, err := v.conv.Convert(text)
	if err != nil {
		return nil, &BadArgumentFormatError{Cause: err}
	}
	return val, nil
}

// Positional is a single positional slot: its converted value is
// appended to [BoundArguments.Args] in input order.
type Positional struct {
	common
	valueBase
}

// NewPositional builds a [Positional] parameter. Pass [Unset] as deflt to
// make the parameter required.
func NewPositional(displayName string, conv ValueConverter, deflt any) *Positional {
	if conv == nil {
		conv = StringConverter
	}
	return &Positional{
		common:    common{displayName: displayName},
		valueBase: valueBase{conv: conv, deflt: deflt, argName: displayName},
	}
}

var _ Parameter = (*Positional)(nil)

func (p *Positional) IsRequired() bool { return p.isRequired() }

func (p *Positional) ReadArgument(ba *BoundArguments, st *parseState, i int) error {
	val, err := p.coerce(ba.InArgs[i])
	if err != nil {
		return err
	}
	ba.Args = append(ba.Args, val)
	return nil
}

func (p *Positional) ApplyGenericFlags(ba *BoundArguments, st *parseState) {
	applyGenericFlags(p, ba, st)
}

func (p *Positional) Unsatisfied(ba *BoundArguments, st *parseState) (bool, error) {
	return defaultUnsatisfied(ba, st)
}

// multiBase factors out the bookkeeping shared by every multi-valued
// parameter: a minimum/maximum value count and the collection those
// values accumulate into.
type multiBase struct {
	valueBase
	min int
	max int // 0 means unbounded
}

func (m *multiBase) isRequired() bool { return m.min > 0 }

// checkBounds checks col, the collection the embedding variant appends
// to, against min and max: reaching min discards p from st.unsatisfied,
// and exceeding a non-zero max returns [*TooManyValuesError].
func (m *multiBase) checkBounds(col []any, p Parameter, st *parseState) error {
	if m.min <= len(col) {
		st.unsatisfied.discard(p)
	}
	if m.max != 0 && len(col) > m.max {
		return &TooManyValuesError{}
	}
	return nil
}

// ExtraPositional collects the remaining positional tokens into
// [BoundArguments.Args]. Activating it for the first time installs it as
// the sticky parameter (see parseState.sticky), so every later
// positional token routes to it instead of exhausting the positional
// cursor.
type ExtraPositional struct {
	common
	multiBase
}

// NewExtraPositional builds the variadic-positional parameter. If
// required is true, min defaults to 1 unless overridden explicitly by
// calling SetBounds.
func NewExtraPositional(displayName string, conv ValueConverter, required bool) *ExtraPositional {
	if conv == nil {
		conv = StringConverter
	}
	min := 0
	if required {
		min = 1
	}
	return &ExtraPositional{
		common: common{displayName: displayName},
		multiBase: multiBase{
			valueBase: valueBase{conv: conv, deflt: Unset, argName: displayName},
			min:       min,
		},
	}
}

var _ Parameter = (*ExtraPositional)(nil)

// SetBounds overrides the default min/max value counts (0 means
// unbounded for max).
func (p *ExtraPositional) SetBounds(min, max int) *ExtraPositional {
	p.min, p.max = min, max
	return p
}

func (p *ExtraPositional) IsRequired() bool { return p.isRequired() }

func (p *ExtraPositional) ReadArgument(ba *BoundArguments, st *parseState, i int) error {
	val, err := p.coerce(ba.InArgs[i])
	if err != nil {
		return err
	}
	ba.Args = append(ba.Args, val)
	return p.checkBounds(ba.Args, p, st)
}

// ApplyGenericFlags doesn't automatically mark the parameter satisfied
// (checkBounds already did, if applicable); it installs itself as the
// sticky parameter so later positionals don't exhaust the cursor.
func (p *ExtraPositional) ApplyGenericFlags(ba *BoundArguments, st *parseState) {
	if p.LastOption() {
		st.posargOnly = true
	}
	st.sticky = p
}

// Unsatisfied lets [*MissingRequiredArgumentsError] be raised normally if
// no positional has been seen at all, or raises
// [*NotEnoughValuesError] if some were seen but fewer than min.
func (p *ExtraPositional) Unsatisfied(ba *BoundArguments, st *parseState) (bool, error) {
	if len(ba.Args) == 0 || st.unsatisfied.len() > 1 {
		return true, nil
	}
	return false, &NotEnoughValuesError{}
}
