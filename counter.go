// counter.go - CounterFlag, a repeatable flag that accumulates a count.
// SPDX-License-Identifier: GPL-3.0-or-later

package sigparse

import (
	"strconv"
	"strings"
)

// CounterFlag is a named parameter with no value that increments an
// integer each time it's seen, so `-vvv` (or `-v -v -v`) yields 3. It's
// built on a parameter contributing companion parameters through
// [Parameter.Extras] that get folded into the enclosing signature at
// construction time — see flattenExtras in signature.go. CounterFlag
// uses that mechanism to optionally register a "reset" companion (e.g.
// `-q`/`--quiet`) that zeroes the count without the caller having to
// declare a second top-level parameter.
type CounterFlag struct {
	namedBase
	reset *resetCounter
}

// NewCounterFlag builds a [CounterFlag]. quietAliases, if non-empty,
// additionally registers a companion parameter (returned from Extras)
// that resets the count to zero when given.
func NewCounterFlag(aliases []string, argumentName string, quietAliases ...string) *CounterFlag {
	c := &CounterFlag{namedBase: newNamedBase(aliases, argumentName)}
	if len(quietAliases) > 0 {
		c.reset = &resetCounter{
			namedBase: newNamedBase(quietAliases, argumentName),
		}
	}
	return c
}

var _ Parameter = (*CounterFlag)(nil)

func (c *CounterFlag) IsRequired() bool { return false }

func (c *CounterFlag) Extras() []Parameter {
	if c.reset == nil {
		return nil
	}
	return []Parameter{c.reset}
}

func (c *CounterFlag) ReadArgument(ba *BoundArguments, st *parseState, i int) error {
	arg := ba.InArgs[i]
	if len(arg) >= 2 && arg[1] == '-' {
		return c.readLong(ba, arg)
	}
	c.bump(ba, 1)
	return redispatchShortArg(ba, st, i, arg[2:])
}

func (c *CounterFlag) readLong(ba *BoundArguments, arg string) error {
	_, _, val := strings.Cut(arg, "=")
	if val == "" {
		c.bump(ba, 1)
		return nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return &BadArgumentFormatError{Cause: err}
	}
	ba.Kwargs[c.argumentName] = n
	return nil
}

func (c *CounterFlag) bump(ba *BoundArguments, delta int) {
	n, _ := ba.Kwargs[c.argumentName].(int)
	ba.Kwargs[c.argumentName] = n + delta
}

func (c *CounterFlag) ApplyGenericFlags(ba *BoundArguments, st *parseState) {
	applyGenericFlags(c, ba, st)
}

func (c *CounterFlag) Unsatisfied(ba *BoundArguments, st *parseState) (bool, error) {
	return false, nil
}

// resetCounter is CounterFlag's optional companion parameter: giving it
// zeroes the count rather than incrementing it.
type resetCounter struct {
	namedBase
}

var _ Parameter = (*resetCounter)(nil)

func (r *resetCounter) IsRequired() bool { return false }

func (r *resetCounter) ReadArgument(ba *BoundArguments, st *parseState, i int) error {
	ba.Kwargs[r.argumentName] = 0
	arg := ba.InArgs[i]
	if len(arg) >= 2 && arg[1] == '-' {
		return nil
	}
	return redispatchShortArg(ba, st, i, arg[2:])
}

func (r *resetCounter) ApplyGenericFlags(ba *BoundArguments, st *parseState) {
	applyGenericFlags(r, ba, st)
}

func (r *resetCounter) Unsatisfied(ba *BoundArguments, st *parseState) (bool, error) {
	return false, nil
}
