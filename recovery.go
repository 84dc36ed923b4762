// recovery.go - fallback-command recovery protocol.
// SPDX-License-Identifier: GPL-3.0-or-later

package sigparse

import (
	"errors"
	"strconv"
)

// seekFallbackCommandError is returned by [AlternateCommand.ReadArgument]
// and [FallbackCommand.ReadArgument] to signal that the main parse loop
// (see parse.go) should abandon the in-progress parse and switch to the
// matched parameter's alternate callee: an ordinary error value
// inspected by the caller with [AsFallback], rather than a panic/recover
// pair.
type seekFallbackCommandError struct {
	param    Parameter
	pos      int
	fallback bool
}

func (e *seekFallbackCommandError) Error() string {
	return "encountered alternate command " + e.param.DisplayName() + " at position " + strconv.Itoa(e.pos)
}

// AsFallback reports whether err is (or wraps) a command-switch signal
// raised by an [AlternateCommand] or [FallbackCommand], returning the
// parameter that fired, the input position it occurred at, and whether
// the switch must be honored unconditionally (fallback) or only at input
// position 0.
func AsFallback(err error) (param Parameter, pos int, fallback, ok bool) {
	var sf *seekFallbackCommandError
	if errors.As(err, &sf) {
		return sf.param, sf.pos, sf.fallback, true
	}
	return nil, 0, false, false
}

// appendArguments is the sticky parameter installed once the main loop
// accepts a command switch that fired at input position 0 ([AlternateCommand],
// or a [FallbackCommand] used as the very first token): every remaining
// raw token is collected verbatim into [BoundArguments.Args], in order,
// for the alternate callee to interpret on its own terms.
// [BoundArguments.PostName] already holds the triggering token itself
// (set by applyFallback in parse.go) and is left alone here.
type appendArguments struct{ common }

var _ Parameter = (*appendArguments)(nil)

func (a *appendArguments) IsRequired() bool { return false }

func (a *appendArguments) ReadArgument(ba *BoundArguments, st *parseState, i int) error {
	ba.Args = append(ba.Args, ba.InArgs[i])
	return nil
}

func (a *appendArguments) ApplyGenericFlags(ba *BoundArguments, st *parseState) {}

func (a *appendArguments) Unsatisfied(ba *BoundArguments, st *parseState) (bool, error) {
	return false, nil
}

// ignoreAllArguments is the sticky parameter installed once the main
// loop accepts a [FallbackCommand] switch that fired anywhere but input
// position 0: every remaining raw token is silently dropped.
type ignoreAllArguments struct{ common }

var _ Parameter = (*ignoreAllArguments)(nil)

func (a *ignoreAllArguments) IsRequired() bool { return false }

func (a *ignoreAllArguments) ReadArgument(ba *BoundArguments, st *parseState, i int) error {
	return nil
}

func (a *ignoreAllArguments) ApplyGenericFlags(ba *BoundArguments, st *parseState) {}

func (a *ignoreAllArguments) Unsatisfied(ba *BoundArguments, st *parseState) (bool, error) {
	return false, nil
}
