// altcommand.go - AlternateCommand and FallbackCommand parameters.
// SPDX-License-Identifier: GPL-3.0-or-later

package sigparse

// AlternateCommand is a named parameter, such as `--help`, whose
// occurrence abandons the parse in progress in favor of a different
// callee entirely. It is only valid as the very first input token:
// ReadArgument rejects any other position with
// [*ArgsBeforeAlternateCommandError], where the position checked is the
// raw index into the input, not a count of positionals consumed. On
// success it returns a [seekFallbackCommandError] that the main loop
// (see parse.go) unwinds to.
type AlternateCommand struct {
	namedBase
	// Command is the callee [BoundArguments.Func] is set to once this
	// parameter fires. sigparse never calls it; it's opaque payload for
	// whatever invokes the parse result.
	Command any
}

// NewAlternateCommand builds an [AlternateCommand].
func NewAlternateCommand(aliases []string, argumentName string, command any) *AlternateCommand {
	return &AlternateCommand{namedBase: newNamedBase(aliases, argumentName), Command: command}
}

var _ Parameter = (*AlternateCommand)(nil)

func (a *AlternateCommand) IsRequired() bool { return false }

func (a *AlternateCommand) ReadArgument(ba *BoundArguments, st *parseState, i int) error {
	if i != 0 {
		return &ArgsBeforeAlternateCommandError{}
	}
	return &seekFallbackCommandError{param: a, pos: i, fallback: false}
}

func (a *AlternateCommand) ApplyGenericFlags(ba *BoundArguments, st *parseState) {}

func (a *AlternateCommand) Unsatisfied(ba *BoundArguments, st *parseState) (bool, error) {
	return false, nil
}

// FallbackCommand behaves like [AlternateCommand], except the switch is
// always accepted regardless of where it occurs. When it fires anywhere
// but the first token, the remaining input is discarded instead of
// being collected for the alternate callee (see [ignoreAllArguments] in
// recovery.go): that's the entire distinction between [AlternateCommand]
// (position 0 only) and [FallbackCommand] (anywhere).
type FallbackCommand struct {
	namedBase
	Command any
}

// NewFallbackCommand builds a [FallbackCommand].
func NewFallbackCommand(aliases []string, argumentName string, command any) *FallbackCommand {
	return &FallbackCommand{namedBase: newNamedBase(aliases, argumentName), Command: command}
}

var _ Parameter = (*FallbackCommand)(nil)

func (f *FallbackCommand) IsRequired() bool { return false }

func (f *FallbackCommand) ReadArgument(ba *BoundArguments, st *parseState, i int) error {
	return &seekFallbackCommandError{param: f, pos: i, fallback: true}
}

func (f *FallbackCommand) ApplyGenericFlags(ba *BoundArguments, st *parseState) {}

func (f *FallbackCommand) Unsatisfied(ba *BoundArguments, st *parseState) (bool, error) {
	return false, nil
}
