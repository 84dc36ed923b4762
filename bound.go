// bound.go - bound arguments and transient parse state.
// SPDX-License-Identifier: GPL-3.0-or-later

package sigparse

// BoundArguments is the terminal output of a parse: a target function
// override, the tokens that triggered it, and the positional/keyword
// arguments to invoke it with. It carries only this terminal output —
// the transient bookkeeping a naive port would bolt onto (and later
// delete from) the bound-arguments object lives instead in the private
// [parseState] struct owned by [*CLISignature.Parse].
type BoundArguments struct {
	// Sig is the signature this value was bound against.
	Sig *CLISignature

	// Name is the script name passed to [*CLISignature.Parse].
	Name string

	// InArgs is the input argument vector, unmodified, minus the
	// program name. Parameter.ReadArgument implementations index into
	// this slice directly.
	InArgs []string

	// Func, if non-nil, overrides the target function the caller should
	// invoke; set by [AlternateCommand] and [FallbackCommand].
	Func any

	// PostName holds the token(s) that triggered an alternate or
	// fallback command, in the order encountered.
	PostName []string

	// Args holds the converted positional arguments, in input order.
	Args []any

	// Kwargs maps a named parameter's ArgumentName to its converted
	// value.
	Kwargs map[string]any

	// Meta is scratch space parameters may use to communicate with each
	// other over the course of one parse. None of sigparse's own
	// parameters use it ([CounterFlag] and its reset companion share
	// their count through Kwargs).
	Meta map[string]any
}

func newBoundArguments(sig *CLISignature, args []string, name string) *BoundArguments {
	return &BoundArguments{
		Sig:      sig,
		Name:     name,
		InArgs:   append([]string(nil), args...),
		PostName: []string{},
		Args:     []any{},
		Kwargs:   map[string]any{},
		Meta:     map[string]any{},
	}
}

// parameterSet is a small unordered set of parameters, used for
// [parseState.unsatisfied]. Parameter values are compared by identity
// (pointer equality).
type parameterSet struct {
	members map[Parameter]struct{}
}

func newParameterSet(params []Parameter) *parameterSet {
	s := &parameterSet{members: make(map[Parameter]struct{}, len(params))}
	for _, p := range params {
		s.members[p] = struct{}{}
	}
	return s
}

func (s *parameterSet) discard(p Parameter) { delete(s.members, p) }

func (s *parameterSet) clear() { s.members = map[Parameter]struct{}{} }

func (s *parameterSet) len() int { return len(s.members) }

func (s *parameterSet) slice() []Parameter {
	out := make([]Parameter, 0, len(s.members))
	for p := range s.members {
		out = append(out, p)
	}
	return out
}

// parseState is the transient bookkeeping the main loop in parse.go needs
// while processing one argument vector. It is discarded once parsing
// completes; only its effects (recorded on [BoundArguments]) survive.
type parseState struct {
	// posparam is the cursor over sig.Positional, not including extras.
	posparam int

	// sticky is the parameter that receives every subsequent positional
	// token, or nil if there is none yet.
	sticky Parameter

	// posargOnly is true once "--" or a LastOption parameter has been
	// seen: every remaining token is positional from then on.
	posargOnly bool

	// skip counts the tokens still to be skipped because a named
	// parameter already consumed them as its value.
	skip int

	// unsatisfied holds the required parameters not yet satisfied.
	unsatisfied *parameterSet
}

func newParseState(sig *CLISignature) *parseState {
	return &parseState{
		posparam:    0,
		unsatisfied: newParameterSet(sig.Required),
	}
}
