// parse.go - the main parsing loop.
// SPDX-License-Identifier: GPL-3.0-or-later

package sigparse

import (
	"strings"

	"github.com/bassosimone/sigparse/pkg/assert"
	"github.com/bassosimone/sigparse/pkg/scanner"
)

// cliScanner classifies tokens the way GNU-style command lines do: "-"
// and "--" both introduce options, and a bare "--" stops option parsing.
// [*CLISignature.Parse] uses it only to tell option-like tokens apart
// from positional ones and from the "--" sentinel; alias lookup and
// value extraction still operate directly on the raw argument text.
var cliScanner = &scanner.Scanner{
	Prefixes:   []string{"--", "-"},
	Separators: []string{"--"},
}

// Parse binds args against sig, returning the converted positional and
// keyword arguments the target callee should be invoked with. name is
// the program or subcommand name, used only for display purposes (it
// never participates in parsing).
//
// The single-pass loop below advances a positional cursor through
// sig.Positional unless a sticky collector has taken over (see
// [ExtraPositional.ApplyGenericFlags]); named tokens are dispatched by
// alias lookup; "--" switches to positional-only mode for the rest of
// the command line. The whole loop is wrapped by a fallback-recovery
// pass: an error that survives the loop gets one chance to be rescued
// by a later `--help`-like alternate command (see recoverAlternate
// below).
func (sig *CLISignature) Parse(name string, args []string) (*BoundArguments, error) {
	ba := newBoundArguments(sig, args, name)
	st := newParseState(sig)

	tokens, err := cliScanner.Scan(append([]string{name}, args...))
	assert.True(err == nil, "cliScanner.Scan failed despite a non-empty argv")
	tokens = tokens[1:] // drop the synthetic ProgramNameToken

	if err := runLoop(sig, ba, st, tokens); err != nil {
		if rescued, ok := recoverAlternate(sig, ba, st, err); ok {
			return rescued, nil
		}
		return nil, err
	}

	if len(ba.PostName) > 0 {
		// An alternate/fallback command fired: ba.Args/ba.Kwargs describe
		// that command's own tokens, not sig's, so sig's required-parameter
		// and PostParse bookkeeping doesn't apply.
		return ba, nil
	}
	return finish(sig, ba, st)
}

// runLoop performs the single pass over tokens. It returns normally once
// every token has been consumed; it returns early, with an error, the
// moment any token fails to be read and that failure isn't itself a
// successful command-switch (see the inline [AsFallback] check below).
func runLoop(sig *CLISignature, ba *BoundArguments, st *parseState, tokens []scanner.Token) error {
	for j := 0; j < len(tokens); j++ {
		switch t := tokens[j].(type) {
		case scanner.SeparatorToken:
			// Positional-only mode wins over sentinel recognition: a
			// second "--" after the first (or after a LastOption
			// parameter) is an ordinary positional token.
			if st.posargOnly {
				idx := t.Index - 1
				if err := readPositional(sig, ba, st, idx, ba.InArgs[idx]); err != nil {
					return err
				}
				break
			}
			st.posargOnly = true

		case scanner.OptionToken:
			idx := t.Index - 1
			raw := ba.InArgs[idx]
			if st.posargOnly || (t.Prefix == "-" && t.Name == "") {
				if err := readPositional(sig, ba, st, idx, raw); err != nil {
					return err
				}
				break
			}
			if err := readNamed(sig, ba, st, idx, raw); err != nil {
				if p, pos, _, ok := AsFallback(err); ok {
					applyFallback(ba, st, p, pos, raw)
					break
				}
				return err
			}
			// A named parameter may have consumed the next raw argument as
			// its value (see getValue in named.go); skip the token(s) that
			// cover it so the main loop doesn't also process them.
			j += st.skip
			st.skip = 0

		case scanner.ArgumentToken:
			idx := t.Index - 1
			if err := readPositional(sig, ba, st, idx, ba.InArgs[idx]); err != nil {
				return err
			}
		}
	}
	return nil
}

// aliasKey derives the lookup key for ba.Sig.Aliases from a raw input
// token: the part before "=" for long options, the first two bytes for
// short options (the option prefix plus one character).
func aliasKey(raw string) string {
	if strings.HasPrefix(raw, "--") {
		name, _, _ := strings.Cut(raw, "=")
		return name
	}
	if len(raw) < 2 {
		return raw
	}
	return raw[:2]
}

func readNamed(sig *CLISignature, ba *BoundArguments, st *parseState, idx int, raw string) error {
	key := aliasKey(raw)
	param, ok := sig.Aliases[key]
	if !ok {
		return withContext(&UnknownOptionError{Name: key}, idx, raw, nil)
	}
	if err := param.ReadArgument(ba, st, idx); err != nil {
		return withContext(err, idx, raw, param)
	}
	param.ApplyGenericFlags(ba, st)
	return nil
}

func readPositional(sig *CLISignature, ba *BoundArguments, st *parseState, idx int, raw string) error {
	var p Parameter
	usedCursor := false

	switch {
	case st.sticky != nil:
		p = st.sticky
	case st.posparam < len(sig.Positional):
		p = sig.Positional[st.posparam]
		usedCursor = true
	default:
		return withContext(&TooManyArgumentsError{Overflow: append([]string(nil), ba.InArgs[idx:]...)}, idx, raw, nil)
	}

	if err := p.ReadArgument(ba, st, idx); err != nil {
		return withContext(err, idx, raw, p)
	}
	p.ApplyGenericFlags(ba, st)
	if usedCursor {
		st.posparam++
	}
	return nil
}

// applyFallback commits the effect of a successful command switch,
// whether it fired inline (the current token directly aliased an
// [AlternateCommand]/[FallbackCommand]) or was found during
// [recoverAlternate]'s scan-ahead after an earlier, unrelated error. pos
// is the raw input index the switch occurred at (not a positional-cursor
// count), and it alone decides whether the remaining tokens are
// collected ([appendArguments], when pos == 0) or discarded
// ([ignoreAllArguments], otherwise).
func applyFallback(ba *BoundArguments, st *parseState, p Parameter, pos int, raw string) {
	ba.PostName = append(ba.PostName, raw)
	ba.Args = []any{}
	ba.Kwargs = map[string]any{}
	st.unsatisfied.clear()
	st.posparam = 0
	st.posargOnly = true

	switch v := p.(type) {
	case *AlternateCommand:
		ba.Func = v.Command
	case *FallbackCommand:
		ba.Func = v.Command
	}

	if pos != 0 {
		st.sticky = &ignoreAllArguments{common: common{displayName: p.DisplayName()}}
	} else {
		st.sticky = &appendArguments{common: common{displayName: p.DisplayName()}}
	}
}

// recoverAlternate implements the fallback-recovery protocol: err must
// be the error runLoop returned; if it carries a position (see
// [ArgumentError]), the tail of ba.InArgs starting just past that
// position is scanned for the first token aliasing a parameter in
// sig.Alternate. That parameter is read at its own position exactly as
// it would have been during normal dispatch: success (the
// [seekFallbackCommandError] signal) commits the switch and rescues the
// parse; an [AlternateCommand] found out of position raises
// [*ArgsBeforeAlternateCommandError] again, which just means the scan
// keeps looking, it does not abort the recovery attempt.
func recoverAlternate(sig *CLISignature, ba *BoundArguments, st *parseState, origErr error) (*BoundArguments, bool) {
	ae, ok := origErr.(ArgumentError)
	if !ok {
		return nil, false
	}
	pos, hasPos := ae.Pos()
	if !hasPos {
		return nil, false
	}

	for idx := pos + 1; idx < len(ba.InArgs); idx++ {
		raw := ba.InArgs[idx]
		param, ok := sig.Aliases[aliasKey(raw)]
		if !ok {
			continue
		}
		switch param.(type) {
		case *AlternateCommand, *FallbackCommand:
		default:
			continue
		}

		err := param.ReadArgument(ba, st, idx)
		if p, fpos, _, isSwitch := AsFallback(err); isSwitch {
			applyFallback(ba, st, p, fpos, raw)
			return ba, true
		}
		// Any other error (e.g. an AlternateCommand found away from
		// position 0) just means this candidate doesn't work out; keep
		// scanning for another one instead of giving up immediately.
	}
	return nil, false
}

// finish runs the post-loop bookkeeping: reporting parameters that are
// still unsatisfied, then running every parameter's PostParse hook in
// declaration order.
func finish(sig *CLISignature, ba *BoundArguments, st *parseState) (*BoundArguments, error) {
	var missing []Parameter
	for _, p := range sig.Required {
		if _, stillUnsatisfied := st.unsatisfied.members[p]; !stillUnsatisfied {
			continue
		}
		isMissing, err := p.Unsatisfied(ba, st)
		if err != nil {
			return nil, err
		}
		if isMissing {
			missing = append(missing, p)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingRequiredArgumentsError{Params: missing}
	}

	for _, p := range sig.All {
		p.PostParse(ba)
	}
	return ba, nil
}
