// signature.go - CLISignature, the flattened, alias-indexed description
// of a callee's parameters.
// SPDX-License-Identifier: GPL-3.0-or-later

package sigparse

import "strings"

// CLISignature is the parsed, validated form of a parameter list: every
// parameter's Extras have been flattened in, and every alias has been
// checked for uniqueness. [Parse] consumes a *CLISignature; it never
// consumes a raw []Parameter.
type CLISignature struct {
	// Positional holds the positional parameters in declaration order
	// (the ones with no Aliases), including at most one [ExtraPositional].
	Positional []Parameter

	// Named holds every named (alias-triggered) parameter that isn't an
	// alternate/fallback command, in declaration order.
	Named []Parameter

	// Alternate holds the [AlternateCommand] and [FallbackCommand]
	// parameters, in declaration order.
	Alternate []Parameter

	// Aliases maps every alias string (e.g. "-v", "--verbose") to the
	// parameter that owns it, across Named and Alternate alike.
	Aliases map[string]Parameter

	// Required holds every parameter whose IsRequired is true, across
	// all three categories above. newParseState seeds parseState.unsatisfied
	// from this.
	Required []Parameter

	// All holds every flattened parameter, in declaration order, for
	// running PostParse after a parse (Unsatisfied checks iterate
	// Required instead).
	All []Parameter
}

// NewCLISignature flattens params (recursively pulling in each
// parameter's Extras — see [Parameter.Extras]), validates alias
// uniqueness and well-formedness, and returns the signature [Parse]
// operates on. It panics-never; construction errors come back as a
// non-nil error, since a malformed signature is a programming mistake
// the caller should handle the same way it handles any other
// construction-time failure.
func NewCLISignature(params ...Parameter) (*CLISignature, error) {
	sig := &CLISignature{Aliases: make(map[string]Parameter)}

	flat := flattenExtras(params)
	for _, p := range flat {
		if err := sig.add(p); err != nil {
			return nil, err
		}
	}
	return sig, nil
}

// NewCLISignatureFromStruct derives a [CLISignature] straight from a
// pointer-to-struct callee description, using conv (typically a
// [*DefaultConverter]) to turn its fields into parameters. extra, if
// given, is appended after the struct-derived parameters — typically an
// [AlternateCommand] or two, which don't correspond to any struct field.
func NewCLISignatureFromStruct(target any, conv SignatureConverter, extra ...Parameter) (*CLISignature, error) {
	params, err := conv.Convert(target)
	if err != nil {
		return nil, err
	}
	return NewCLISignature(append(params, extra...)...)
}

// flattenExtras walks params depth-first, appending each parameter
// followed by its own Extras (also flattened), so that a decorator
// parameter's companions — e.g. [CounterFlag]'s optional reset
// companion — end up as first-class entries in the signature without
// the caller declaring them separately.
func flattenExtras(params []Parameter) []Parameter {
	out := make([]Parameter, 0, len(params))
	for _, p := range params {
		out = append(out, p)
		if extras := p.Extras(); len(extras) > 0 {
			out = append(out, flattenExtras(extras)...)
		}
	}
	return out
}

func (sig *CLISignature) add(p Parameter) error {
	aliases := p.Aliases()

	switch p.(type) {
	case *AlternateCommand, *FallbackCommand:
		sig.Alternate = append(sig.Alternate, p)
	default:
		if len(aliases) == 0 {
			sig.Positional = append(sig.Positional, p)
		} else {
			sig.Named = append(sig.Named, p)
		}
	}

	for _, alias := range aliases {
		if strings.ContainsAny(alias, " \t\n") {
			return &WhitespaceInAliasError{Alias: alias}
		}
		if existing, dup := sig.Aliases[alias]; dup {
			return &DuplicateAliasError{Alias: alias, Existing: existing, New: p}
		}
		sig.Aliases[alias] = p
	}

	sig.All = append(sig.All, p)
	if p.IsRequired() {
		sig.Required = append(sig.Required, p)
	}
	return nil
}
