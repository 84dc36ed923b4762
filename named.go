// named.go - shared machinery for named (option-like) parameters.
// SPDX-License-Identifier: GPL-3.0-or-later

package sigparse

import (
	"sort"
	"strings"
)

// namedBase factors out the machinery every named (option-like)
// parameter shares: alias bookkeeping, value extraction from
// `--name=value` / `--name value` / `-xVALUE` / `-x VALUE`, and
// short-flag redispatch. [Option], [IntOption], [Flag],
// [AlternateCommand], and [FallbackCommand] all embed it — composition
// standing in for what would otherwise be a shared base class.
type namedBase struct {
	common
	aliases      []string
	argumentName string
}

func newNamedBase(aliases []string, argumentName string) namedBase {
	displayName := aliases[0]
	return namedBase{
		common:       common{displayName: displayName},
		aliases:      aliases,
		argumentName: argumentName,
	}
}

func (n *namedBase) Aliases() []string    { return n.aliases }
func (n *namedBase) ArgumentName() string { return n.argumentName }

// aliasSortKey orders aliases with short forms (fewer leading dashes)
// first, ties broken by declaration order.
type aliasSortKey struct {
	alias string
	order int
}

// sortedAliases returns n.aliases ordered per [aliasSortKey], for display
// purposes (e.g. listing "-v, --verbose" instead of "--verbose, -v").
func (n *namedBase) sortedAliases() []string {
	keys := make([]aliasSortKey, len(n.aliases))
	for i, a := range n.aliases {
		keys[i] = aliasSortKey{alias: a, order: i}
	}
	sort.SliceStable(keys, func(i, j int) bool {
		li := len(keys[i].alias) - len(strings.TrimLeft(keys[i].alias, "-"))
		lj := len(keys[j].alias) - len(strings.TrimLeft(keys[j].alias, "-"))
		if li != lj {
			return li < lj
		}
		return keys[i].order < keys[j].order
	})
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = k.alias
	}
	return out
}

// allNames joins the sorted aliases for display, e.g. "-v, --verbose".
func (n *namedBase) allNames() string {
	return strings.Join(n.sortedAliases(), ", ")
}

// getValue fetches the "value" part of a `--name=value`, `--name value`,
// `-xVALUE`, or `-x VALUE` token at ba.InArgs[i], setting st.skip when
// the value came from the next token rather than being glued to this
// one.
func getValue(ba *BoundArguments, st *parseState, i int) (string, error) {
	arg := ba.InArgs[i]

	var glued bool
	var val string

	if strings.HasPrefix(arg, "--") {
		_, sep, rest := strings.Cut(arg, "=")
		glued = sep
		val = rest
	} else {
		rest := strings.TrimLeft(arg, "-")
		if len(rest) > 1 {
			glued = true
			val = rest[1:]
		}
	}

	if !glued {
		if i+1 >= len(ba.InArgs) {
			return "", &MissingValueError{}
		}
		val = ba.InArgs[i+1]
		st.skip = 1
	}
	return val, nil
}

// redispatchShortArg rewrites the current input slot to "-"+rest and
// invokes the ReadArgument method of the parameter aliased to "-rest[0]",
// restoring the original slot afterward. This implements short-flag
// chaining: "-abc" behaves like "-a -bc".
func redispatchShortArg(ba *BoundArguments, st *parseState, i int, rest string) error {
	if rest == "" {
		return nil
	}
	nparam, ok := ba.Sig.Aliases["-"+rest[:1]]
	if !ok {
		return &UnknownOptionError{Name: "-" + rest[:1]}
	}
	orig := ba.InArgs[i]
	ba.InArgs[i] = "-" + rest
	err := nparam.ReadArgument(ba, st, i)
	ba.InArgs[i] = orig
	if err != nil {
		return err
	}
	st.unsatisfied.discard(nparam)
	return nil
}
