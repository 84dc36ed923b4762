// parameter.go - the Parameter sum type and shared field accessors.
// SPDX-License-Identifier: GPL-3.0-or-later

package sigparse

// Parameter describes one CLI parameter. It is realized as a closed sum
// type: [Positional], [ExtraPositional], [Option], [IntOption],
// [MultiOption], [Flag], [CounterFlag], [AlternateCommand], and
// [FallbackCommand] are the only variants, plus the unexported helper
// parameters appendArguments and ignoreAllArguments used internally as
// sticky collectors (see recovery.go). This favors explicit dispatch
// over a classical inheritance lattice: every variant implements the
// four operations below directly instead of inheriting them from a
// chain of mixins.
type Parameter interface {
	// DisplayName is the name used when referring to this parameter in
	// error messages and documentation.
	DisplayName() string

	// Undocumented reports whether this parameter should be hidden from
	// help output (sigparse doesn't render help itself, but it carries
	// the flag for whatever does).
	Undocumented() bool

	// LastOption reports whether, once this parameter is successfully
	// read, every remaining token should be treated as positional.
	LastOption() bool

	// IsRequired reports whether this parameter must be satisfied. It is
	// derived, never stored directly: see each variant's implementation.
	IsRequired() bool

	// Extras returns additional parameters this parameter contributes to
	// the enclosing [CLISignature] at construction time (see
	// flattenExtras in signature.go). Most variants return nil.
	Extras() []Parameter

	// Aliases returns the named forms that trigger this parameter, or
	// nil for positional parameters that aren't triggered by a flag.
	Aliases() []string

	// ArgumentName returns the name under which a successfully parsed
	// value is recorded in [BoundArguments.Kwargs] (for named
	// parameters) — empty for parameters that don't produce a kwarg.
	ArgumentName() string

	// ReadArgument consumes one or more tokens from ba.InArgs starting
	// at position i, mutating ba (terminal output) and st (transient
	// parse state, e.g. skip count or sticky collector) as a side
	// effect.
	ReadArgument(ba *BoundArguments, st *parseState, i int) error

	// ApplyGenericFlags runs once after a successful ReadArgument call.
	// The default behavior (see applyGenericFlags) sets st.posargOnly
	// when LastOption is set and discards the parameter from
	// st.unsatisfied; [ExtraPositional] overrides it to set
	// st.posargOnly the same way and install itself as the sticky
	// collector, leaving the unsatisfied bookkeeping to its bounds check.
	ApplyGenericFlags(ba *BoundArguments, st *parseState)

	// Unsatisfied is called once per required-but-unseen parameter after
	// the main loop completes. Returning true means the parameter really
	// is missing; returning an error lets a variant raise something more
	// specific (e.g. [*NotEnoughValuesError]).
	Unsatisfied(ba *BoundArguments, st *parseState) (bool, error)

	// PostParse runs once for every parameter, in declaration order,
	// after a successful parse.
	PostParse(ba *BoundArguments)
}

// common holds the fields every [Parameter] variant carries. Variants
// embed common instead of inheriting it, since Go has no implementation
// inheritance.
type common struct {
	displayName  string
	undocumented bool
	lastOption   bool
	extras       []Parameter
}

func (c *common) DisplayName() string   { return c.displayName }
func (c *common) Undocumented() bool    { return c.undocumented }
func (c *common) LastOption() bool      { return c.lastOption }
func (c *common) Extras() []Parameter   { return c.extras }
func (c *common) Aliases() []string     { return nil }
func (c *common) ArgumentName() string  { return "" }
func (c *common) PostParse(*BoundArguments) {}

// applyGenericFlags implements the base [Parameter.ApplyGenericFlags]
// behavior: set posarg-only mode if requested, and drop the parameter
// from the unsatisfied set. The multi-valued variants ([ExtraPositional],
// [MultiOption]) override it entirely, and [AlternateCommand],
// [FallbackCommand] and the recovery helpers do nothing in
// ApplyGenericFlags; every other variant calls this.
func applyGenericFlags(p Parameter, ba *BoundArguments, st *parseState) {
	if p.LastOption() {
		st.posargOnly = true
	}
	st.unsatisfied.discard(p)
}

// defaultUnsatisfied implements the base [Parameter.Unsatisfied]
// behavior: a parameter still present in the unsatisfied set at the end
// of parsing is, simply, missing.
func defaultUnsatisfied(*BoundArguments, *parseState) (bool, error) {
	return true, nil
}
