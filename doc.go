// doc.go - package documentation.
// SPDX-License-Identifier: GPL-3.0-or-later

/*
Package sigparse translates a declarative signature of parameters into a
parsed binding of positional arguments and named options for a target
callee.

To use this package proceed as follows:

 1. Describe the callee's parameters, either by hand as a slice of
    [Parameter] values passed to [NewCLISignature], or by pointing a
    [SignatureConverter] at a plain Go struct whose exported fields carry
    `cli` struct tags.

 2. Call [*CLISignature.Parse] with the raw argument vector (without the
    program name) to obtain a [*BoundArguments].

 3. Inspect [*BoundArguments.Func], [*BoundArguments.Args], and
    [*BoundArguments.Kwargs] to invoke the resolved target. sigparse does
    not call it for you, and it does not render help text: both are the
    job of the code that embeds this package.

# Parameters

A [Parameter] is one of [Positional], [ExtraPositional], [Option],
[IntOption], [MultiOption], [Flag], [CounterFlag], [AlternateCommand], or
[FallbackCommand]. Every variant except [Positional] and [ExtraPositional]
is named: it is triggered by one or more aliases such as `--verbose` or
`-v`. See the package-level examples for common combinations.

# Signature conversion

[SignatureConverter] is the Go-native analogue of inspecting a callee's
declared parameters: since Go has no runtime function-signature
introspection, the callee is instead a pointer to a struct, and each
exported field plays the role of one parameter descriptor. See
[DefaultConverter] for the full annotation vocabulary.

# Errors

Parsing a malformed command line returns one of the error types declared
in errors.go, such as [*UnknownOptionError] or
[*MissingRequiredArgumentsError]. [*CLISignature.Parse] also implements a
fallback-recovery protocol (see recovery.go) so that a `--help`-like
[FallbackCommand] appearing anywhere on the command line can still
rescue an otherwise-failed parse; an [AlternateCommand] only rescues a
parse when it is the very first token.
*/
package sigparse
