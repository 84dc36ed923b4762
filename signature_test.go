// signature_test.go - tests for CLISignature construction.
// SPDX-License-Identifier: GPL-3.0-or-later

package sigparse

import (
	"errors"
	"testing"
)

func TestNewCLISignatureCategorizesParameters(t *testing.T) {
	name := NewPositional("name", StringConverter, Unset)
	verbose := NewFlag([]string{"-v", "--verbose"}, "verbose", true, false)
	help := NewAlternateCommand([]string{"-h", "--help"}, "help", nil)
	extra := NewExtraPositional("rest", StringConverter, false)

	sig, err := NewCLISignature(name, verbose, help, extra)
	if err != nil {
		t.Fatalf("NewCLISignature() error = %v", err)
	}

	if len(sig.Positional) != 2 {
		t.Errorf("len(Positional) = %d, want 2", len(sig.Positional))
	}
	if len(sig.Named) != 1 {
		t.Errorf("len(Named) = %d, want 1", len(sig.Named))
	}
	if len(sig.Alternate) != 1 {
		t.Errorf("len(Alternate) = %d, want 1", len(sig.Alternate))
	}
	for _, alias := range []string{"-v", "--verbose", "-h", "--help"} {
		if _, ok := sig.Aliases[alias]; !ok {
			t.Errorf("alias %q not registered", alias)
		}
	}
	if len(sig.Required) != 1 || sig.Required[0] != Parameter(name) {
		t.Errorf("Required = %v, want [name]", sig.Required)
	}
}

func TestNewCLISignatureRejectsDuplicateAlias(t *testing.T) {
	a := NewFlag([]string{"-v"}, "a", true, false)
	b := NewFlag([]string{"-v"}, "b", true, false)

	_, err := NewCLISignature(a, b)
	var dup *DuplicateAliasError
	if !errors.As(err, &dup) {
		t.Fatalf("error = %v, want *DuplicateAliasError", err)
	}
	if dup.Alias != "-v" {
		t.Errorf("Alias = %q, want -v", dup.Alias)
	}
}

func TestNewCLISignatureRejectsWhitespaceAlias(t *testing.T) {
	bad := NewFlag([]string{"- v"}, "bad", true, false)

	_, err := NewCLISignature(bad)
	var werr *WhitespaceInAliasError
	if !errors.As(err, &werr) {
		t.Fatalf("error = %v, want *WhitespaceInAliasError", err)
	}
}

func TestNewCLISignatureFlattensExtras(t *testing.T) {
	counter := NewCounterFlag([]string{"-v"}, "verbosity", "-q")

	sig, err := NewCLISignature(counter)
	if err != nil {
		t.Fatalf("NewCLISignature() error = %v", err)
	}
	if _, ok := sig.Aliases["-q"]; !ok {
		t.Error("reset companion alias -q not flattened into signature")
	}
	if len(sig.Named) != 2 {
		t.Errorf("len(Named) = %d, want 2 (counter + its reset companion)", len(sig.Named))
	}
}
