// example_test.go - Scanner example tests
// SPDX-License-Identifier: GPL-3.0-or-later

package scanner_test

import (
	"fmt"

	"github.com/bassosimone/sigparse/pkg/scanner"
)

// ExampleScanner_sigparse demonstrates the exact prefix/separator
// configuration sigparse's own parse engine uses: "-" and "--" option
// prefixes, "--" as the sole separator. Short options bundle (-abc), long
// options take "=value" inline, and everything after the separator keeps
// being classified as before — it's the parse loop above this package
// that turns a [scanner.SeparatorToken] into posarg-only mode.
func ExampleScanner_sigparse() {
	s := &scanner.Scanner{
		Prefixes:   []string{"-", "--"},
		Separators: []string{"--"},
	}

	args := []string{"prog", "-v", "--count=3", "-abc", "--", "--looks-like-flag", "input.txt"}

	tokens, err := s.Scan(args)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	for _, token := range tokens {
		fmt.Printf("%#v\n", token)
	}

	// Output:
	// scanner.ProgramNameToken{Index:0, Name:"prog"}
	// scanner.OptionToken{Index:1, Prefix:"-", Name:"v"}
	// scanner.OptionToken{Index:2, Prefix:"--", Name:"count=3"}
	// scanner.OptionToken{Index:3, Prefix:"-", Name:"abc"}
	// scanner.SeparatorToken{Index:4, Separator:"--"}
	// scanner.OptionToken{Index:5, Prefix:"--", Name:"looks-like-flag"}
	// scanner.ArgumentToken{Index:6, Value:"input.txt"}
}

// ExampleScanner_unix demonstrates a scanner configured without any long
// prefix or separator at all — the degenerate case sigparse's own
// configuration deliberately avoids, kept here to document that the
// [Scanner] itself places no requirement on having more than one prefix.
func ExampleScanner_unix() {
	s := &scanner.Scanner{
		Prefixes:   []string{"-"},
		Separators: []string{},
	}

	args := []string{"prog", "-v", "-f", "file.txt", "-abc", "input.txt"}

	tokens, err := s.Scan(args)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	for _, token := range tokens {
		fmt.Printf("%#v\n", token)
	}

	// Output:
	// scanner.ProgramNameToken{Index:0, Name:"prog"}
	// scanner.OptionToken{Index:1, Prefix:"-", Name:"v"}
	// scanner.OptionToken{Index:2, Prefix:"-", Name:"f"}
	// scanner.ArgumentToken{Index:3, Value:"file.txt"}
	// scanner.OptionToken{Index:4, Prefix:"-", Name:"abc"}
	// scanner.ArgumentToken{Index:5, Value:"input.txt"}
}
