// scanner_test.go - Tests for command line scanner.
// SPDX-License-Identifier: GPL-3.0-or-later

package scanner

import "testing"

func TestTokenIndex(t *testing.T) {
	tests := []struct {
		name     string
		token    Token
		expected int
	}{
		{
			name:     "ProgramNameToken",
			token:    ProgramNameToken{Index: 1},
			expected: 1,
		},
		{
			name:     "OptionToken",
			token:    OptionToken{Index: 1},
			expected: 1,
		},
		{
			name:     "ArgumentToken",
			token:    ArgumentToken{Index: 1},
			expected: 1,
		},
		{
			name:     "SeparatorToken",
			token:    SeparatorToken{Index: 1},
			expected: 1,
		},
	}

	indexOf := func(tok Token) int {
		switch v := tok.(type) {
		case ProgramNameToken:
			return v.Index
		case OptionToken:
			return v.Index
		case ArgumentToken:
			return v.Index
		case SeparatorToken:
			return v.Index
		default:
			t.Fatalf("unexpected token type %T", tok)
			return -1
		}
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := indexOf(tt.token)
			if got != tt.expected {
				t.Errorf("token index = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestTokenString(t *testing.T) {
	tests := []struct {
		name     string
		token    Token
		expected string
	}{
		{
			name:     "ProgramNameToken",
			token:    ProgramNameToken{Name: "test"},
			expected: "test",
		},
		{
			name:     "OptionToken with single dash",
			token:    OptionToken{Prefix: "-", Name: "v"},
			expected: "-v",
		},
		{
			name:     "OptionToken with double dash",
			token:    OptionToken{Prefix: "--", Name: "verbose"},
			expected: "--verbose",
		},
		{
			name:     "ArgumentToken",
			token:    ArgumentToken{Value: "file.txt"},
			expected: "file.txt",
		},
		{
			name:     "SeparatorToken",
			token:    SeparatorToken{Separator: "--"},
			expected: "--",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.token.String()
			if got != tt.expected {
				t.Errorf("Token.String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestScannerMissingProgramName(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{
			name: "nil args",
			args: nil,
		},
		{
			name: "empty args",
			args: []string{},
		},
	}

	scanner := &Scanner{
		Prefixes:   []string{"-", "--"},
		Separators: []string{"--"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := scanner.Scan(tt.args)
			if err != ErrMissingProgramName {
				t.Errorf("Scanner.Scan() error = %v, want %v", err, ErrMissingProgramName)
			}
		})
	}
}

func TestScannerCLISignatureTokens(t *testing.T) {
	scanner := &Scanner{
		Prefixes:   []string{"-", "--"},
		Separators: []string{"--"},
	}

	tokens, err := scanner.Scan([]string{"prog", "-v", "--name=value", "--", "rest"})
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	want := []Token{
		ProgramNameToken{Index: 0, Name: "prog"},
		OptionToken{Index: 1, Prefix: "-", Name: "v"},
		OptionToken{Index: 2, Prefix: "--", Name: "name=value"},
		SeparatorToken{Index: 3, Separator: "--"},
		ArgumentToken{Index: 4, Value: "rest"},
	}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(tokens), len(want))
	}
	for i := range want {
		if tokens[i] != want[i] {
			t.Errorf("token[%d] = %#v, want %#v", i, tokens[i], want[i])
		}
	}
}
