package token

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []Op
	}{
		{"single increment", "+", []Op{Increment}},
		{"all four ops", "+-*/", []Op{Increment, Decrement, Double, Halve}},
		{"spaces skipped", "+ + * - /", []Op{Increment, Increment, Double, Decrement, Halve}},
		{"newlines skipped", "+\n+\n*", []Op{Increment, Increment, Double}},
		{"leading and trailing whitespace", "  ++  \n", []Op{Increment, Increment}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Tokenize(tt.src)
			if err != nil {
				t.Fatalf("Tokenize(%q) error: %v", tt.src, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Tokenize(%q) mismatch (-want +got):\n%s", tt.src, diff)
			}
		})
	}
}

func TestTokenizeUnknownChar(t *testing.T) {
	tests := []struct {
		src      string
		wantChar byte
		wantPos  int
	}{
		{"++x", 'x', 2},
		{"a", 'a', 0},
		{"+ 1 +", '1', 2},
		{"+\t+", '\t', 1}, // tab is not a separator
	}

	for _, tt := range tests {
		ops, err := Tokenize(tt.src)
		if ops != nil {
			t.Errorf("Tokenize(%q) returned ops despite invalid input", tt.src)
		}
		var ucErr *UnknownCharError
		if !errors.As(err, &ucErr) {
			t.Fatalf("Tokenize(%q) error = %v, want *UnknownCharError", tt.src, err)
		}
		if ucErr.Char != tt.wantChar || ucErr.Pos != tt.wantPos {
			t.Errorf("Tokenize(%q) = char %q at %d, want %q at %d",
				tt.src, ucErr.Char, ucErr.Pos, tt.wantChar, tt.wantPos)
		}
	}
}

func TestTokenizeEmpty(t *testing.T) {
	for _, src := range []string{"", " ", "\n", "  \n \n "} {
		if _, err := Tokenize(src); !errors.Is(err, ErrEmptyProgram) {
			t.Errorf("Tokenize(%q) error = %v, want ErrEmptyProgram", src, err)
		}
	}
}

func TestOpString(t *testing.T) {
	pairs := map[Op]string{Increment: "+", Decrement: "-", Double: "*", Halve: "/"}
	for op, want := range pairs {
		if got := op.String(); got != want {
			t.Errorf("Op(%d).String() = %q, want %q", byte(op), got, want)
		}
	}
}
