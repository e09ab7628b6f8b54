package script

import (
	"errors"
	"reflect"
	"testing"
)

func TestFields(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{name: "empty", input: "", expected: nil},
		{name: "only spaces", input: "   \t ", expected: nil},
		{name: "plain words", input: "set MapX 12", expected: []string{"set", "MapX", "12"}},
		{name: "extra whitespace", input: "  set\tMisc0    7 ", expected: []string{"set", "Misc0", "7"}},
		{name: "double quoted name", input: `set PlayerName "Sir Robin"`, expected: []string{"set", "PlayerName", "Sir Robin"}},
		{name: "single quoted name", input: `set PlayerName 'Sir Robin'`, expected: []string{"set", "PlayerName", "Sir Robin"}},
		{name: "empty double quotes", input: `set PlayerName ""`, expected: []string{"set", "PlayerName", ""}},
		{name: "empty single quotes", input: `set PlayerName ''`, expected: []string{"set", "PlayerName", ""}},
		{name: "escaped space", input: `set PlayerName Sir\ Robin`, expected: []string{"set", "PlayerName", "Sir Robin"}},
		{name: "escaped quote in double quotes", input: `set PlayerName "the \"brave\""`, expected: []string{"set", "PlayerName", `the "brave"`}},
		{name: "other escape kept in double quotes", input: `"a\nb"`, expected: []string{`a\nb`}},
		{name: "backslash literal in single quotes", input: `'C:\saves'`, expected: []string{`C:\saves`}},
		{name: "adjacent quoted parts", input: `Sir' 'Robin"!"`, expected: []string{"Sir Robin!"}},
		{name: "unicode", input: "set PlayerName ナナシ", expected: []string{"set", "PlayerName", "ナナシ"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Fields(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("Fields(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestFieldsErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{name: "unclosed double", input: `set PlayerName "Robin`, want: ErrUnclosedQuote},
		{name: "unclosed single", input: `set PlayerName 'Robin`, want: ErrUnclosedQuote},
		{name: "trailing escape", input: `set PlayerName Robin\`, want: ErrTrailingEscape},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Fields(tt.input)
			if !errors.Is(err, tt.want) {
				t.Errorf("Fields(%q) error = %v, want %v", tt.input, err, tt.want)
			}
		})
	}
}

func TestQuoteRoundTrip(t *testing.T) {
	inputs := []string{"", "Robin", "Sir Robin", "it's", `say "hi"`, `it's "both"`, `back\slash`, "#1 fan"}

	for _, in := range inputs {
		quoted := Quote(in)
		words, err := Fields(quoted)
		if err != nil {
			t.Fatalf("Fields(Quote(%q)) error: %v", in, err)
		}
		if len(words) != 1 || words[0] != in {
			t.Errorf("Fields(Quote(%q)) = %q via %s", in, words, quoted)
		}
	}
}
