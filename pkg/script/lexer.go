package script

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

var (
	// ErrUnclosedQuote is returned when a quoted word runs to the end of the line.
	ErrUnclosedQuote = errors.New("unclosed quote")
	// ErrTrailingEscape is returned when a line ends in a backslash.
	ErrTrailingEscape = errors.New("trailing escape character")
)

// Fields splits a script line into words.
//
//   - whitespace separates words
//   - 'single quotes' keep their contents verbatim
//   - "double quotes" allow \" and \\ escapes, other backslashes are kept
//   - outside quotes a backslash escapes the next character
//
// A quoted empty string produces an empty word, so `set PlayerName ""`
// clears the name.
func Fields(line string) ([]string, error) {
	var (
		words   []string
		word    strings.Builder
		inWord  bool
		quote   rune
		escaped bool
	)

	for _, ch := range line {
		switch {
		case escaped:
			if quote == '"' && ch != '"' && ch != '\\' {
				word.WriteRune('\\')
			}
			word.WriteRune(ch)
			escaped = false
		case quote == '\'':
			if ch == '\'' {
				quote = 0
			} else {
				word.WriteRune(ch)
			}
		case ch == '\\':
			escaped = true
			inWord = true
		case quote == '"':
			if ch == '"' {
				quote = 0
			} else {
				word.WriteRune(ch)
			}
		case ch == '\'' || ch == '"':
			quote = ch
			inWord = true
		case unicode.IsSpace(ch):
			if inWord {
				words = append(words, word.String())
				word.Reset()
				inWord = false
			}
		default:
			word.WriteRune(ch)
			inWord = true
		}
	}

	if escaped {
		return nil, ErrTrailingEscape
	}
	if quote != 0 {
		return nil, fmt.Errorf("%w: %c", ErrUnclosedQuote, quote)
	}
	if inWord {
		words = append(words, word.String())
	}
	return words, nil
}

// Quote renders s as a single script word.
func Quote(s string) string {
	if s == "" {
		return `""`
	}
	if !strings.ContainsFunc(s, needsQuoting) {
		return s
	}
	if !strings.ContainsRune(s, '\'') {
		return "'" + s + "'"
	}
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`)
	return `"` + r.Replace(s) + `"`
}

func needsQuoting(ch rune) bool {
	return unicode.IsSpace(ch) || ch == '\'' || ch == '"' || ch == '\\' || ch == '#'
}
