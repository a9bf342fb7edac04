package shell

import (
	"errors"
	"strings"
)

// ErrUnterminatedQuote is returned for a line with an unclosed quote.
var ErrUnterminatedQuote = errors.New("unterminated quote")

// SplitArgs tokenises a command line the way Execute does. Single and
// double quotes group words; a backslash escapes the next character outside
// single quotes.
func SplitArgs(line string) ([]string, error) {
	var (
		args    []string
		current strings.Builder
		inArg   bool
		quote   rune
		escaped bool
	)

	for _, r := range line {
		switch {
		case escaped:
			current.WriteRune(r)
			escaped = false
		case r == '\\' && quote != '\'':
			escaped = true
			inArg = true
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				current.WriteRune(r)
			}
		case r == '"' || r == '\'':
			quote = r
			inArg = true
		case r == ' ' || r == '\t':
			if inArg {
				args = append(args, current.String())
				current.Reset()
				inArg = false
			}
		default:
			current.WriteRune(r)
			inArg = true
		}
	}

	if quote != 0 || escaped {
		return nil, ErrUnterminatedQuote
	}
	if inArg {
		args = append(args, current.String())
	}
	return args, nil
}

// splitPairs parses key=value arguments. Keys are lower-cased; a repeated
// key keeps its last value.
func splitPairs(args []string) (map[string]string, error) {
	pairs := make(map[string]string, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, errors.New("expected key=value, got " + quoteIfNeeded(arg))
		}
		pairs[strings.ToLower(key)] = value
	}
	return pairs, nil
}

func quoteIfNeeded(s string) string {
	if s == "" || strings.ContainsAny(s, " \t") {
		return `"` + s + `"`
	}
	return s
}
