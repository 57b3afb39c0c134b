package runtimex

import (
	"fmt"
	"strings"
)

// splitFields splits s on whitespace. Double quotes group a field and are removed.
func splitFields(s string) ([]string, error) {
	var (
		fields  []string
		cur     strings.Builder
		inQuote bool
		have    bool
	)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '"':
			inQuote = !inQuote
			have = true
		case !inQuote && (c == ' ' || c == '\t' || c == '\n' || c == '\r'):
			if have {
				fields = append(fields, cur.String())
				cur.Reset()
				have = false
			}
		default:
			cur.WriteByte(c)
			have = true
		}
	}
	if inQuote {
		return nil, fmt.Errorf("mismatched quotes")
	}
	if have {
		fields = append(fields, cur.String())
	}
	return fields, nil
}

// splitUnquoted splits s on sep, ignoring separators inside double quotes.
func splitUnquoted(s string, sep byte) []string {
	var (
		parts   []string
		start   int
		inQuote bool
	)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '"':
			inQuote = !inQuote
		case sep:
			if !inQuote {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, s[start:])
}

// indexUnquoted returns the index of the first sep outside double quotes, or -1.
func indexUnquoted(s string, sep byte) int {
	inQuote := false
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '"':
			inQuote = !inQuote
		case sep:
			if !inQuote {
				return i
			}
		}
	}
	return -1
}

func quoteIfNeeded(s string) string {
	if s == "" || strings.ContainsAny(s, " \t:@") {
		return `"` + s + `"`
	}
	return s
}
