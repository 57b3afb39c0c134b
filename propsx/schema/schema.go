// Package schema knows which property names the runtime and its services recognize.
//
// Overview:
//   - Responsibility: Classify a property key as recognized, deprecated or unknown
//   - Key Types: Subsystem, Property, Result
//   - Concurrency Model: Read-only data; patterns compile once on first use
//   - Error Semantics: None; Validate always returns a Result
//
// Usage:
//
//	r := schema.Validate("Glacier2.AllowCategories")
//	if r.Deprecated { logger.Warn("deprecated property", log.Str("replacement", r.Replacement)) }
package schema

import (
	"strings"
	"sync"

	"github.com/grafana/regexp"
)

// Property is one recognized name. Pattern is a regular expression matched
// against the whole key; a trailing `[^\s]+` accepts any suffix.
type Property struct {
	Pattern      string
	Deprecated   bool
	DeprecatedBy string
}

// Subsystem is a reserved key prefix and the names it recognizes, in table order.
type Subsystem struct {
	Name       string
	Properties []Property
}

// Result classifies a key.
type Result struct {
	Key         string
	Subsystem   string // Empty when the key is outside every reserved prefix
	Recognized  bool
	Deprecated  bool
	Replacement string
}

// Reportable reports whether the key deserves a warning: it lives under a
// reserved prefix and is either unknown or deprecated.
func (r Result) Reportable() bool {
	return r.Subsystem != "" && (!r.Recognized || r.Deprecated)
}

type compiled struct {
	re   *regexp.Regexp
	prop Property
}

var (
	compileOnce sync.Once
	table       map[string][]compiled
)

func load() {
	table = make(map[string][]compiled, len(subsystems))
	for _, s := range subsystems {
		entries := make([]compiled, 0, len(s.Properties))
		for _, p := range s.Properties {
			entries = append(entries, compiled{
				re:   regexp.MustCompile("^" + p.Pattern + "$"),
				prop: p,
			})
		}
		table[s.Name] = entries
	}
}

// Subsystems returns the reserved prefixes in table order.
func Subsystems() []string {
	names := make([]string, 0, len(subsystems))
	for _, s := range subsystems {
		names = append(names, s.Name)
	}
	return names
}

// Lookup returns the table of one subsystem.
func Lookup(name string) (Subsystem, bool) {
	for _, s := range subsystems {
		if s.Name == name {
			return s, true
		}
	}
	return Subsystem{}, false
}

// Validate classifies key. The first matching entry wins.
func Validate(key string) Result {
	compileOnce.Do(load)

	res := Result{Key: key}
	for _, s := range subsystems {
		if !strings.HasPrefix(key, s.Name+".") {
			continue
		}
		res.Subsystem = s.Name
		for _, c := range table[s.Name] {
			if !c.re.MatchString(key) {
				continue
			}
			res.Recognized = true
			res.Deprecated = c.prop.Deprecated
			res.Replacement = c.prop.DeprecatedBy
			return res
		}
		return res
	}
	return res
}

// ValidateAll classifies keys and returns only the reportable results, in input order.
func ValidateAll(keys []string) []Result {
	var out []Result
	for _, k := range keys {
		if r := Validate(k); r.Reportable() {
			out = append(out, r)
		}
	}
	return out
}
