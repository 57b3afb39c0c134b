// Package propsx implements the communicator property set.
//
// Overview:
//   - Responsibility: Hold string properties, parse them from files, environment and command lines
//   - Key Types: Properties, Source, FileSource, EnvSource, ArgsSource
//   - Concurrency Model: Properties is safe for concurrent use; sources are read once
//   - Error Semantics: Accessors never fail; loaders and Bind return wrapped errors
//   - Performance Notes: Reads take a read lock; Clone copies the whole map
//
// Usage:
//
//	props, rest, err := propsx.NewProperties(os.Args[1:], nil)
//	size := props.GetPropertyAsIntWithDefault("Ice.MessageSizeMax", 1024)
//	props.SetProperty("Hello.Endpoints", "tcp -p 10000")
package propsx

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/cnlutao/ice/core/errors"
)

// ReservedPrefixes lists the property namespaces owned by the runtime.
// Command-line options under these prefixes are consumed by
// ParseIceCommandLineOptions.
var ReservedPrefixes = []string{
	"Ice", "IceBox", "IceGridAdmin", "IceGrid", "IcePatch2",
	"IceSSL", "IceStormAdmin", "IceStorm", "Glacier2", "Freeze",
}

type entry struct {
	value string
	used  bool
}

// Properties is a concurrency-safe set of string properties.
type Properties struct {
	mu sync.RWMutex
	m  map[string]*entry
}

// New returns an empty property set.
func New() *Properties {
	return &Properties{m: make(map[string]*entry)}
}

// FromMap returns a property set holding a copy of m.
func FromMap(m map[string]string) *Properties {
	p := New()
	for k, v := range m {
		p.SetProperty(k, v)
	}
	return p
}

func (p *Properties) lookup(key string) (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	e, ok := p.m[key]
	if !ok {
		return "", false
	}
	e.used = true
	return e.value, true
}

// GetProperty returns the value of key, or "" when unset.
func (p *Properties) GetProperty(key string) string {
	v, _ := p.lookup(key)
	return v
}

// GetPropertyWithDefault returns the value of key, or def when unset.
func (p *Properties) GetPropertyWithDefault(key, def string) string {
	if v, ok := p.lookup(key); ok {
		return v
	}
	return def
}

// GetPropertyAsInt returns the value of key as an integer, or 0.
func (p *Properties) GetPropertyAsInt(key string) int {
	return p.GetPropertyAsIntWithDefault(key, 0)
}

// GetPropertyAsIntWithDefault returns the integer value of key. Unset or
// non-numeric values yield def.
func (p *Properties) GetPropertyAsIntWithDefault(key string, def int) int {
	v, ok := p.lookup(key)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	return n
}

// GetPropertyAsList splits the value of key on commas and whitespace.
func (p *Properties) GetPropertyAsList(key string) []string {
	return p.GetPropertyAsListWithDefault(key, nil)
}

// GetPropertyAsListWithDefault is GetPropertyAsList returning def when key is unset or empty.
func (p *Properties) GetPropertyAsListWithDefault(key string, def []string) []string {
	v, ok := p.lookup(key)
	if !ok {
		return def
	}
	fields := strings.FieldsFunc(v, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields) == 0 {
		return def
	}
	return fields
}

// GetPropertiesForPrefix returns every property whose key starts with prefix.
func (p *Properties) GetPropertiesForPrefix(prefix string) map[string]string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make(map[string]string)
	for k, e := range p.m {
		if strings.HasPrefix(k, prefix) {
			e.used = true
			out[k] = e.value
		}
	}
	return out
}

// SetProperty sets key to value. An empty value removes the key.
// Leading and trailing whitespace of the key is ignored; an empty key is a no-op.
func (p *Properties) SetProperty(key, value string) {
	key = strings.TrimSpace(key)
	if key == "" {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if value == "" {
		delete(p.m, key)
		return
	}
	if e, ok := p.m[key]; ok {
		e.value = value
		return
	}
	p.m[key] = &entry{value: value}
}

// Keys returns every key in sorted order.
func (p *Properties) Keys() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	keys := make([]string, 0, len(p.m))
	for k := range p.m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Snapshot returns a copy of all properties.
func (p *Properties) Snapshot() map[string]string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make(map[string]string, len(p.m))
	for k, e := range p.m {
		out[k] = e.value
	}
	return out
}

// GetCommandLineOptions renders every property as a --key=value option, sorted by key.
func (p *Properties) GetCommandLineOptions() []string {
	snap := p.Snapshot()
	opts := make([]string, 0, len(snap))
	for _, k := range sortedKeys(snap) {
		opts = append(opts, "--"+k+"="+snap[k])
	}
	return opts
}

// ParseCommandLineOptions consumes every "--<prefix>.key[=value]" option from
// args and returns the remaining arguments. An option without a value is set to "1".
func (p *Properties) ParseCommandLineOptions(prefix string, args []string) []string {
	pfx := "--" + prefix
	if prefix != "" && !strings.HasSuffix(pfx, ".") {
		pfx += "."
	}

	var rest []string
	for _, arg := range args {
		if !strings.HasPrefix(arg, pfx) {
			rest = append(rest, arg)
			continue
		}
		key, value, found := strings.Cut(strings.TrimPrefix(arg, "--"), "=")
		if !found {
			value = "1"
		}
		p.SetProperty(key, value)
	}
	return rest
}

// ParseIceCommandLineOptions applies ParseCommandLineOptions for every reserved prefix.
func (p *Properties) ParseIceCommandLineOptions(args []string) []string {
	rest := args
	for _, prefix := range ReservedPrefixes {
		rest = p.ParseCommandLineOptions(prefix, rest)
	}
	return rest
}

// Load merges the properties produced by src. Later loads override earlier ones.
func (p *Properties) Load(ctx context.Context, src Source) error {
	values, err := src.Load(ctx)
	if err != nil {
		return errors.Wrap(errors.CodeInitialization, "propsx.Load", err)
	}
	for _, k := range sortedKeys(values) {
		p.SetProperty(k, values[k])
	}
	return nil
}

// Clone returns an independent copy.
func (p *Properties) Clone() *Properties {
	return FromMap(p.Snapshot())
}

// GetUnusedProperties returns the sorted keys that were never read.
func (p *Properties) GetUnusedProperties() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	var unused []string
	for k, e := range p.m {
		if !e.used {
			unused = append(unused, k)
		}
	}
	sort.Strings(unused)
	return unused
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
