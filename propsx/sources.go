package propsx

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Source produces a snapshot of properties.
type Source interface {
	Load(ctx context.Context) (map[string]string, error)
}

// File formats understood by FileSource.
const (
	FormatIce  = "ice"
	FormatYAML = "yaml"
	FormatTOML = "toml"
	FormatJSON = "json"
)

// FileOptions configures a FileSource.
type FileOptions struct {
	Format   string // ice, yaml, toml or json (default: detected from the extension)
	Optional bool   // A missing file yields no properties instead of an error
}

// FileSource loads properties from a configuration file. Structured formats
// are flattened to dotted keys, so the YAML document
//
//	Ice:
//	  Trace:
//	    Network: 2
//
// yields Ice.Trace.Network=2. Lists are joined with commas.
type FileSource struct {
	path     string
	format   string
	optional bool
}

// NewFileSource creates a file source for path.
func NewFileSource(path string, opts FileOptions) *FileSource {
	format := opts.Format
	if format == "" {
		format = detectFileFormat(path)
	}
	return &FileSource{path: path, format: format, optional: opts.Optional}
}

// Load reads and parses the file.
func (s *FileSource) Load(ctx context.Context) (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) && s.optional {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("read config file %s: %w", s.path, err)
	}

	out, err := parseConfigFile(data, s.format)
	if err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", s.path, err)
	}
	return out, nil
}

func detectFileFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	default:
		return FormatIce
	}
}

func parseConfigFile(data []byte, format string) (map[string]string, error) {
	switch format {
	case FormatIce:
		return parseIceConfig(data)
	case FormatJSON:
		var doc map[string]any
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
		return flatten(doc), nil
	case FormatYAML:
		var doc map[string]any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
		return flatten(doc), nil
	case FormatTOML:
		var doc map[string]any
		if _, err := toml.Decode(string(data), &doc); err != nil {
			return nil, err
		}
		return flatten(doc), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// parseIceConfig reads the classic "key = value" format. '#' starts a comment
// unless escaped as "\#"; "\=" in a key is a literal '='.
func parseIceConfig(data []byte) (map[string]string, error) {
	out := make(map[string]string)
	sc := bufio.NewScanner(bytes.NewReader(data))
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := stripComment(sc.Text())
		if strings.TrimSpace(line) == "" {
			continue
		}

		idx := unescapedIndex(line, '=')
		if idx < 0 {
			return nil, fmt.Errorf("line %d: missing '='", lineNo)
		}
		key := strings.TrimSpace(unescape(line[:idx]))
		value := strings.TrimSpace(unescape(line[idx+1:]))
		if key == "" {
			return nil, fmt.Errorf("line %d: empty key", lineNo)
		}
		out[key] = value
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func stripComment(line string) string {
	if idx := unescapedIndex(line, '#'); idx >= 0 {
		return line[:idx]
	}
	return line
}

func unescapedIndex(s string, c byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
			continue
		}
		if s[i] == c {
			return i
		}
	}
	return -1
}

func unescape(s string) string {
	r := strings.NewReplacer(`\#`, "#", `\=`, "=", `\\`, `\`)
	return r.Replace(s)
}

func flatten(doc map[string]any) map[string]string {
	out := make(map[string]string)
	flattenInto(out, "", doc)
	return out
}

func flattenInto(out map[string]string, prefix string, v any) {
	join := func(k string) string {
		if prefix == "" {
			return k
		}
		return prefix + "." + k
	}

	switch val := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			flattenInto(out, join(k), val[k])
		}
	case []any:
		parts := make([]string, 0, len(val))
		for _, item := range val {
			parts = append(parts, fmt.Sprint(item))
		}
		out[prefix] = strings.Join(parts, ",")
	case nil:
		out[prefix] = ""
	default:
		out[prefix] = fmt.Sprint(val)
	}
}

// EnvOptions configures an EnvSource.
type EnvOptions struct {
	Prefix string // Only variables with this prefix are read; the prefix is stripped
}

// EnvSource maps environment variables to properties. With prefix
// "ICE_PROP_", ICE_PROP_Ice__Trace__Network=2 becomes Ice.Trace.Network=2.
type EnvSource struct {
	prefix  string
	environ func() []string
}

// NewEnvSource creates an environment source.
func NewEnvSource(opts EnvOptions) *EnvSource {
	return &EnvSource{prefix: opts.Prefix, environ: os.Environ}
}

// Load reads the current environment.
func (s *EnvSource) Load(ctx context.Context) (map[string]string, error) {
	out := make(map[string]string)
	for _, kv := range s.environ() {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(key, s.prefix) {
			continue
		}
		key = strings.ReplaceAll(strings.TrimPrefix(key, s.prefix), "__", ".")
		if key == "" {
			continue
		}
		out[key] = value
	}
	return out, nil
}

// ArgsSource extracts "--<prefix>.key=value" options from a command line.
type ArgsSource struct {
	args     []string
	prefixes []string
}

// NewArgsSource creates a source over args. With no prefixes the reserved
// runtime prefixes are used.
func NewArgsSource(args []string, prefixes ...string) *ArgsSource {
	if len(prefixes) == 0 {
		prefixes = ReservedPrefixes
	}
	return &ArgsSource{args: args, prefixes: prefixes}
}

// Load parses the options.
func (s *ArgsSource) Load(ctx context.Context) (map[string]string, error) {
	p := New()
	rest := s.args
	for _, prefix := range s.prefixes {
		rest = p.ParseCommandLineOptions(prefix, rest)
	}
	return p.Snapshot(), nil
}
