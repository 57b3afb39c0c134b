package runtimex

import (
	"strings"

	"github.com/cnlutao/ice/core/errors"
)

// Identity names an object: an optional category and a mandatory name.
type Identity struct {
	Name     string
	Category string
}

// ParseIdentity parses "name" or "category/name". A backslash escapes the next character.
func ParseIdentity(s string) (Identity, error) {
	var (
		parts []string
		cur   strings.Builder
	)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\\' && i+1 < len(s):
			i++
			cur.WriteByte(s[i])
		case c == '/':
			parts = append(parts, cur.String())
			cur.Reset()
		default:
			cur.WriteByte(c)
		}
	}
	parts = append(parts, cur.String())

	var id Identity
	switch len(parts) {
	case 1:
		id.Name = parts[0]
	case 2:
		id.Category, id.Name = parts[0], parts[1]
	default:
		return Identity{}, errors.Build(errors.CodeProxyParse).WithOp("runtimex.ParseIdentity").WithMsgf("invalid identity %q: too many '/'", s).Err()
	}
	if id.Name == "" {
		return Identity{}, errors.Build(errors.CodeProxyParse).WithOp("runtimex.ParseIdentity").WithMsgf("invalid identity %q: empty name", s).Err()
	}
	return id, nil
}

// String renders the identity in the form ParseIdentity accepts.
func (id Identity) String() string {
	if id.Category == "" {
		return escapeIdentityPart(id.Name)
	}
	return escapeIdentityPart(id.Category) + "/" + escapeIdentityPart(id.Name)
}

func escapeIdentityPart(s string) string {
	if !strings.ContainsAny(s, `/\`) {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '/' || s[i] == '\\' {
			b.WriteByte('\\')
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
