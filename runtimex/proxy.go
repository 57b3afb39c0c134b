package runtimex

import (
	"maps"
	"strings"

	"github.com/cnlutao/ice/core/errors"
	"github.com/cnlutao/ice/propsx"
)

// Mode is the invocation mode of a proxy.
type Mode int

const (
	ModeTwoway Mode = iota
	ModeOneway
	ModeBatchOneway
	ModeDatagram
	ModeBatchDatagram
)

var modeFlags = map[Mode]string{
	ModeTwoway:        "-t",
	ModeOneway:        "-o",
	ModeBatchOneway:   "-O",
	ModeDatagram:      "-d",
	ModeBatchDatagram: "-D",
}

func (m Mode) String() string {
	switch m {
	case ModeTwoway:
		return "twoway"
	case ModeOneway:
		return "oneway"
	case ModeBatchOneway:
		return "batch-oneway"
	case ModeDatagram:
		return "datagram"
	case ModeBatchDatagram:
		return "batch-datagram"
	default:
		return "unknown"
	}
}

// IsBatch reports whether requests in this mode are queued until flushed.
func (m Mode) IsBatch() bool {
	return m == ModeBatchOneway || m == ModeBatchDatagram
}

// Proxy is a local reference to an object, direct (with endpoints) or
// indirect (with an adapter id). Proxies are values: the With* methods return copies.
type Proxy struct {
	Identity  Identity
	Facet     string
	Mode      Mode
	Secure    bool
	Endpoints []Endpoint
	AdapterID string
	Router    *Proxy
	Locator   *Proxy
	Context   map[string]string
}

// IsIndirect reports whether the proxy is resolved through an adapter id.
func (p *Proxy) IsIndirect() bool {
	return p.AdapterID != ""
}

// Clone returns a deep copy of p.
func (p *Proxy) Clone() *Proxy {
	if p == nil {
		return nil
	}
	c := *p
	c.Endpoints = append([]Endpoint(nil), p.Endpoints...)
	c.Context = maps.Clone(p.Context)
	return &c
}

// WithMode returns a copy using mode m.
func (p *Proxy) WithMode(m Mode) *Proxy {
	c := p.Clone()
	c.Mode = m
	return c
}

// WithFacet returns a copy addressing facet.
func (p *Proxy) WithFacet(facet string) *Proxy {
	c := p.Clone()
	c.Facet = facet
	return c
}

// WithContext returns a copy carrying ctx as its request context.
func (p *Proxy) WithContext(ctx map[string]string) *Proxy {
	c := p.Clone()
	c.Context = maps.Clone(ctx)
	return c
}

// String renders the proxy in stringified form.
func (p *Proxy) String() string {
	if p == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(quoteIfNeeded(p.Identity.String()))
	if p.Facet != "" {
		b.WriteString(" -f ")
		b.WriteString(quoteIfNeeded(p.Facet))
	}
	b.WriteString(" ")
	b.WriteString(modeFlags[p.Mode])
	if p.Secure {
		b.WriteString(" -s")
	}
	if p.IsIndirect() {
		b.WriteString(" @ ")
		b.WriteString(quoteIfNeeded(p.AdapterID))
		return b.String()
	}
	for _, ep := range p.Endpoints {
		b.WriteString(":")
		b.WriteString(ep.String())
	}
	return b.String()
}

// ProxyFactory converts between proxies and their stringified form.
// Parsed proxies inherit the default router, locator and context.
type ProxyFactory struct {
	props *propsx.Properties
	refs  *ReferenceFactory
}

// NewProxyFactory creates a proxy factory.
func NewProxyFactory(props *propsx.Properties, refs *ReferenceFactory) *ProxyFactory {
	return &ProxyFactory{props: props, refs: refs}
}

func (f *ProxyFactory) endpointDefaults() EndpointDefaults {
	return EndpointDefaults{
		Protocol: f.props.GetPropertyWithDefault("Ice.Default.Protocol", ProtocolTCP),
		Host:     f.props.GetProperty("Ice.Default.Host"),
	}
}

const opStringToProxy = "runtimex.StringToProxy"

func proxyParseErr(s, format string, args ...any) error {
	return errors.Build(errors.CodeProxyParse).
		WithOp(opStringToProxy).
		WithMsgf("proxy %q: "+format, append([]any{s}, args...)...).
		Err()
}

// withOp reports a nested parse error under op, keeping its code and message.
func withOp(op string, err error) error {
	var e *errors.E
	if !errors.As(err, &e) {
		return errors.Wrap(errors.CodeProxyParse, op, err)
	}
	relabeled := *e
	relabeled.Op = op
	return &relabeled
}

// StringToProxy parses
//
//	identity [-f facet] [-t|-o|-O|-d|-D] [-s] (':' endpoint)*
//	identity [-f facet] [mode] [-s] '@' adapterId
//
// An empty string yields a nil proxy and no error.
func (f *ProxyFactory) StringToProxy(s string) (*Proxy, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	head, endpoints, adapterID := s, "", ""
	colon, at := indexUnquoted(s, ':'), indexUnquoted(s, '@')
	switch {
	case at >= 0 && (colon < 0 || at < colon):
		head = s[:at]
		fields, err := splitFields(s[at+1:])
		if err != nil || len(fields) != 1 || fields[0] == "" {
			return nil, proxyParseErr(s, "invalid adapter id")
		}
		adapterID = fields[0]
	case colon >= 0:
		head, endpoints = s[:colon], s[colon+1:]
	}

	fields, err := splitFields(head)
	if err != nil {
		return nil, errors.Wrapf(errors.CodeProxyParse, opStringToProxy, err, "proxy %q", s)
	}
	if len(fields) == 0 {
		return nil, proxyParseErr(s, "missing identity")
	}

	id, err := ParseIdentity(fields[0])
	if err != nil {
		return nil, withOp(opStringToProxy, err)
	}
	p := &Proxy{Identity: id, AdapterID: adapterID}

	for i := 1; i < len(fields); i++ {
		switch opt := fields[i]; opt {
		case "-f":
			if i+1 >= len(fields) {
				return nil, proxyParseErr(s, "-f needs an argument")
			}
			i++
			p.Facet = fields[i]
		case "-t":
			p.Mode = ModeTwoway
		case "-o":
			p.Mode = ModeOneway
		case "-O":
			p.Mode = ModeBatchOneway
		case "-d":
			p.Mode = ModeDatagram
		case "-D":
			p.Mode = ModeBatchDatagram
		case "-s":
			p.Secure = true
		default:
			return nil, proxyParseErr(s, "unknown option %q", opt)
		}
	}

	if colon >= 0 && adapterID == "" {
		eps, err := ParseEndpoints(endpoints, f.endpointDefaults())
		if err != nil {
			return nil, withOp(opStringToProxy, err)
		}
		if len(eps) == 0 {
			return nil, proxyParseErr(s, "no endpoints after ':'")
		}
		p.Endpoints = eps
	}

	if f.refs != nil {
		p.Router = f.refs.DefaultRouter()
		p.Locator = f.refs.DefaultLocator()
		p.Context = f.refs.DefaultContext()
	}
	return p, nil
}

// ProxyToString renders p. A nil proxy renders as the empty string.
func (f *ProxyFactory) ProxyToString(p *Proxy) string {
	return p.String()
}

// PropertyToProxy parses the proxy stored in property name. The optional
// sub-properties <name>.Router, <name>.Locator and <name>.Context.<key>
// override what the proxy inherits. An unset property yields nil.
func (f *ProxyFactory) PropertyToProxy(name string) (*Proxy, error) {
	p, err := f.StringToProxy(f.props.GetProperty(name))
	if err != nil || p == nil {
		return nil, err
	}

	if s := f.props.GetProperty(name + ".Router"); s != "" {
		if p.Router, err = f.StringToProxy(s); err != nil {
			return nil, err
		}
	}
	if s := f.props.GetProperty(name + ".Locator"); s != "" {
		if p.Locator, err = f.StringToProxy(s); err != nil {
			return nil, err
		}
	}
	ctxPrefix := name + ".Context."
	for k, v := range f.props.GetPropertiesForPrefix(ctxPrefix) {
		if p.Context == nil {
			p.Context = make(map[string]string)
		}
		p.Context[strings.TrimPrefix(k, ctxPrefix)] = v
	}
	return p, nil
}
