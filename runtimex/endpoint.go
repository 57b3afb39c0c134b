package runtimex

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cnlutao/ice/core/errors"
)

// Endpoint protocols.
const (
	ProtocolTCP = "tcp"
	ProtocolUDP = "udp"
	ProtocolSSL = "ssl"
)

// Endpoint is a parsed transport address. Timeout is in milliseconds; -1 means none.
type Endpoint struct {
	Protocol string
	Host     string
	Port     int
	Timeout  int
	Compress bool
}

// EndpointDefaults fill in what an endpoint string leaves out.
type EndpointDefaults struct {
	Protocol string // used for the "default" protocol keyword
	Host     string
}

// ParseEndpoint parses "tcp|udp|ssl|default [-h host] [-p port] [-t timeout] [-z]".
func ParseEndpoint(s string, defaults EndpointDefaults) (Endpoint, error) {
	fields, err := splitFields(s)
	if err != nil {
		return Endpoint{}, errors.Wrapf(errors.CodeEndpointParse, opParseEndpoint, err, "endpoint %q", s)
	}
	if len(fields) == 0 {
		return Endpoint{}, endpointParseErr(s, "empty endpoint")
	}

	ep := Endpoint{Protocol: fields[0], Host: defaults.Host, Timeout: -1}
	if ep.Protocol == "default" {
		ep.Protocol = defaults.Protocol
		if ep.Protocol == "" {
			ep.Protocol = ProtocolTCP
		}
	}
	switch ep.Protocol {
	case ProtocolTCP, ProtocolUDP, ProtocolSSL:
	default:
		return Endpoint{}, endpointParseErr(s, "unknown protocol %q", ep.Protocol)
	}

	for i := 1; i < len(fields); i++ {
		opt := fields[i]
		needArg := func() (string, error) {
			if i+1 >= len(fields) || isOption(fields[i+1]) {
				return "", endpointParseErr(s, "option %s needs an argument", opt)
			}
			i++
			return fields[i], nil
		}

		switch opt {
		case "-h":
			v, err := needArg()
			if err != nil {
				return Endpoint{}, err
			}
			ep.Host = v
		case "-p":
			v, err := needArg()
			if err != nil {
				return Endpoint{}, err
			}
			port, perr := strconv.Atoi(v)
			if perr != nil || port < 0 || port > 65535 {
				return Endpoint{}, endpointParseErr(s, "invalid port %q", v)
			}
			ep.Port = port
		case "-t":
			if ep.Protocol == ProtocolUDP {
				return Endpoint{}, endpointParseErr(s, "udp endpoints have no timeout")
			}
			v, err := needArg()
			if err != nil {
				return Endpoint{}, err
			}
			t, terr := strconv.Atoi(v)
			if terr != nil || t < -1 || t == 0 {
				return Endpoint{}, endpointParseErr(s, "invalid timeout %q", v)
			}
			ep.Timeout = t
		case "-z":
			ep.Compress = true
		default:
			return Endpoint{}, endpointParseErr(s, "unknown option %q", opt)
		}
	}
	return ep, nil
}

const opParseEndpoint = "runtimex.ParseEndpoint"

func endpointParseErr(s, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	if s != "" {
		msg = fmt.Sprintf("endpoint %q: %s", s, msg)
	}
	return errors.Build(errors.CodeEndpointParse).WithOp(opParseEndpoint).WithMsgf("%s", msg).Err()
}

// isOption reports whether field is a flag rather than a value. Negative
// numbers such as "-1" are values.
func isOption(field string) bool {
	if !strings.HasPrefix(field, "-") {
		return false
	}
	_, err := strconv.Atoi(field)
	return err != nil
}

// ParseEndpoints parses a ':'-separated endpoint list.
func ParseEndpoints(s string, defaults EndpointDefaults) ([]Endpoint, error) {
	var eps []Endpoint
	for _, part := range splitUnquoted(s, ':') {
		if strings.TrimSpace(part) == "" {
			continue
		}
		ep, err := ParseEndpoint(part, defaults)
		if err != nil {
			return nil, err
		}
		eps = append(eps, ep)
	}
	return eps, nil
}

// String renders the endpoint in the form ParseEndpoint accepts.
func (e Endpoint) String() string {
	var b strings.Builder
	b.WriteString(e.Protocol)
	if e.Host != "" {
		b.WriteString(" -h ")
		b.WriteString(quoteIfNeeded(e.Host))
	}
	b.WriteString(" -p ")
	b.WriteString(strconv.Itoa(e.Port))
	if e.Timeout > 0 {
		b.WriteString(" -t ")
		b.WriteString(strconv.Itoa(e.Timeout))
	}
	if e.Compress {
		b.WriteString(" -z")
	}
	return b.String()
}
