package runtimex

import (
	"github.com/cnlutao/ice/propsx"
)

// TraceConfig holds the Ice.Trace.* levels.
type TraceConfig struct {
	Network  int `prop:"Network" validate:"gte=0"`
	Protocol int `prop:"Protocol" validate:"gte=0"`
	Retry    int `prop:"Retry" validate:"gte=0"`
	Location int `prop:"Location" validate:"gte=0"`
	Slicing  int `prop:"Slicing" validate:"gte=0"`
	GC       int `prop:"GC" validate:"gte=0"`
}

// Enabled reports whether any trace category is on.
func (t TraceConfig) Enabled() bool {
	return t.Network > 0 || t.Protocol > 0 || t.Retry > 0 || t.Location > 0 || t.Slicing > 0 || t.GC > 0
}

// Config is the subset of runtime properties the instance acts on.
type Config struct {
	ProgramName           string      `prop:"Ice.ProgramName"`
	MessageSizeMax        int         `prop:"Ice.MessageSizeMax" default:"1024" validate:"gte=1"`
	WarnUnknownProperties bool        `prop:"Ice.Warn.UnknownProperties" default:"1"`
	DefaultRouter         string      `prop:"Ice.Default.Router"`
	DefaultLocator        string      `prop:"Ice.Default.Locator"`
	DefaultHost           string      `prop:"Ice.Default.Host"`
	DefaultProtocol       string      `prop:"Ice.Default.Protocol" default:"tcp" validate:"oneof=tcp udp ssl"`
	PrintProcessId        bool        `prop:"Ice.PrintProcessId"`
	InitPlugins           bool        `prop:"Ice.InitPlugins" default:"1"`
	PluginLoadOrder       []string    `prop:"Ice.PluginLoadOrder"`
	BatchAutoFlush        bool        `prop:"Ice.BatchAutoFlush" default:"1"`
	Trace                 TraceConfig `prop:"Ice.Trace"`
}

// LoadConfig binds and validates Config from props.
func LoadConfig(props *propsx.Properties) (Config, error) {
	var cfg Config
	if err := propsx.Bind(props, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
