package propsx

import (
	"context"
	"os"
	"strings"
)

// ConfigEnv names the environment variable consulted when no --Ice.Config option is given.
const ConfigEnv = "ICE_CONFIG"

// NewProperties builds the property set a communicator starts from:
// a copy of defaults, then the files named by --Ice.Config (or $ICE_CONFIG),
// then "--Ice.*" command-line overrides. It returns the arguments it did not consume.
func NewProperties(args []string, defaults *Properties) (*Properties, []string, error) {
	return newProperties(context.Background(), args, defaults, os.Getenv)
}

func newProperties(ctx context.Context, args []string, defaults *Properties, getenv func(string) string) (*Properties, []string, error) {
	props := New()
	if defaults != nil {
		props = defaults.Clone()
	}

	configs, ok := configOption(args)
	if !ok {
		configs = getenv(ConfigEnv)
	}
	if configs != "" && configs != "1" {
		for _, path := range strings.Split(configs, ",") {
			path = strings.TrimSpace(path)
			if path == "" {
				continue
			}
			if err := props.Load(ctx, NewFileSource(path, FileOptions{})); err != nil {
				return nil, args, err
			}
		}
		props.SetProperty("Ice.Config", configs)
	}

	rest := props.ParseCommandLineOptions("Ice", args)
	return props, rest, nil
}

// configOption returns the last --Ice.Config value found in args.
func configOption(args []string) (string, bool) {
	var (
		value string
		found bool
	)
	for _, arg := range args {
		switch {
		case arg == "--Ice.Config":
			value, found = "1", true
		case strings.HasPrefix(arg, "--Ice.Config="):
			value, found = strings.TrimPrefix(arg, "--Ice.Config="), true
		}
	}
	return value, found
}
