package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cnlutao/ice/communicator"
	"github.com/cnlutao/ice/runtimex"
)

func newProxyCmd(g *globalOptions) *cobra.Command {
	var describe bool
	cmd := &cobra.Command{
		Use:   "proxy <stringified-proxy>...",
		Short: "Parse and normalize stringified proxies",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := g.logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			comm, _, err := communicator.Initialize(cmd.Context(), g.iceArgs(nil), communicator.WithLogger(logger))
			if err != nil {
				return err
			}
			defer comm.Destroy()

			out := cmd.OutOrStdout()
			for _, s := range args {
				p, err := comm.StringToProxy(s)
				if err != nil {
					return err
				}
				normalized, err := comm.ProxyToString(p)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, normalized)
				if describe && p != nil {
					describeProxy(cmd, p)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&describe, "describe", false, "Print the parsed fields")
	return cmd
}

func describeProxy(cmd *cobra.Command, p *runtimex.Proxy) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "  identity: %s\n", p.Identity)
	if p.Facet != "" {
		fmt.Fprintf(out, "  facet: %s\n", p.Facet)
	}
	fmt.Fprintf(out, "  mode: %s\n", p.Mode)
	fmt.Fprintf(out, "  secure: %t\n", p.Secure)
	if p.IsIndirect() {
		fmt.Fprintf(out, "  adapter: %s\n", p.AdapterID)
	}
	for _, ep := range p.Endpoints {
		fmt.Fprintf(out, "  endpoint: %s\n", ep)
	}
	if p.Router != nil {
		fmt.Fprintf(out, "  router: %s\n", p.Router)
	}
	if p.Locator != nil {
		fmt.Fprintf(out, "  locator: %s\n", p.Locator)
	}
	if len(p.Context) > 0 {
		pairs := make([]string, 0, len(p.Context))
		for k, v := range p.Context {
			pairs = append(pairs, k+"="+v)
		}
		sort.Strings(pairs)
		fmt.Fprintf(out, "  context: %s\n", strings.Join(pairs, ","))
	}
}
