package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cnlutao/ice/propsx"
	"github.com/cnlutao/ice/propsx/schema"
)

type validateOptions struct {
	strict    bool
	envPrefix string
}

func newValidateCmd(g *globalOptions) *cobra.Command {
	o := &validateOptions{}
	cmd := &cobra.Command{
		Use:   "validate [-- --Ice.Key=value ...]",
		Short: "Report unknown and deprecated properties",
		Long: `Builds the property set the way a communicator would (config files,
then command-line options) and checks every key under a reserved prefix
against the known property names.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, g, o, args)
		},
	}
	cmd.Flags().BoolVar(&o.strict, "strict", false, "Exit non-zero when a problem is found")
	cmd.Flags().StringVar(&o.envPrefix, "env-prefix", "", "Also read properties from environment variables with this prefix")
	return cmd
}

func runValidate(cmd *cobra.Command, g *globalOptions, o *validateOptions, args []string) error {
	props, _, err := propsx.NewProperties(g.iceArgs(args), nil)
	if err != nil {
		return err
	}
	if o.envPrefix != "" {
		if err := props.Load(cmd.Context(), propsx.NewEnvSource(propsx.EnvOptions{Prefix: o.envPrefix})); err != nil {
			return err
		}
	}

	keys := props.Keys()
	results := schema.ValidateAll(keys)
	out := cmd.OutOrStdout()
	for _, r := range results {
		switch {
		case r.Deprecated && r.Replacement != "":
			fmt.Fprintf(out, "deprecated property: %s (use %s)\n", r.Key, r.Replacement)
		case r.Deprecated:
			fmt.Fprintf(out, "deprecated property: %s\n", r.Key)
		default:
			fmt.Fprintf(out, "unknown property: %s\n", r.Key)
		}
	}
	fmt.Fprintf(out, "%d properties checked, %d problem(s)\n", len(keys), len(results))

	if o.strict && len(results) > 0 {
		return fmt.Errorf("%d property problem(s) found", len(results))
	}
	return nil
}
