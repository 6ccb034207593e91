package commands

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve <profile> <application> [requests...]",
		Short: "Resolve the environment for an application without launching it",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := c.components.App.Resolve(cmd.Context(), args[0], args[1], args[2:])
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, pkg := range env.Packages {
				fmt.Fprintf(w, "%s\t%s\t%s\n", pkg.Name, pkg.Version, pkg.InstallPath)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			showEnv, _ := cmd.Flags().GetBool("env")
			if showEnv {
				names := make([]string, 0, len(env.EnvVars))
				for name := range env.EnvVars {
					names = append(names, name)
				}
				sort.Strings(names)
				for _, name := range names {
					fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", name, env.EnvVars[name])
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolP("env", "e", false, "Also print the resolved environment variables")
	return cmd
}
