package commands

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func (c *CLI) newAppsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "apps <profile>",
		Short: "List the applications of a profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			apps, err := c.components.App.Applications(args[0])
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, a := range apps {
				label := a.Label
				if label == "" {
					label = a.Name.String()
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", a.Name, label, strings.Join(a.Command, " "))
			}
			return w.Flush()
		},
	}
}
