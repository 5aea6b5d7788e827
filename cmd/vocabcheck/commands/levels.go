package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func levelsCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "levels",
		Short: "List the selectable vocabulary levels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, l := range c.catalog.Levels() {
				mark := " "
				if l.Name == c.defaultLevel {
					mark = "*"
				}
				fmt.Fprintf(w, "%s %s\t%s\n", mark, l.Name, l.Path)
			}
			return w.Flush()
		},
	}
}
