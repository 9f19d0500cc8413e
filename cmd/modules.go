package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/user/scanreport/pkg/modules"
)

var modulesCmd = &cobra.Command{
	Use:   "modules",
	Short: "List the registered reporting modules",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := modules.Registry()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, info := range reg.Describe() {
			fmt.Fprintf(out, "%s\n", info.Name)
			for _, t := range info.ReportTypes {
				fmt.Fprintf(out, "  type     %s\n", t)
			}
			for _, f := range info.Fragments {
				fmt.Fprintf(out, "  fragment %-32s priority %d  %q\n", f.Name, f.Priority, f.Title)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(modulesCmd)
}
