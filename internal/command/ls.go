package command

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/simplesurance/buildplus/internal/command/flag"
)

var lsCmd = &cobra.Command{
	Use:   "ls",
	Short: "list features, roles and projects",
}

func init() {
	lsCmd.AddCommand(&newLsFeaturesCmd().Command)
	lsCmd.AddCommand(&newLsRolesCmd().Command)
	lsCmd.AddCommand(&newLsProjectsCmd().Command)
	rootCmd.AddCommand(lsCmd)
}

// listVal returns vals as a slice for JSON output, otherwise as comma
// separated string.
func listVal(formatName string, vals []string) any {
	if formatName == flag.FormatJSON {
		if vals == nil {
			return []string{}
		}
		return vals
	}

	return strings.Join(vals, ", ")
}
