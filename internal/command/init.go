package command

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/simplesurance/buildplus/internal/command/term"
)

const (
	cmdInitProject = "buildplus init project"
	cmdInitRepo    = "buildplus init repo"
)

var initLongHelp = fmt.Sprintf(`
The init commands create buildplus configuration files.

To setup buildplus for the first time, run:
1.) %s

Afterwards project configuration files can be created with the
'%s' command.
`, term.Highlight(cmdInitRepo),
	term.Highlight(cmdInitProject))

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "create repository and project configuration files",
	Long:  strings.TrimSpace(initLongHelp),
}

func init() {
	initCmd.AddCommand(&newInitRepoCmd().Command)
	initCmd.AddCommand(&newInitProjectCmd().Command)
	rootCmd.AddCommand(initCmd)
}
