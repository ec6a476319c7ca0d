package command

import (
	"github.com/spf13/cobra"

	"github.com/simplesurance/buildplus/internal/command/flag"
	"github.com/simplesurance/buildplus/internal/command/term"
)

type lsRolesCmd struct {
	cobra.Command

	format *flag.Format
}

func newLsRolesCmd() *lsRolesCmd {
	cmd := lsRolesCmd{
		Command: cobra.Command{
			Use:   "roles",
			Short: "list roles and the projects that have them",
			Args:  cobra.NoArgs,
		},
		format: flag.NewFormatFlag(),
	}

	cmd.Run = cmd.run

	cmd.Flags().VarP(cmd.format, "format", "f", cmd.format.Usage(term.Highlight))
	_ = cmd.format.RegisterFlagCompletion(&cmd.Command)

	return &cmd
}

func (c *lsRolesCmd) run(_ *cobra.Command, _ []string) {
	repo := mustFindRepository()
	composer := mustLoad(repo)

	formatter := newFormatter(c.format.Val, []string{"Name", "Projects"}, false)

	for _, role := range composer.Roles() {
		var projects []string
		for _, p := range composer.ProjectsWithRole(role.Name) {
			projects = append(projects, p.FullName())
		}

		mustWriteRow(formatter, role.Name, listVal(c.format.Val, projects))
	}

	mustFlush(formatter)
}
