package command

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/simplesurance/buildplus/internal/command/flag"
	"github.com/simplesurance/buildplus/internal/command/term"
	"github.com/simplesurance/buildplus/pkg/buildplus"
	"github.com/simplesurance/buildplus/pkg/compose"
)

const (
	lsProjectsNameHeader    = "Name"
	lsProjectsNameParam     = "name"
	lsProjectsPathHeader    = "Path"
	lsProjectsPathParam     = "path"
	lsProjectsRolesHeader   = "Roles"
	lsProjectsRolesParam    = "roles"
	lsProjectsStepsHeader   = "Steps"
	lsProjectsStepsParam    = "steps"
	lsProjectsPublishHeader = "Publish"
	lsProjectsPublishParam  = "publish"
)

const lsProjectsExample = `
buildplus ls projects                   list all projects
buildplus ls projects --role gwt        list projects that have the gwt role
buildplus ls projects -f json -F name   list the names of all projects in JSON format`

type lsProjectsCmd struct {
	cobra.Command

	format   *flag.Format
	fields   *flag.Fields
	role     string
	quiet    bool
	absPaths bool
}

func newLsProjectsCmd() *lsProjectsCmd {
	cmd := lsProjectsCmd{
		Command: cobra.Command{
			Use:     "projects",
			Short:   "list composed projects in definition order",
			Example: strings.TrimSpace(lsProjectsExample),
			Args:    cobra.NoArgs,
		},
		format: flag.NewFormatFlag(),
		fields: flag.NewFields([]string{
			lsProjectsNameParam,
			lsProjectsPathParam,
			lsProjectsRolesParam,
			lsProjectsStepsParam,
			lsProjectsPublishParam,
		}),
	}

	// steps and publish are only shown when requested
	cmd.fields.Fields = cmd.fields.Fields[:3]

	cmd.Run = cmd.run

	cmd.Flags().VarP(cmd.format, "format", "f", cmd.format.Usage(term.Highlight))
	cmd.Flags().VarP(cmd.fields, "fields", "F", cmd.fields.Usage(term.Highlight))
	cmd.Flags().StringVar(&cmd.role, "role", "", "only list projects that have the role")
	cmd.Flags().BoolVarP(&cmd.quiet, "quiet", "q", false, "do not print a header")
	cmd.Flags().BoolVar(&cmd.absPaths, "abs-path", false, "show absolute instead of relative paths")

	_ = cmd.format.RegisterFlagCompletion(&cmd.Command)

	return &cmd
}

func (c *lsProjectsCmd) headers() []string {
	headers := make([]string, 0, len(c.fields.Fields))

	for _, f := range c.fields.Fields {
		switch f {
		case lsProjectsNameParam:
			headers = append(headers, lsProjectsNameHeader)
		case lsProjectsPathParam:
			headers = append(headers, lsProjectsPathHeader)
		case lsProjectsRolesParam:
			headers = append(headers, lsProjectsRolesHeader)
		case lsProjectsStepsParam:
			headers = append(headers, lsProjectsStepsHeader)
		case lsProjectsPublishParam:
			headers = append(headers, lsProjectsPublishHeader)
		default:
			panic(fmt.Sprintf("unsupported value %q in fields parameter", f))
		}
	}

	return headers
}

func (c *lsProjectsCmd) run(_ *cobra.Command, _ []string) {
	repo := mustFindRepository()
	composer := mustLoad(repo)

	projects := composer.Projects()
	if c.role != "" {
		projects = composer.ProjectsWithRole(c.role)
	}

	formatter := newFormatter(c.format.Val, c.headers(), c.quiet)

	for _, p := range projects {
		if p.IsRoot() {
			continue
		}

		mustWriteRow(formatter, c.assembleRow(repo, p)...)
	}

	mustFlush(formatter)
}

func (c *lsProjectsCmd) assembleRow(repo *buildplus.Repository, p *compose.Project) []any {
	row := make([]any, 0, len(c.fields.Fields))

	for _, f := range c.fields.Fields {
		switch f {
		case lsProjectsNameParam:
			row = append(row, p.FullName())

		case lsProjectsPathParam:
			if c.absPaths {
				row = append(row, p.Dir)
			} else {
				row = append(row, relPath(repo, p.Dir))
			}

		case lsProjectsRolesParam:
			row = append(row, listVal(c.format.Val, p.Roles()))

		case lsProjectsStepsParam:
			row = append(row, listVal(c.format.Val, p.Steps()))

		case lsProjectsPublishParam:
			row = append(row, p.Publish)
		}
	}

	return row
}
