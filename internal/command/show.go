package command

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/simplesurance/buildplus/internal/command/term"
	"github.com/simplesurance/buildplus/internal/format"
	"github.com/simplesurance/buildplus/internal/format/table"
	"github.com/simplesurance/buildplus/pkg/compose"
)

const showLongHelp = `
Show the composed configuration of a project.

The project can be specified by its name or by its full name.
The full name contains the names of all parent projects,
separated by colons.
`

const showExamples = `
buildplus show server		show the configuration of the server project
buildplus show acal:server	show the configuration of the server project of the acal repository
`

func init() {
	rootCmd.AddCommand(&newShowCmd().Command)
}

type showCmd struct {
	cobra.Command
}

func newShowCmd() *showCmd {
	cmd := showCmd{
		Command: cobra.Command{
			Use:     "show PROJECT",
			Short:   "show the composed configuration of a project",
			Args:    cobra.ExactArgs(1),
			Long:    strings.TrimSpace(showLongHelp),
			Example: strings.TrimSpace(showExamples),
		},
	}

	cmd.Run = cmd.run

	return &cmd
}

func mustWriteStringSliceRows(fmt format.Formatter, header string, indentlvl int, sl []string) {
	defRowArgs := make([]any, 0, indentlvl+1+1)

	for range indentlvl {
		defRowArgs = append(defRowArgs, "")
	}

	for i, val := range sl {
		var rowArgs []any

		if i == 0 {
			rowArgs = append(slices.Clone(defRowArgs), header)
		} else {
			rowArgs = append(slices.Clone(defRowArgs), "")
		}

		if i+1 < len(sl) {
			val += ", "
		}
		rowArgs = append(rowArgs, term.Highlight(val))

		mustWriteRow(fmt, rowArgs...)
	}
}

func mustWriteMapRows(fmt format.Formatter, header string, indentlvl int, m map[string]string) {
	kv := make([]string, 0, len(m))
	for _, k := range slices.Sorted(maps.Keys(m)) {
		kv = append(kv, k+"="+m[k])
	}

	mustWriteStringSliceRows(fmt, header, indentlvl, kv)
}

func (c *showCmd) run(_ *cobra.Command, args []string) {
	repo := mustFindRepository()
	composer := mustLoad(repo)
	p := mustArgToProject(composer, args[0])

	formatter := table.New(nil, stdout)

	mustWriteRow(formatter, "Project Name:", term.Highlight(p.Name), "", "")
	mustWriteRow(formatter, "Full Name:", term.Highlight(p.FullName()), "", "")
	mustWriteRow(formatter, "Group:", term.Highlight(p.Group), "", "")
	mustWriteRow(formatter, "Path:", term.Highlight(relPath(repo, p.Dir)), "", "")
	mustWriteRow(formatter, "Publish:", term.Highlight(p.Publish), "", "")
	mustWriteStringSliceRows(formatter, "Roles:", 0, p.Roles())
	mustWriteStringSliceRows(formatter, "Extensions:", 0, p.Attachments())
	mustWriteStringSliceRows(formatter, "Source Dirs:", 0, p.SourceDirs)
	mustWriteStringSliceRows(formatter, "Resource Dirs:", 0, p.ResourceDirs)
	mustWriteStringSliceRows(formatter, "Generated Source Dirs:", 0, p.GeneratedSourceDirs)

	if steps := p.Steps(); len(steps) > 0 {
		mustWriteRow(formatter, "", "", "", "")
		mustWriteStringSliceRows(formatter, "Steps:", 0, steps)
	}

	c.writeDeps(formatter, p)
	c.writePackages(formatter, p)
	c.writeTasks(formatter, p)
	c.writeIDE(formatter, p)

	mustFlush(formatter)
}

func (*showCmd) writeDeps(formatter format.Formatter, p *compose.Project) {
	compileDeps := p.Deps(compose.ScopeCompile)
	testDeps := p.Deps(compose.ScopeTest)

	if len(compileDeps) == 0 && len(testDeps) == 0 {
		return
	}

	mustWriteRow(formatter, "", "", "", "")
	mustWriteRow(formatter, term.Underline("Dependencies"), "", "", "")
	mustWriteStringSliceRows(formatter, "Compile:", 1, compileDeps)
	mustWriteStringSliceRows(formatter, "Test:", 1, testDeps)
}

func (*showCmd) writePackages(formatter format.Formatter, p *compose.Project) {
	for _, pkg := range p.Packages() {
		mustWriteRow(formatter, "", "", "", "")
		mustWriteRow(formatter, term.Underline("Package"), "", "", "")
		mustWriteRow(formatter, "", "Type:", term.Highlight(pkg.Type), "")
		mustWriteStringSliceRows(formatter, "Libs:", 1, pkg.Libs)

		includes := make([]string, 0, len(pkg.Includes))
		for _, inc := range pkg.Includes {
			if inc.As == "" {
				includes = append(includes, inc.Path)
				continue
			}

			includes = append(includes, fmt.Sprintf("%s as %s", inc.Path, inc.As))
		}
		mustWriteStringSliceRows(formatter, "Includes:", 1, includes)
	}
}

func (*showCmd) writeTasks(formatter format.Formatter, p *compose.Project) {
	for _, task := range p.Tasks() {
		mustWriteRow(formatter, "", "", "", "")
		mustWriteRow(formatter, term.Underline("Task"), "", "", "")
		mustWriteRow(formatter, "", "Name:", term.Highlight(task.Name), "")
		mustWriteRow(formatter, "", "Type:", term.Highlight(task.Type), "")
		mustWriteStringSliceRows(formatter, "Targets:", 1, task.Targets)
		mustWriteStringSliceRows(formatter, "Java Args:", 1, task.JavaArgs)
		mustWriteStringSliceRows(formatter, "Dependencies:", 1, task.Dependencies)
		mustWriteMapRows(formatter, "Options:", 1, task.Options)
	}
}

func (*showCmd) writeIDE(formatter format.Formatter, p *compose.Project) {
	ide := p.IDE()

	if len(ide.Facets) == 0 && len(ide.Components) == 0 && len(ide.CodeInsightExcludes) == 0 {
		return
	}

	mustWriteRow(formatter, "", "", "", "")
	mustWriteRow(formatter, term.Underline("IDE"), "", "", "")
	mustWriteStringSliceRows(formatter, "Components:", 1, ide.Components)
	mustWriteStringSliceRows(formatter, "Code Insight Excludes:", 1, ide.CodeInsightExcludes)

	if ide.NullableManager {
		mustWriteRow(formatter, "", "Nullable Manager:", term.Highlight(ide.NullableManager), "")
	}

	for _, f := range ide.Facets {
		mustWriteRow(formatter, "", "Facet:", term.Highlight(f.Type), "")
		mustWriteMapRows(formatter, "Settings:", 2, f.Settings)
		mustWriteStringSliceRows(formatter, "Modules:", 2, slices.Sorted(maps.Keys(f.Modules)))
	}
}
