package command

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/simplesurance/buildplus/internal/command/term"
	"github.com/simplesurance/buildplus/internal/fs"
	"github.com/simplesurance/buildplus/pkg/buildplus"
	"github.com/simplesurance/buildplus/pkg/cfg"
	"github.com/simplesurance/buildplus/pkg/compose"
	"github.com/simplesurance/buildplus/pkg/feature"
)

const initProjectLongHelp = `
Create a project config file in the current directory.
If no name is passed, the project name will be the name of the current directory.`

const initProjectExample = `
buildplus init project -r model model		create a project config for a model project
buildplus init project -r shared,gwt		create a project config with the shared and gwt roles`

type initProjectCmd struct {
	cobra.Command

	roles []string
}

func newInitProjectCmd() *initProjectCmd {
	cmd := initProjectCmd{
		Command: cobra.Command{
			Use:     "project [PROJECT-NAME]",
			Short:   "create a project config file in the current directory",
			Long:    strings.TrimSpace(initProjectLongHelp),
			Example: strings.TrimSpace(initProjectExample),
			Args:    cobra.MaximumNArgs(1),
		},
		roles: []string{buildplus.RoleServer},
	}

	cmd.Run = cmd.run
	cmd.Flags().StringSliceVarP(&cmd.roles, "role", "r", cmd.roles, "roles of the project")

	_ = cmd.RegisterFlagCompletionFunc("role", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return mustBuiltinRoles(), cobra.ShellCompDirectiveNoFileComp
	})

	return &cmd
}

func mustBuiltinRoles() []string {
	c := compose.New(feature.NewRegistry())
	exitOnErr(buildplus.RegisterRoles(c, nil))

	roles := make([]string, 0, len(c.Roles()))
	for _, r := range c.Roles() {
		roles = append(roles, r.Name)
	}

	return roles
}

func (c *initProjectCmd) run(_ *cobra.Command, args []string) {
	var name string

	mustFindRepository()

	cwd, err := os.Getwd()
	exitOnErr(err)

	if len(args) > 0 {
		name = args[0]
	} else {
		name = filepath.Base(cwd)
	}

	builtin := mustBuiltinRoles()
	for _, r := range c.roles {
		if !slices.Contains(builtin, r) {
			fatalf(exitCodeError, "role %q does not exist, supported roles: %s\n",
				r, strings.Join(builtin, ", "))
		}
	}

	projectCfg := cfg.Project{
		Name:  name,
		Roles: c.roles,
	}

	if err := projectCfg.Validate(); err != nil {
		exitOnErr(err, "invalid project configuration")
	}

	cfgPath := filepath.Join(cwd, buildplus.ProjectCfgFile)
	if fs.FileExists(cfgPath) {
		fatalf(exitCodeAlreadyExist, "%s already exist\n", buildplus.ProjectCfgFile)
	}

	err = projectCfg.ToFile(cfgPath)
	exitOnErr(err)

	stdout.Printf("Project configuration file was written to %s\n",
		term.Highlight(buildplus.ProjectCfgFile))
}
