package command

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/simplesurance/buildplus/internal/command/term"
	"github.com/simplesurance/buildplus/internal/fs"
	"github.com/simplesurance/buildplus/pkg/buildplus"
	"github.com/simplesurance/buildplus/pkg/cfg"
)

const initRepoLongHelp = `
Create a new repository configuration file.
This is the first command that should be run when setting up buildplus for a new repository.
If no argument is passed, the file is created in the current directory.
The name of the root project defaults to the name of the directory.
`

type initRepoCmd struct {
	cobra.Command

	name string
}

func newInitRepoCmd() *initRepoCmd {
	cmd := initRepoCmd{
		Command: cobra.Command{
			Use:   "repo [DIR]",
			Short: "create a repository config file",
			Long:  strings.TrimSpace(initRepoLongHelp),
			Args:  cobra.MaximumNArgs(1),
		},
	}

	cmd.Run = cmd.run
	cmd.Flags().StringVarP(&cmd.name, "name", "n", "", "name of the root project")

	return &cmd
}

func (c *initRepoCmd) run(_ *cobra.Command, args []string) {
	var repoDir string
	var err error

	if len(args) == 1 {
		repoDir, err = filepath.Abs(args[0])
	} else {
		repoDir, err = os.Getwd()
	}
	exitOnErr(err)

	name := c.name
	if name == "" {
		name = filepath.Base(repoDir)
	}

	repoCfg := cfg.ExampleRepository(name)
	repoCfgPath := filepath.Join(repoDir, buildplus.RepositoryCfgFile)

	if err := repoCfg.Validate(); err != nil {
		exitOnErrf(err, "can not use %q as root project name", name)
	}

	if fs.FileExists(repoCfgPath) {
		fatalf(exitCodeAlreadyExist, "%s already exist\n", repoCfgPath)
	}

	err = repoCfg.ToFile(repoCfgPath)
	exitOnErr(err)

	stdout.Printf("Repository configuration was written to %s\n",
		term.Highlight(repoCfgPath))
	stdout.Printf("\nNext Steps:\n"+
		"1. Adapt your '%s' configuration file, ensure the '%s' parameter is correct\n"+
		"2. Run '%s' to create project configuration files\n",
		term.Highlight(buildplus.RepositoryCfgFile),
		term.Highlight("Root.group"),
		term.Highlight(cmdInitProject))
}
