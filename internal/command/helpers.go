package command

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/simplesurance/buildplus/internal/command/flag"
	"github.com/simplesurance/buildplus/internal/command/term"
	"github.com/simplesurance/buildplus/internal/format"
	"github.com/simplesurance/buildplus/internal/format/csv"
	"github.com/simplesurance/buildplus/internal/format/jsonformat"
	"github.com/simplesurance/buildplus/internal/format/table"
	"github.com/simplesurance/buildplus/internal/log"
	"github.com/simplesurance/buildplus/pkg/buildplus"
	"github.com/simplesurance/buildplus/pkg/compose"
)

func exitOnErr(err error, msg ...any) {
	if err == nil {
		return
	}

	if len(msg) == 0 {
		stderr.ErrPrintln(err)
	} else {
		stderr.ErrPrintln(fmt.Sprint(msg...)+":", err)
	}

	exitFunc(exitCodeError)
}

func exitOnErrf(err error, format string, v ...any) {
	if err == nil {
		return
	}

	exitOnErr(err, fmt.Sprintf(format, v...))
}

func fatalf(exitCode int, format string, v ...any) {
	stderr.ErrPrintf(format, v...)
	exitFunc(exitCode)
}

func findRepository() (*buildplus.Repository, error) {
	log.Debugln("searching for repository root...")

	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	cfgPath, err := buildplus.FindRepositoryCfg(cwd)
	if err != nil {
		return nil, err
	}

	repo, err := buildplus.NewRepository(cfgPath)
	if err != nil {
		return nil, err
	}

	log.Debugf("repository root found: %s", repo.Path)

	return repo, nil
}

func mustFindRepository() *buildplus.Repository {
	repo, err := findRepository()
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			fatalf(exitCodeNotExist,
				"could not find %s repository configuration file\n"+
					"run '%s' to create one\n",
				buildplus.RepositoryCfgFile, term.Highlight(cmdInitRepo))
		}

		exitOnErr(err, "loading repository failed")
	}

	return repo
}

func mustNewLoader(repo *buildplus.Repository) *buildplus.Loader {
	env, err := buildplus.EnvFromRepository(repo.Path)
	exitOnErr(err)

	loader, err := buildplus.NewLoader(repo, env, log.StdLogger)
	exitOnErr(err)

	return loader
}

// mustLoad composes all projects of the repository.
func mustLoad(repo *buildplus.Repository) *compose.Composer {
	c, err := mustNewLoader(repo).Load()
	exitOnErr(err, "composing projects failed")

	return c
}

func mustArgToProject(c *compose.Composer, arg string) *compose.Project {
	if p, exist := c.Project(arg); exist {
		return p
	}

	var matches []*compose.Project
	for _, p := range c.Projects() {
		if p.Name == arg {
			matches = append(matches, p)
		}
	}

	switch len(matches) {
	case 0:
		fatalf(exitCodeNotExist, "project %q does not exist\n", arg)
	case 1:
		return matches[0]
	default:
		fatalf(exitCodeError, "argument %q matches multiple projects, specify the full name\n", arg)
	}

	return nil
}

func newFormatter(formatName string, headers []string, quiet bool) format.Formatter {
	switch formatName {
	case flag.FormatCSV:
		if quiet {
			headers = nil
		}

		return csv.New(headers, stdout)

	case flag.FormatJSON:
		return jsonformat.New(headers, stdout)

	default:
		if quiet {
			headers = nil
		}

		return table.New(headers, stdout)
	}
}

func mustWriteRow(fmt format.Formatter, row ...any) {
	err := fmt.WriteRow(row...)
	exitOnErr(err)
}

func mustFlush(fmt format.Formatter) {
	exitOnErr(fmt.Flush())
}

func relPath(repo *buildplus.Repository, path string) string {
	rel, err := filepath.Rel(repo.Path, path)
	if err != nil {
		return path
	}

	return rel
}
