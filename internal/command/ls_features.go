package command

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/simplesurance/buildplus/internal/command/flag"
	"github.com/simplesurance/buildplus/internal/command/term"
)

const (
	lsFeaturesStatusAll      = "all"
	lsFeaturesStatusActive   = "active"
	lsFeaturesStatusInactive = "inactive"
)

const lsFeaturesLongHelp = `
List the built-in features and their activation state.

The activation state is the result of the activation policy and the
activate and deactivate lists in the repository configuration and the
BUILDPLUS_FEATURES and BUILDPLUS_NO_AUTO_ACTIVATE environment variables.
`

type lsFeaturesCmd struct {
	cobra.Command

	format *flag.Format
	status *flag.OneOf
	quiet  bool
}

func newLsFeaturesCmd() *lsFeaturesCmd {
	cmd := lsFeaturesCmd{
		Command: cobra.Command{
			Use:   "features",
			Short: "list features and their activation state",
			Long:  strings.TrimSpace(lsFeaturesLongHelp),
			Args:  cobra.NoArgs,
		},
		format: flag.NewFormatFlag(),
		status: flag.NewOneOfFlag(
			"status",
			lsFeaturesStatusAll,
			"only list features with the activation state",
			lsFeaturesStatusAll, lsFeaturesStatusActive, lsFeaturesStatusInactive,
		),
	}

	cmd.Run = cmd.run

	cmd.Flags().VarP(cmd.format, "format", "f", cmd.format.Usage(term.Highlight))
	cmd.Flags().Var(cmd.status, "status", cmd.status.Usage(term.Highlight))
	cmd.Flags().BoolVarP(&cmd.quiet, "quiet", "q", false,
		"Only show feature names")

	_ = cmd.format.RegisterFlagCompletion(&cmd.Command)
	_ = cmd.status.RegisterFlagCompletion(&cmd.Command)

	return &cmd
}

func (c *lsFeaturesCmd) run(_ *cobra.Command, _ []string) {
	repo := mustFindRepository()

	features, err := mustNewLoader(repo).Features()
	exitOnErr(err)

	headers := []string{"Name", "Prerequisites", "Extension Points", "State"}
	if c.quiet {
		headers = headers[:1]
	}

	formatter := newFormatter(c.format.Val, headers, c.quiet)

	for _, f := range features.Features() {
		active := features.Activated(f.Name())

		switch c.status.Value() {
		case lsFeaturesStatusActive:
			if !active {
				continue
			}
		case lsFeaturesStatusInactive:
			if active {
				continue
			}
		}

		if c.quiet {
			mustWriteRow(formatter, f.Name())
			continue
		}

		points := make([]string, 0, len(f.ExtensionPoints()))
		for _, p := range f.ExtensionPoints() {
			points = append(points, string(p))
		}

		var state any = active
		if c.format.Val == flag.FormatPlain {
			state = term.ColoredActivation(active)
		}

		mustWriteRow(formatter,
			f.Name(),
			listVal(c.format.Val, f.Prerequisites()),
			listVal(c.format.Val, points),
			state,
		)
	}

	mustFlush(formatter)
}
