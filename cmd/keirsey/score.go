package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"keirsey-sorter/internal/terminal"
)

func newScoreCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "score ANSWERS...",
		Short: "Score a recorded answer string",
		Long: `Scores answers given as A/B letters, one per question in questionnaire order.
Spaces are ignored, so answers can be grouped by facet block.

Example:
  keirsey score ABBBBBB ABBBBBB`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.sorter()
			if err != nil {
				return err
			}
			res, err := svc.ScoreAnswers(strings.Join(args, ""))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			styles := a.styles(cmd)
			terminal.RenderResult(out, styles, res)
			if a.diagnostics {
				fmt.Fprintln(out)
				terminal.RenderTallies(out, styles, res.Tallies)
			}
			return nil
		},
	}
}
