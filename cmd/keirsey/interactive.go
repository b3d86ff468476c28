package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"keirsey-sorter/internal/terminal"
)

// runInteractive administers the questionnaire until the user declines to go again.
func (a *app) runInteractive(cmd *cobra.Command, _ []string) error {
	svc, err := a.sorter()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	prompter := terminal.NewPrompter(cmd.InOrStdin(), out, terminal.Options{
		Clear: a.cfg.ClearScreen,
		Color: !a.cfg.ColorDisabled(),
	})
	prompter.SetTitle(title)

	for {
		sess, err := svc.NewSession()
		if err != nil {
			return err
		}
		prompter.Clear()

		for q, ok := sess.Next(); ok; q, ok = sess.Next() {
			answered, total := sess.Progress()
			prompter.Score(sess.Score())
			prompter.Progress(answered+1, total)

			answer, err := prompter.Ask(q)
			if err != nil {
				if errors.Is(err, terminal.ErrNoInput) {
					a.logger.Info("input closed before the questionnaire finished",
						zap.String("session_id", sess.ID),
						zap.Int("answered", answered),
					)
				}
				return fmt.Errorf("questionnaire interrupted: %w", err)
			}
			if err := sess.Record(answer); err != nil {
				return err
			}
			prompter.Clear()
		}

		res := sess.Result()
		terminal.RenderResult(out, prompter.Styles(), res)
		if a.diagnostics {
			fmt.Fprintln(out)
			terminal.RenderTallies(out, prompter.Styles(), res.Tallies)
		}

		again, err := prompter.ConfirmAgain()
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}
