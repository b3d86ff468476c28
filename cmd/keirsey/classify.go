package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"keirsey-sorter/internal/scoring"
	"keirsey-sorter/internal/terminal"
)

var ErrInvalidCode = errors.New("invalid temperament code")

func newClassifyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "classify CODE",
		Short: "Classify a four-letter temperament code",
		Long: `Classifies a code over E/I, S/N, T/F, J/P where X marks a tie.

Examples:
  keirsey classify ENFP
  keirsey classify XSFP`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := scoring.Code(strings.ToUpper(strings.TrimSpace(args[0])))
			if !code.Valid() {
				return fmt.Errorf("%w: %q", ErrInvalidCode, args[0])
			}
			terminal.RenderClassification(cmd.OutOrStdout(), a.styles(cmd), code, scoring.Classify(code))
			return nil
		},
	}
}
