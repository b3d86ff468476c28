package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"keirsey-sorter/internal/config"
	"keirsey-sorter/internal/domain"
	"keirsey-sorter/internal/questionnaire"
	"keirsey-sorter/internal/service"
	"keirsey-sorter/internal/terminal"
)

const title = "Keirsey Temperament Sorter"

// app holds flag values and the wiring shared by every command.
type app struct {
	cfg    *config.Config
	logger *zap.Logger

	questionsPath  string
	categoriesPath string
	verbose        bool
	noClear        bool
	noColor        bool
	diagnostics    bool
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:          "keirsey",
		Short:        title,
		Long:         "Answers a forced-choice questionnaire and sorts you into one of four temperaments.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		RunE: a.runInteractive,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.questionsPath, "questions", "", "questionnaire JSON file (default: built-in)")
	flags.StringVar(&a.categoriesPath, "categories", "", "category descriptions YAML file (default: built-in)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	flags.BoolVar(&a.noClear, "no-clear", false, "do not clear the screen between questions")
	flags.BoolVar(&a.noColor, "no-color", false, "disable colored output")
	flags.BoolVar(&a.diagnostics, "diagnostics", false, "print the facet tallies with the result")

	root.AddCommand(newScoreCmd(a), newClassifyCmd(a))
	return root
}

// init loads configuration and builds the logger. Flags win over environment.
func (a *app) init() error {
	if a.cfg == nil {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		a.cfg = cfg
	}
	if a.questionsPath != "" {
		a.cfg.QuestionsPath = a.questionsPath
	}
	if a.categoriesPath != "" {
		a.cfg.CategoriesPath = a.categoriesPath
	}
	if a.noClear {
		a.cfg.ClearScreen = false
	}
	if a.noColor {
		a.cfg.NoColor = "1"
	}

	if a.logger == nil {
		logger, err := newLogger(a.cfg.LogLevel, a.verbose)
		if err != nil {
			return err
		}
		a.logger = logger
	}
	return nil
}

func newLogger(level string, verbose bool) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	if verbose {
		lvl = zapcore.DebugLevel
	}
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	return zcfg.Build()
}

// sorter loads the questionnaire and category texts, falling back to the
// embedded defaults when no path is configured.
func (a *app) sorter() (*service.SorterService, error) {
	var (
		q   domain.Questionnaire
		err error
	)
	if a.cfg.QuestionsPath != "" {
		q, err = questionnaire.Load(a.cfg.QuestionsPath)
	} else {
		q, err = questionnaire.Default()
	}
	if err != nil {
		return nil, err
	}

	var texts domain.CategoryTexts
	if a.cfg.CategoriesPath != "" {
		texts, err = questionnaire.LoadCategories(a.cfg.CategoriesPath)
	} else {
		texts, err = questionnaire.DefaultCategories()
	}
	if err != nil {
		return nil, err
	}

	a.logger.Debug("questionnaire loaded",
		zap.Int("questions", len(q.Questions)),
		zap.String("questions_path", a.cfg.QuestionsPath),
		zap.String("categories_path", a.cfg.CategoriesPath),
	)
	return service.NewSorterService(q, texts, a.logger), nil
}

func (a *app) styles(cmd *cobra.Command) terminal.Styles {
	return terminal.NewStyles(cmd.OutOrStdout(), !a.cfg.ColorDisabled())
}
