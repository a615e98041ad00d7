package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/teeform/internal/config"
	"github.com/alexisbeaulieu97/teeform/internal/imageload"
	"github.com/alexisbeaulieu97/teeform/internal/logger"
	"github.com/alexisbeaulieu97/teeform/internal/submit"
	"github.com/alexisbeaulieu97/teeform/internal/tui"
	"github.com/alexisbeaulieu97/teeform/internal/ui/components"
)

var (
	isTerminal = func(f *os.File) bool {
		return term.IsTerminal(int(f.Fd()))
	}
	formRunner = runForm
)

var errNotTerminal = errors.New("teeform needs an interactive terminal; use `teeform submit` for scripted input")

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "teeform",
		Short:         "Design a custom T-shirt from your terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal(os.Stdout) {
				return errNotTerminal
			}

			cfg, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}
			return formRunner(cmd.Context(), cfg)
		},
	}

	flags.register(cmd)

	cmd.AddCommand(newSubmitCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func runForm(ctx context.Context, cfg *config.Config) error {
	log, closer, err := logger.NewFile(cfg.LogFilePath(), logger.Options{
		Level:         cfg.Log.Level,
		HumanReadable: cfg.Log.HumanReadable,
		Component:     "tui",
	})
	if err != nil {
		return fmt.Errorf("failed to open log: %w", err)
	}
	defer closer.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	zones := zone.New()
	defer zones.Close()

	theme, err := components.ParseThemeName(cfg.Theme)
	if err != nil {
		return err
	}

	m := tui.NewModel(tui.Options{
		Theme:     theme,
		Loader:    imageload.NewLoader(log, imageload.Options{PreviewWidth: cfg.Preview.Width}),
		Submitter: submit.NewLogSubmitter(log, cfg.Submit.Delay),
		Logger:    log,
		Zones:     zones,
		Context:   ctx,
	})

	log.WithFields(map[string]any{"theme": cfg.Theme}).Info("form opened")

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			log.Info("form interrupted")
			return nil
		}
		log.Error(err, "form execution failed")
		return fmt.Errorf("failed to run form: %w", err)
	}

	log.Info("form closed")
	return nil
}
