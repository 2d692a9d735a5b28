package main

import (
	"fmt"
	"log/slog"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/tenant-console/internal/app"
	"github.com/jsamuelsen11/tenant-console/internal/tui"
)

const wizardCmdName = "wizard"

func newWizardCmd(e *env) *cobra.Command {
	var copyURL bool

	cmd := &cobra.Command{
		Use:     wizardCmdName,
		Aliases: []string{"new", "create"},
		Short:   "Create a tenant with the interactive provisioning wizard",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			svc := app.NewWizardService(e.directory, e.cfg.Wizard, e.logger)
			defer svc.Close()

			model := tui.New(ctx, svc, e.cfg.Wizard.BaseDomain)
			final, err := tea.NewProgram(model,
				tea.WithAltScreen(),
				tea.WithContext(ctx),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.ErrOrStderr()),
			).Run()
			if err != nil {
				return fmt.Errorf("running wizard: %w", err)
			}

			m, ok := final.(tui.Model)
			if !ok {
				return fmt.Errorf("unexpected wizard model %T", final)
			}
			if err := m.Err(); err != nil {
				return fmt.Errorf("starting wizard: %w", err)
			}
			if m.Created() == nil {
				fmt.Fprintln(cmd.ErrOrStderr(), "Wizard cancelled; no tenant was created.")
				return nil
			}
			created := m.Created()
			if copyURL {
				if err := clipboard.WriteAll(created.URL(e.cfg.Wizard.BaseDomain)); err != nil {
					e.logger.Warn("copying tenant URL failed", slog.Any("error", err))
				} else {
					fmt.Fprintln(cmd.ErrOrStderr(), "Tenant URL copied to clipboard.")
				}
			}
			return e.printer.Tenant(created)
		},
	}
	cmd.Flags().BoolVar(&copyURL, "copy-url", false, "copy the new tenant's URL to the clipboard")
	return cmd
}
