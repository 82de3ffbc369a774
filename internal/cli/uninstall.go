package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// NewUninstallCmd creates the uninstall command
func NewUninstallCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "uninstall",
		Short: "Remove the break reminder from the system scheduler",
		Long: `Uninstall stops the scheduled job and deletes its unit files. Your config is
kept, so a later install starts from the same settings.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.RunUninstall(cmd.Context(), cmd.OutOrStdout())
		},
	}
}

// RunUninstall removes the scheduler job
func (a *App) RunUninstall(ctx context.Context, out io.Writer) error {
	svc, err := a.service()
	if err != nil {
		return err
	}

	removed, err := svc.Uninstall(ctx)
	if err != nil {
		return err
	}
	if !removed {
		fmt.Fprintln(out, "Service is not currently installed.")
		return nil
	}

	fmt.Fprintln(out, "✓ Szmer uninstalled. No more break reminders.")
	return nil
}
