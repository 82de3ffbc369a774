package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// NewStopCmd creates the stop command
func NewStopCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Pause break reminders without uninstalling",
		Long: `Stop pauses reminders. The scheduler keeps firing but each notify exits
quietly until you run 'szmer resume'.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.RunStop(cmd.OutOrStdout())
		},
	}
}

// RunStop pauses reminders
func (a *App) RunStop(out io.Writer) error {
	svc, err := a.service()
	if err != nil {
		return err
	}

	changed, err := svc.Stop()
	if err != nil {
		return err
	}
	if !changed {
		fmt.Fprintln(out, "Break reminders are already stopped.")
		return nil
	}

	fmt.Fprintln(out, "✓ Break reminders stopped. Run 'szmer resume' to turn them back on.")
	return nil
}
