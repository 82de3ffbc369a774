package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// NewResumeCmd creates the resume command
func NewResumeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "resume",
		Short: "Resume paused break reminders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.RunResume(cmd.OutOrStdout())
		},
	}
}

// RunResume un-pauses reminders
func (a *App) RunResume(out io.Writer) error {
	svc, err := a.service()
	if err != nil {
		return err
	}

	changed, err := svc.Resume()
	if err != nil {
		return err
	}
	if !changed {
		fmt.Fprintln(out, "Break reminders are already running.")
		return nil
	}

	fmt.Fprintln(out, "✓ Break reminders resumed.")
	return nil
}
