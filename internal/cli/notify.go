package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/RevCBH/szmer/internal/reminder"
)

// NotifyOptions holds flags for the notify command
type NotifyOptions struct {
	Message string
	Force   bool
}

// NewNotifyCmd creates the notify command
func NewNotifyCmd(app *App) *cobra.Command {
	opts := NotifyOptions{}

	cmd := &cobra.Command{
		Use:   "notify",
		Short: "Send a break reminder now (run by the scheduler)",
		Long: `Notify is what the scheduler runs on every tick. It does nothing while
reminders are stopped, or while Timewarrior integration is on and no session
is being tracked. Otherwise it shows a break reminder with a random tip.

Examples:
  szmer notify --force                    # Test notification
  szmer notify --force --message "Stand up"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.RunNotify(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Message, "message", "m", "", "Use this text instead of a random tip")
	cmd.Flags().BoolVarP(&opts.Force, "force", "f", false, "Send even when stopped or not tracking")

	return cmd
}

// RunNotify sends one reminder. Skips are silent on stdout; the scheduler
// discards it anyway.
func (a *App) RunNotify(ctx context.Context, out io.Writer, opts NotifyOptions) error {
	svc, err := a.service()
	if err != nil {
		return err
	}

	outcome, err := svc.Notify(ctx, reminder.NotifyRequest{
		Message: opts.Message,
		Force:   opts.Force,
	})
	if err != nil {
		return err
	}

	a.log().Debug("notify finished", "outcome", outcome)
	if outcome == reminder.Sent && opts.Force {
		fmt.Fprintln(out, "✓ Notification sent.")
	}
	return nil
}
