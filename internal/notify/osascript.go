package notify

import (
	"context"
	"fmt"
	"strings"

	"github.com/RevCBH/szmer/internal/runner"
)

// osascriptNotifier posts through Notification Center with AppleScript.
// Notification Center decides how long the banner stays; Timeout is ignored.
type osascriptNotifier struct {
	runner runner.Runner
}

func (n *osascriptNotifier) Send(ctx context.Context, msg Message) error {
	return runner.Call(ctx, n.runner, "Failed to send notification",
		"osascript", "-e", appleScript(msg))
}

func appleScript(msg Message) string {
	script := fmt.Sprintf("display notification %s with title %s",
		quoteAppleScript(msg.Body), quoteAppleScript(msg.Summary))
	if msg.Sound != "" {
		script += " sound name " + quoteAppleScript(msg.Sound)
	}
	return script
}

var appleScriptEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

func quoteAppleScript(s string) string {
	return `"` + appleScriptEscaper.Replace(s) + `"`
}
