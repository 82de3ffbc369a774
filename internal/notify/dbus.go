package notify

import (
	"context"
	"fmt"

	"github.com/godbus/dbus/v5"
)

const (
	notificationsDest   = "org.freedesktop.Notifications"
	notificationsPath   = dbus.ObjectPath("/org/freedesktop/Notifications")
	notificationsMethod = "org.freedesktop.Notifications.Notify"
)

// dbusNotifier talks to the freedesktop notification daemon on the session bus.
type dbusNotifier struct {
	appName string
}

func (n *dbusNotifier) Send(ctx context.Context, msg Message) error {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return fmt.Errorf("connect to session bus: %w", err)
	}
	defer conn.Close()

	obj := conn.Object(notificationsDest, notificationsPath)
	call := obj.CallWithContext(ctx, notificationsMethod, 0, notifyArgs(n.appName, msg)...)
	if call.Err != nil {
		return fmt.Errorf("send notification: %w", call.Err)
	}
	return nil
}

// notifyArgs builds the Notify call arguments:
// app_name, replaces_id, app_icon, summary, body, actions, hints, expire_timeout.
func notifyArgs(appName string, msg Message) []interface{} {
	hints := map[string]dbus.Variant{}
	if msg.Sound != "" {
		hints["sound-name"] = dbus.MakeVariant(msg.Sound)
	}
	return []interface{}{
		appName,
		uint32(0),
		"",
		msg.Summary,
		msg.Body,
		[]string{},
		hints,
		int32(msg.Timeout.Milliseconds()),
	}
}
