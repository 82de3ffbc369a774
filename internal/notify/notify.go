// Package notify delivers desktop notifications.
package notify

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/RevCBH/szmer/internal/runner"
)

const (
	AppName        = "szmer"
	Summary        = "Time for a Break!"
	DefaultTimeout = 5 * time.Second
)

// ErrUnsupported indicates the platform has no notification backend.
var ErrUnsupported = errors.New("notifications are not supported on this platform")

// Message is one desktop notification.
type Message struct {
	Summary string
	Body    string

	// Sound is a platform sound name; empty plays the default.
	Sound string

	Timeout time.Duration
}

// Notifier shows a notification and returns without waiting for it.
type Notifier interface {
	Send(ctx context.Context, msg Message) error
}

// New returns the notifier for goos.
func New(goos string, r runner.Runner) Notifier {
	switch goos {
	case "darwin":
		return &osascriptNotifier{runner: r}
	case "linux":
		return &dbusNotifier{appName: AppName}
	default:
		return unsupported{}
	}
}

type unsupported struct{}

func (unsupported) Send(context.Context, Message) error { return ErrUnsupported }

// Tips are the wellness suggestions shown in reminders.
var Tips = []string{
	"Stand up and walk around your office for 2-3 minutes.",
	"Drink a glass of water to stay hydrated.",
	"Do 10 shoulder rolls to release tension.",
	"Look at something far away for 20 seconds to rest your eyes.",
	"Take 5 deep breaths to reduce stress and increase oxygen flow.",
	"Stretch your arms above your head and hold for 10 seconds.",
	"Do 10 neck stretches - gently tilt your head side to side.",
	"Stand up and do 10 squats to get your blood flowing.",
	"Roll your wrists and ankles to improve circulation.",
	"Walk to get a healthy snack or refill your water bottle.",
	"Stretch your back by doing a seated twist in your chair.",
	"Stand up and shake out your arms and legs.",
	"Close your eyes and relax your facial muscles for 30 seconds.",
	"Open a window or step outside for fresh air.",
	"Massage your temples to relieve tension headaches.",
	"Straighten your posture and adjust your chair height.",
	"Do 10 arm circles forward and backward.",
}

// RandomTip picks one of Tips.
func RandomTip() string {
	return Tips[rand.Intn(len(Tips))]
}

// BreakReminder builds the reminder message. An empty body picks a random tip.
func BreakReminder(sound, body string) Message {
	if body == "" {
		body = RandomTip()
	}
	return Message{
		Summary: Summary,
		Body:    body,
		Sound:   sound,
		Timeout: DefaultTimeout,
	}
}
