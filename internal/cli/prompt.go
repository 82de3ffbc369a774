package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/RevCBH/szmer/internal/cli/picker"
)

// ErrNoTerminal is returned when a choice needs a prompt but stdin is not
// a terminal.
var ErrNoTerminal = errors.New("not running in a terminal")

// Prompter asks the install questions.
type Prompter interface {
	// PickInterval returns the reminder interval in minutes.
	PickInterval(ctx context.Context) (int, error)

	// PickSound returns a sound from sounds, or "" for the system default.
	PickSound(ctx context.Context, sounds []string) (string, error)

	// ConfirmTracking asks whether to gate reminders on Timewarrior.
	ConfirmTracking(timewPath string) (bool, error)
}

type intervalPreset struct {
	Name    string
	Minutes int
}

var intervalPresets = []intervalPreset{
	{"Eye Saver", 20},
	{"Pomodoro Focus", 25},
	{"Answer to Everything", 42},
	{"Standard Hour", 60},
	{"Deep Work", 90},
	{"The Numbers", 108},
}

const (
	defaultPreset = 3

	MinCustomMinutes = 1
	MaxCustomMinutes = 1440

	customValue = "custom"
)

func intervalItems() []picker.Item {
	items := make([]picker.Item, 0, len(intervalPresets)+1)
	for _, p := range intervalPresets {
		items = append(items, picker.Item{
			Label:  p.Name,
			Detail: fmt.Sprintf("%d minutes", p.Minutes),
			Value:  strconv.Itoa(p.Minutes),
		})
	}
	return append(items, picker.Item{
		Label:  "Custom",
		Detail: fmt.Sprintf("%d-%d minutes", MinCustomMinutes, MaxCustomMinutes),
		Value:  customValue,
	})
}

const systemDefaultSound = "System default"

func soundItems(sounds []string) []picker.Item {
	items := []picker.Item{{Label: systemDefaultSound}}
	for _, s := range sounds {
		items = append(items, picker.Item{Label: s, Value: s})
	}
	return items
}

// parseMinutes accepts a whole number of minutes in the custom range.
func parseMinutes(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%q is not a whole number of minutes", s)
	}
	if n < MinCustomMinutes || n > MaxCustomMinutes {
		return 0, fmt.Errorf("interval must be between %d and %d minutes", MinCustomMinutes, MaxCustomMinutes)
	}
	return n, nil
}

// termPrompter runs bubbletea pickers and survey questions on the terminal.
type termPrompter struct {
	in  io.Reader
	out io.Writer
}

func (p *termPrompter) PickInterval(ctx context.Context) (int, error) {
	item, err := picker.Run(ctx, "How often should szmer remind you?", intervalItems(), defaultPreset, p.in, p.out)
	if err != nil {
		return 0, err
	}
	if item.Value != customValue {
		return strconv.Atoi(item.Value)
	}

	var answer string
	prompt := &survey.Input{
		Message: fmt.Sprintf("Interval in minutes (%d-%d):", MinCustomMinutes, MaxCustomMinutes),
	}
	validate := func(ans interface{}) error {
		_, err := parseMinutes(fmt.Sprint(ans))
		return err
	}
	if err := survey.AskOne(prompt, &answer, survey.WithValidator(validate), p.stdio()); err != nil {
		return 0, cancelled(err)
	}
	return parseMinutes(answer)
}

func (p *termPrompter) PickSound(ctx context.Context, sounds []string) (string, error) {
	item, err := picker.Run(ctx, "Which sound should play?", soundItems(sounds), 0, p.in, p.out)
	if err != nil {
		return "", err
	}
	return item.Value, nil
}

func (p *termPrompter) ConfirmTracking(timewPath string) (bool, error) {
	var enabled bool
	prompt := &survey.Confirm{
		Message: fmt.Sprintf("Timewarrior found at %s. Only remind while it is tracking time?", timewPath),
		Help:    "Reminders are skipped while no Timewarrior session is open.",
		Default: false,
	}
	if err := survey.AskOne(prompt, &enabled, p.stdio()); err != nil {
		return false, cancelled(err)
	}
	return enabled, nil
}

// stdio hands survey the same streams as the pickers. survey needs real
// files; anything else falls back to the process streams.
func (p *termPrompter) stdio() survey.AskOpt {
	in, ok := p.in.(terminal.FileReader)
	if !ok {
		in = os.Stdin
	}
	out, ok := p.out.(terminal.FileWriter)
	if !ok {
		out = os.Stdout
	}
	return survey.WithStdio(in, out, os.Stderr)
}

func cancelled(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return picker.ErrCancelled
	}
	return err
}
