package schedule

import "context"

// unsupported is selected on platforms without a scheduling integration.
// Every operation fails before touching the filesystem or running anything.
type unsupported struct{}

func (unsupported) Platform() string { return "unsupported" }

func (unsupported) UnitPath() (string, error) { return "", ErrUnsupportedPlatform }

func (unsupported) Install(context.Context, int) error { return ErrUnsupportedPlatform }

func (unsupported) Uninstall(context.Context) error { return ErrUnsupportedPlatform }

func (unsupported) IsInstalled() bool { return false }

func (unsupported) Status(context.Context) (Status, error) {
	return Status{}, ErrUnsupportedPlatform
}
