package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/RevCBH/szmer/internal/config"
	"github.com/RevCBH/szmer/internal/notify"
	"github.com/RevCBH/szmer/internal/testutil"
)

const (
	testHome        = "/home/test"
	testBinary      = "/usr/local/bin/szmer"
	testConfigPath  = testHome + "/.config/szmer/config.yaml"
	testHistoryPath = testHome + "/.cache/szmer/last_notification"
	testServicePath = testHome + "/.config/systemd/user/szmer.service"
	testTimerPath   = testHome + "/.config/systemd/user/szmer.timer"

	cmdReload   = "systemctl --user daemon-reload"
	cmdEnable   = "systemctl --user enable --now szmer.timer"
	cmdDisable  = "systemctl --user disable --now szmer.timer"
	cmdIsActive = "systemctl --user is-active szmer.timer"
	cmdShow     = "systemctl --user show szmer.timer -p NextElapseUSecRealtime"
)

type fakePrompter struct {
	minutes  int
	sound    string
	tracking bool
	err      error

	intervalAsked bool
	soundsOffered []string
	timewPath     string
}

func (p *fakePrompter) PickInterval(context.Context) (int, error) {
	p.intervalAsked = true
	return p.minutes, p.err
}

func (p *fakePrompter) PickSound(_ context.Context, sounds []string) (string, error) {
	p.soundsOffered = sounds
	return p.sound, p.err
}

func (p *fakePrompter) ConfirmTracking(path string) (bool, error) {
	p.timewPath = path
	return p.tracking, p.err
}

type fakeNotifier struct {
	sent []notify.Message
}

func (n *fakeNotifier) Send(_ context.Context, msg notify.Message) error {
	n.sent = append(n.sent, msg)
	return nil
}

type testEnv struct {
	app      *App
	fs       afero.Fs
	runner   *testutil.StubRunner
	prompter *fakePrompter
	notifier *fakeNotifier
	out      *bytes.Buffer
	errOut   *bytes.Buffer
}

// newTestEnv wires an App to the systemd backend on an in-memory filesystem
// with scripted systemctl calls.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	t.Setenv("HOME", testHome)
	t.Setenv("XDG_CONFIG_HOME", testHome+"/.config")
	t.Setenv(config.EnvConfigPath, "")
	t.Setenv(config.EnvLogLevel, "")
	t.Setenv(config.EnvTimewCommand, "")

	e := &testEnv{
		fs:       afero.NewMemMapFs(),
		runner:   testutil.NewStubRunner(),
		prompter: &fakePrompter{},
		notifier: &fakeNotifier{},
		out:      new(bytes.Buffer),
		errOut:   new(bytes.Buffer),
	}

	app := New()
	app.goos = "linux"
	app.fs = e.fs
	app.runner = e.runner
	app.executable = func() (string, error) { return testBinary, nil }
	app.configPath = testConfigPath
	app.historyPath = testHistoryPath
	app.notifier = e.notifier
	app.prompter = e.prompter
	app.isTerminal = func() bool { return false }
	app.now = func() time.Time { return time.Date(2026, 3, 14, 15, 9, 0, 0, time.Local) }
	e.app = app
	return e
}

func (e *testEnv) run(args ...string) error {
	e.out.Reset()
	e.app.rootCmd.SetArgs(args)
	e.app.rootCmd.SetOut(e.out)
	e.app.rootCmd.SetErr(e.errOut)
	return e.app.ExecuteContext(context.Background())
}

// install runs a non-interactive install with the systemctl calls stubbed.
func (e *testEnv) install(t *testing.T, args ...string) {
	t.Helper()
	e.runner.Stub(cmdReload, "", nil)
	e.runner.Stub(cmdEnable, "", nil)
	require.NoError(t, e.run(append([]string{"install"}, args...)...))
}

func (e *testEnv) config(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.NewStore(e.fs, testConfigPath).Load()
	require.NoError(t, err)
	return cfg
}

func (e *testEnv) writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, e.fs.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, afero.WriteFile(e.fs, path, []byte{}, 0644))
}
