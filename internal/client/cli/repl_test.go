package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	scr      Screen
	calls    []string
	lastArgs []string
}

func (f *fakeExec) screen() Screen { return f.scr }

func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.scr = ScreenHome
	return nil
}

func (f *fakeExec) Register(ctx context.Context) error {
	f.calls = append(f.calls, "register")
	f.scr = ScreenHome
	return nil
}

func (f *fakeExec) OAuth(ctx context.Context, args []string) error {
	f.calls = append(f.calls, "oauth")
	f.lastArgs = args
	return nil
}

func (f *fakeExec) Callback(ctx context.Context, args []string) error {
	f.calls = append(f.calls, "callback")
	f.lastArgs = args
	return nil
}

func (f *fakeExec) ClearError(ctx context.Context) error {
	f.calls = append(f.calls, "clear")
	return nil
}

func (f *fakeExec) Search(ctx context.Context, args []string) error {
	f.calls = append(f.calls, "search")
	f.lastArgs = args
	return nil
}

func (f *fakeExec) Docs(ctx context.Context) error {
	f.calls = append(f.calls, "docs")
	return nil
}

func (f *fakeExec) Profile(ctx context.Context) error {
	f.calls = append(f.calls, "profile")
	return nil
}

func (f *fakeExec) Status(ctx context.Context) error {
	f.calls = append(f.calls, "status")
	return nil
}

func (f *fakeExec) Refresh(ctx context.Context) error {
	f.calls = append(f.calls, "refresh")
	return nil
}

func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.scr = ScreenLogin
	return nil
}

func runScript(t *testing.T, exec *fakeExec, lines ...string) {
	t.Helper()
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	sc := bufio.NewScanner(strings.NewReader(strings.Join(lines, "\n")))
	runREPL(context.Background(), exec, func() string { return "status" }, sc)
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	exec := &fakeExec{scr: ScreenLogin}

	runScript(t, exec,
		"help",
		"login",
		"help",
		"search how does auth work",
		"docs",
		"status",
		"logout",
		"exit",
	)

	assert.Equal(t, []string{"login", "search", "docs", "status", "logout"}, exec.calls)
}

func TestRunREPL_HomeCommandsGatedOnLoginScreen(t *testing.T) {
	exec := &fakeExec{scr: ScreenLogin}

	runScript(t, exec,
		"search secret documents",
		"docs",
		"refresh",
		"exit",
	)

	assert.Empty(t, exec.calls, "home commands must not dispatch from the login screen")
}

func TestRunREPL_LoginCommandsGatedOnHomeScreen(t *testing.T) {
	exec := &fakeExec{scr: ScreenHome}

	runScript(t, exec,
		"login",
		"register",
		"callback http://x/auth/callback",
		"quit",
	)

	assert.Empty(t, exec.calls, "login commands must not dispatch from the home screen")
}

func TestRunREPL_PassesArguments(t *testing.T) {
	exec := &fakeExec{scr: ScreenHome}

	runScript(t, exec, "search meaning of life", "exit")

	assert.Equal(t, []string{"search"}, exec.calls)
	assert.Equal(t, []string{"meaning", "of", "life"}, exec.lastArgs)
}

func TestRunREPL_SearchShortForm(t *testing.T) {
	exec := &fakeExec{scr: ScreenHome}

	runScript(t, exec, "s query", "exit")

	assert.Equal(t, []string{"search"}, exec.calls)
}

func TestRunREPL_UnknownAndBlankLines(t *testing.T) {
	exec := &fakeExec{scr: ScreenLogin}

	runScript(t, exec, "", "foobar", "oauth google", "exit")

	assert.Equal(t, []string{"oauth"}, exec.calls)
	assert.Equal(t, []string{"google"}, exec.lastArgs)
}
