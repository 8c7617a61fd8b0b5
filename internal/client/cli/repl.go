package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with
// a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a
// lightweight stub.
type execIface interface {
	screen() Screen

	Login(ctx context.Context) error
	Register(ctx context.Context) error
	OAuth(ctx context.Context, args []string) error
	Callback(ctx context.Context, args []string) error
	ClearError(ctx context.Context) error

	Search(ctx context.Context, args []string) error
	Docs(ctx context.Context) error
	Profile(ctx context.Context) error
	Status(ctx context.Context) error
	Refresh(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the docuseek CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. The set of accepted commands
// depends on the active screen, which is recomputed from the session guard
// on every cycle. Unknown commands are reported back to the user. The loop
// exits on scanner EOF or when the user types "exit" or "quit".
//
// Login screen commands:
//
//	help, login, register, oauth <provider>, callback <url>, clear, exit
//
// Home screen commands:
//
//	help, search <query...>, docs, profile, status, refresh, logout, exit
//
// Any errors returned by command handlers are ignored here; handlers print
// and log their own errors. This keeps the REPL loop resilient and focused
// on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("docuseek> %s ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "exit", "quit":
			printlnFn("Bye!")
			return
		case "help":
			if a.screen() == ScreenLogin {
				printlnFn("Available commands: login, register, oauth <provider>, callback <url>, clear, exit")
			} else {
				printlnFn("Available commands: search <query>, docs, profile, status, refresh, logout, exit")
			}
			continue
		}

		if a.screen() == ScreenLogin {
			switch cmd {
			case "login":
				_ = a.Login(ctx)
			case "register":
				_ = a.Register(ctx)
			case "oauth":
				_ = a.OAuth(ctx, args)
			case "callback":
				_ = a.Callback(ctx, args)
			case "clear":
				_ = a.ClearError(ctx)
			default:
				printlnFn("Unknown command:", cmd)
			}
			continue
		}

		switch cmd {
		case "s", "search":
			_ = a.Search(ctx, args)
		case "docs":
			_ = a.Docs(ctx)
		case "profile":
			_ = a.Profile(ctx)
		case "status":
			_ = a.Status(ctx)
		case "refresh":
			_ = a.Refresh(ctx)
		case "logout":
			_ = a.Logout(ctx)
		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
