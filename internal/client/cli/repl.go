package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	List(ctx context.Context) error
	Add(ctx context.Context) error
	Remove(ctx context.Context, args []string) error
	Sort(ctx context.Context, args []string) error
	Unit(ctx context.Context, args []string) error
	Refresh(ctx context.Context) error
	Watch(ctx context.Context, args []string) error
}

const helpText = "Available commands: (l)ist, add, rm <id>, sort <date|title|created>, " +
	"unit <days|hours|minutes|seconds>, refresh, watch [seconds], help, exit"

// runREPL starts a simple read–eval–print loop for the TimeFlux CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// The prompt shows the current view options (from statusFn). Any errors
// returned by command handlers are ignored here; handlers print or log
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("tf> %s > ", statusFn()))
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
		case "help":
			printlnFn(helpText)

		case "l", "list":
			_ = a.List(ctx)

		case "add":
			_ = a.Add(ctx)

		case "rm", "remove":
			_ = a.Remove(ctx, args)

		case "sort":
			_ = a.Sort(ctx, args)

		case "unit":
			_ = a.Unit(ctx, args)

		case "refresh":
			_ = a.Refresh(ctx)

		case "watch":
			_ = a.Watch(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command: " + cmd)
		}
	}
}
