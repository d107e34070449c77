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
	isLoggedIn() bool
	takeLoginRedirect() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Trades(ctx context.Context, args []string) error
	Expenses(ctx context.Context, args []string) error
	Goals(ctx context.Context, args []string) error
	Price(ctx context.Context, args []string) error
	Quote(ctx context.Context, args []string) error
	AI(ctx context.Context, args []string) error
}

// protectedCommands need an authenticated session.
var protectedCommands = map[string]bool{
	"trades":   true,
	"expenses": true,
	"goals":    true,
	"price":    true,
	"quote":    true,
	"ai":       true,
}

const (
	helpLoggedOut = "Available commands: register, login, whoami, help, exit"
	helpLoggedIn  = `Available commands:
  trades   [get <id> | create [json] | update <id> [json] | delete <id> | portfolio]
  expenses [get <id> | create [json] | update <id> [json] | delete <id> | summary | category <name>]
  goals    [get <id> | create [json] | update <id> [json] | delete <id> | active | progress <id> <amount>]
  price <symbol>, quote <symbol>
  ai [health | predict <symbol> [price] | recommend [risk] | analyze <symbol>...]
  whoami, logout, help, exit`
)

// runREPL starts a read–eval–print loop for the findash CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a' with the remaining tokens as arguments.
// Protected commands print a login hint while logged out. When the server
// has invalidated the session, the login prompt is shown before the next
// command. The loop exits on EOF, on context cancellation, or when the user
// types "exit" or "quit".
//
// Errors returned by command handlers are ignored here; handlers report their
// own errors.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		if a.takeLoginRedirect() {
			_ = a.Login(ctx)
		}

		printlnFn(fmt.Sprintf("findash %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if protectedCommands[cmd] && !a.isLoggedIn() {
			printlnFn("Please log in to use '" + cmd + "' (type 'login').")
			continue
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "trades":
			_ = a.Trades(ctx, args)

		case "expenses":
			_ = a.Expenses(ctx, args)

		case "goals":
			_ = a.Goals(ctx, args)

		case "price":
			_ = a.Price(ctx, args)

		case "quote":
			_ = a.Quote(ctx, args)

		case "ai":
			_ = a.AI(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
