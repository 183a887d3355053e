package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a
// lightweight stub.
type execIface interface {
	isAuthenticated() bool

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Refresh(ctx context.Context) error
	Summary(ctx context.Context) error

	Teams(ctx context.Context) error
	NewTeam(ctx context.Context) error
	Members(ctx context.Context, args []string) error
	Invite(ctx context.Context, args []string) error

	Projects(ctx context.Context, args []string) error
	NewProject(ctx context.Context, args []string) error
	EditProject(ctx context.Context, args []string) error
	RemoveProject(ctx context.Context, args []string) error

	Tasks(ctx context.Context, args []string) error
	NewTask(ctx context.Context) error
	EditTask(ctx context.Context, args []string) error
	MoveTask(ctx context.Context, args []string) error
	AssignTask(ctx context.Context, args []string) error
	RemoveTask(ctx context.Context, args []string) error
}

// runREPL starts a simple read–eval–print loop for the taskboard CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers
// report their own errors. This keeps the loop resilient and focused on
// I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner, w io.Writer) {
	for {
		fmt.Fprintf(w, "tb %s> ", statusFn())
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isAuthenticated() {
				fmt.Fprintln(w, "Session:  whoami, refresh, summary, logout, exit")
				fmt.Fprintln(w, "Teams:    teams, newteam, members <team>, invite <team>")
				fmt.Fprintln(w, "Projects: projects <team>, newproject <team>, editproject <project>, rmproject <project>")
				fmt.Fprintln(w, "Tasks:    tasks [project], newtask, edittask <task>, move <task> <status>, assign <task> [user], rmtask <task>")
			} else {
				fmt.Fprintln(w, "Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)
		case "login":
			_ = a.Login(ctx)
		case "logout":
			_ = a.Logout(ctx)
		case "whoami":
			_ = a.WhoAmI(ctx)
		case "refresh":
			_ = a.Refresh(ctx)
		case "summary":
			_ = a.Summary(ctx)

		case "teams":
			_ = a.Teams(ctx)
		case "newteam":
			_ = a.NewTeam(ctx)
		case "members":
			_ = a.Members(ctx, args)
		case "invite":
			_ = a.Invite(ctx, args)

		case "projects":
			_ = a.Projects(ctx, args)
		case "newproject":
			_ = a.NewProject(ctx, args)
		case "editproject":
			_ = a.EditProject(ctx, args)
		case "rmproject":
			_ = a.RemoveProject(ctx, args)

		case "tasks":
			_ = a.Tasks(ctx, args)
		case "newtask":
			_ = a.NewTask(ctx)
		case "edittask":
			_ = a.EditTask(ctx, args)
		case "move":
			_ = a.MoveTask(ctx, args)
		case "assign":
			_ = a.AssignTask(ctx, args)
		case "rmtask":
			_ = a.RemoveTask(ctx, args)

		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return

		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}
	}
}
