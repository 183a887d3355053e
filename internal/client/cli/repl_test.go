package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	authenticated bool

	calls []string
	args  [][]string
}

func (f *fakeExec) record(name string, args []string) error {
	f.calls = append(f.calls, name)
	f.args = append(f.args, args)
	return nil
}

func (f *fakeExec) isAuthenticated() bool { return f.authenticated }

func (f *fakeExec) Register(ctx context.Context) error { return f.record("register", nil) }
func (f *fakeExec) Login(ctx context.Context) error {
	f.authenticated = true
	return f.record("login", nil)
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.authenticated = false
	return f.record("logout", nil)
}
func (f *fakeExec) WhoAmI(ctx context.Context) error  { return f.record("whoami", nil) }
func (f *fakeExec) Refresh(ctx context.Context) error { return f.record("refresh", nil) }
func (f *fakeExec) Summary(ctx context.Context) error { return f.record("summary", nil) }

func (f *fakeExec) Teams(ctx context.Context) error   { return f.record("teams", nil) }
func (f *fakeExec) NewTeam(ctx context.Context) error { return f.record("newteam", nil) }
func (f *fakeExec) Members(ctx context.Context, args []string) error {
	return f.record("members", args)
}
func (f *fakeExec) Invite(ctx context.Context, args []string) error {
	return f.record("invite", args)
}

func (f *fakeExec) Projects(ctx context.Context, args []string) error {
	return f.record("projects", args)
}
func (f *fakeExec) NewProject(ctx context.Context, args []string) error {
	return f.record("newproject", args)
}
func (f *fakeExec) EditProject(ctx context.Context, args []string) error {
	return f.record("editproject", args)
}
func (f *fakeExec) RemoveProject(ctx context.Context, args []string) error {
	return f.record("rmproject", args)
}

func (f *fakeExec) Tasks(ctx context.Context, args []string) error {
	return f.record("tasks", args)
}
func (f *fakeExec) NewTask(ctx context.Context) error { return f.record("newtask", nil) }
func (f *fakeExec) EditTask(ctx context.Context, args []string) error {
	return f.record("edittask", args)
}
func (f *fakeExec) MoveTask(ctx context.Context, args []string) error {
	return f.record("move", args)
}
func (f *fakeExec) AssignTask(ctx context.Context, args []string) error {
	return f.record("assign", args)
}
func (f *fakeExec) RemoveTask(ctx context.Context, args []string) error {
	return f.record("rmtask", args)
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"help",
		"teams",
		"projects 1",
		"tasks 2",
		"move 3 done",
		"summary",
		"foobar",
		"exit",
	}, "\n"))

	exec := &fakeExec{}
	var out bytes.Buffer

	runREPL(context.Background(), exec, func() string { return "(test)" }, bufio.NewScanner(input), &out)

	want := []string{"login", "teams", "projects", "tasks", "move", "summary"}
	idx := 0
	for _, c := range exec.calls {
		if idx < len(want) && c == want[idx] {
			idx++
		}
	}
	if idx != len(want) {
		t.Fatalf("commands order mismatch: got %v, want subsequence %v", exec.calls, want)
	}

	if !strings.Contains(out.String(), "Unknown command: foobar") {
		t.Fatalf("unknown command not reported, output: %q", out.String())
	}
	if !strings.Contains(out.String(), "Bye!") {
		t.Fatalf("exit not acknowledged, output: %q", out.String())
	}
}

func TestRunREPL_PassesArguments(t *testing.T) {
	input := strings.NewReader("move 3 in-progress\nquit\n")
	exec := &fakeExec{authenticated: true}
	var out bytes.Buffer

	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewScanner(input), &out)

	if len(exec.calls) != 1 || exec.calls[0] != "move" {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
	if len(exec.args[0]) != 2 || exec.args[0][0] != "3" || exec.args[0][1] != "in-progress" {
		t.Fatalf("unexpected args: %v", exec.args[0])
	}
}

func TestRunREPL_EmptyLinesAndEOF(t *testing.T) {
	input := strings.NewReader("\n   \n")
	exec := &fakeExec{}
	var out bytes.Buffer

	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewScanner(input), &out)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}

func TestRunREPL_HelpDependsOnSession(t *testing.T) {
	input := strings.NewReader("help\nexit\n")
	exec := &fakeExec{}
	var out bytes.Buffer

	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewScanner(input), &out)

	if !strings.Contains(out.String(), "register, login") {
		t.Fatalf("anonymous help missing, output: %q", out.String())
	}

	out.Reset()
	exec.authenticated = true
	input = strings.NewReader("help\nexit\n")
	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewScanner(input), &out)

	if !strings.Contains(out.String(), "whoami") {
		t.Fatalf("authenticated help missing, output: %q", out.String())
	}
}
