// Package shell is an interactive stand-in for the browser page: a form the user edits
// with "set" and buttons that fire actions in the background.
package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/preston-bernstein/nba-coach-client/internal/input"
	"github.com/preston-bernstein/nba-coach-client/internal/logging"
	"github.com/preston-bernstein/nba-coach-client/internal/session"
)

const prompt = "coach> "

const usage = `commands:
  set <field> <value>   edit a form field (team, season, last, opponent)
  show                  print the form
  ingest                load recent games for team/season
  recommend             suggest a rotation against opponent
  health                check the coach service
  result                print the result area again
  help                  print this help
  quit | exit           wait for running actions and leave`

// Config wires a Shell. Out should be safe for concurrent writes; see NewSyncWriter.
type Config struct {
	Session *session.Session
	Form    *input.Form
	In      io.Reader
	Out     io.Writer
	Logger  *slog.Logger
}

// Shell reads commands line by line. Actions run concurrently; the session decides which result stays on screen.
type Shell struct {
	session *session.Session
	form    *input.Form
	in      io.Reader
	out     io.Writer
	logger  *slog.Logger
	wg      sync.WaitGroup
}

// New constructs a Shell.
func New(cfg Config) *Shell {
	return &Shell{
		session: cfg.Session,
		form:    cfg.Form,
		in:      cfg.In,
		out:     cfg.Out,
		logger:  cfg.Logger,
	}
}

// Run processes commands until quit, end of input, or ctx is done. In-flight actions are awaited before returning.
func (sh *Shell) Run(ctx context.Context) error {
	defer sh.wg.Wait()

	lines := make(chan string)
	readErr := make(chan error, 1)
	done := make(chan struct{})
	defer close(done)
	go func() {
		readErr <- scanLines(sh.in, lines, done)
		close(lines)
	}()

	fmt.Fprint(sh.out, prompt)
	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				return <-readErr
			}
			if quit := sh.handle(ctx, line); quit {
				return nil
			}
			fmt.Fprint(sh.out, prompt)
		}
	}
}

// scanLines feeds lines from in until input ends or done is closed.
func scanLines(in io.Reader, lines chan<- string, done <-chan struct{}) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		select {
		case lines <- scanner.Text():
		case <-done:
			return nil
		}
	}
	return scanner.Err()
}

// handle runs one command and reports whether the shell should stop.
func (sh *Shell) handle(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}

	cmd := strings.ToLower(fields[0])
	switch cmd {
	case "quit", "exit":
		return true
	case "help":
		fmt.Fprintln(sh.out, usage)
	case "set":
		sh.set(fields[1:])
	case "show":
		sh.show()
	case "result":
		fmt.Fprintln(sh.out, sh.session.Screen().Current().Text)
	case session.ActionIngest:
		sh.launch(ctx, cmd, sh.session.Ingest)
	case session.ActionRecommend:
		sh.launch(ctx, cmd, sh.session.Recommend)
	case session.ActionHealth:
		sh.launch(ctx, cmd, sh.session.Health)
	default:
		fmt.Fprintf(sh.out, "unknown command %q\n%s\n", cmd, usage)
	}
	return false
}

func (sh *Shell) set(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(sh.out, "usage: set <field> <value>")
		return
	}
	value := strings.Join(args[1:], " ")
	if err := sh.form.Set(strings.ToLower(args[0]), value); err != nil {
		fmt.Fprintln(sh.out, err)
	}
}

func (sh *Shell) show() {
	values := sh.form.Values()
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(sh.out, "%-9s %q\n", name, values[name])
	}
}

// launch runs an action in the background, like a button click.
func (sh *Shell) launch(ctx context.Context, action string, run func(context.Context) session.State) {
	sh.wg.Add(1)
	go func() {
		defer sh.wg.Done()
		state := run(ctx)
		logging.Debug(sh.logger, "action finished", logging.FieldAction, action, "state", state.String())
	}()
}
