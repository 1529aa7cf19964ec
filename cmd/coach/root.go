package main

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/nba-coach-client/internal/api"
	"github.com/preston-bernstein/nba-coach-client/internal/config"
	"github.com/preston-bernstein/nba-coach-client/internal/input"
	"github.com/preston-bernstein/nba-coach-client/internal/logging"
	"github.com/preston-bernstein/nba-coach-client/internal/server"
	"github.com/preston-bernstein/nba-coach-client/internal/session"
	"github.com/preston-bernstein/nba-coach-client/internal/shell"
)

const serviceName = "nba-coach-client"

var errActionFailed = errors.New("action failed")

// app carries what PersistentPreRunE builds for the subcommands.
type app struct {
	cfg       config.Config
	stdin     io.Reader
	stdout    io.Writer
	stderr    io.Writer
	logger    *slog.Logger
	telemetry *server.Telemetry
	client    *api.Client
}

func newRootCmd(cfg config.Config, stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	a := &app{cfg: cfg, stdin: stdin, stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:           "coach",
		Short:         "coach is a CLI for the NBA coach service: ingest game logs and request rotations.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if f := cmd.Flags().Lookup("metrics-port"); f != nil && f.Changed {
				a.cfg.Metrics.Enabled = true
			}
			a.setup(cmd.Context())
			return nil
		},
	}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfg.Service.BaseURL, "base-url", cfg.Service.BaseURL, "coach service origin")
	flags.DurationVar(&a.cfg.Service.Timeout, "timeout", cfg.Service.Timeout, "per-request timeout")
	flags.StringVar(&a.cfg.Log.Level, "log-level", cfg.Log.Level, "log level (debug, info, warn, error)")
	flags.StringVar(&a.cfg.Log.Format, "log-format", cfg.Log.Format, "log format (text, json)")

	root.AddCommand(
		a.ingestCmd(),
		a.recommendCmd(),
		a.healthCmd(),
		a.shellCmd(),
	)
	return root
}

func (a *app) setup(ctx context.Context) {
	if ctx == nil {
		ctx = context.Background()
	}
	a.logger = logging.NewLogger(logging.Config{
		Level:   a.cfg.Log.Level,
		Format:  a.cfg.Log.Format,
		Service: serviceName,
		Version: appVersion,
		Output:  a.stderr,
	})
	a.telemetry = server.NewTelemetry(ctx, a.cfg.Metrics, a.logger)
	a.client = api.NewClient(api.Config{
		BaseURL: a.cfg.Service.BaseURL,
		Timeout: a.cfg.Service.Timeout,
		Logger:  a.logger,
		Metrics: a.telemetry.Recorder(),
	})
	logging.Debug(a.logger, "coach client configured",
		logging.FieldBaseURL, a.client.BaseURL(),
		"timeout", a.cfg.Service.Timeout,
	)
}

func (a *app) newSession(src input.Source, screen *session.Screen, limit int) *session.Session {
	return session.New(session.Config{
		Reader:         input.NewReader(src),
		Service:        a.client,
		Screen:         screen,
		Logger:         a.logger,
		Metrics:        a.telemetry.Recorder(),
		RecommendLimit: limit,
	})
}

func (a *app) ingestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ingest",
		Short: "Load recent game logs for a team/season into the coach service.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defer a.telemetry.Shutdown()
			s := a.newSession(input.NewFlagSource(cmd.Flags()), session.NewScreen(a.stdout), 0)
			return outcome(s.Ingest(cmd.Context()))
		},
	}
	a.formFlags(cmd, input.FieldTeam, input.FieldSeason, input.FieldLast)
	return cmd
}

func (a *app) recommendCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Request a suggested rotation against an opponent.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defer a.telemetry.Shutdown()
			s := a.newSession(input.NewFlagSource(cmd.Flags()), session.NewScreen(a.stdout), limit)
			return outcome(s.Recommend(cmd.Context()))
		},
	}
	a.formFlags(cmd, input.FieldTeam, input.FieldSeason, input.FieldOpponent)
	cmd.Flags().IntVar(&limit, "limit", 0, "number of players to suggest (service default when 0)")
	return cmd
}

func (a *app) healthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the coach service is up.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defer a.telemetry.Shutdown()
			s := a.newSession(nil, session.NewScreen(a.stdout), 0)
			return outcome(s.Health(cmd.Context()))
		},
	}
}

func (a *app) shellCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Interactive session: edit the form with 'set' and run actions in the background.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defer a.telemetry.Shutdown()
			a.telemetry.ServeMetrics()

			out := shell.NewSyncWriter(a.stdout)
			form := input.NewForm(map[string]string{
				input.FieldTeam:     a.cfg.Defaults.Team,
				input.FieldSeason:   a.cfg.Defaults.Season,
				input.FieldLast:     a.cfg.Defaults.LastString(),
				input.FieldOpponent: a.cfg.Defaults.Opponent,
			})
			sh := shell.New(shell.Config{
				Session: a.newSession(form, session.NewScreen(out), 0),
				Form:    form,
				In:      a.stdin,
				Out:     out,
				Logger:  a.logger,
			})
			return sh.Run(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&a.cfg.Metrics.Port, "metrics-port", a.cfg.Metrics.Port, "serve Prometheus metrics on this port (enables metrics)")
	return cmd
}

// formFlags registers string flags named after form fields, pre-filled from config.
// last is a string flag so non-numeric input falls back to the default instead of failing to parse.
func (a *app) formFlags(cmd *cobra.Command, names ...string) {
	defaults := map[string]string{
		input.FieldTeam:     a.cfg.Defaults.Team,
		input.FieldSeason:   a.cfg.Defaults.Season,
		input.FieldLast:     a.cfg.Defaults.LastString(),
		input.FieldOpponent: a.cfg.Defaults.Opponent,
	}
	usage := map[string]string{
		input.FieldTeam:     "team abbreviation, e.g. BOS",
		input.FieldSeason:   "season, e.g. 2024-25",
		input.FieldLast:     "number of recent games per player",
		input.FieldOpponent: "opponent abbreviation, e.g. NYK",
	}
	for _, name := range names {
		cmd.Flags().String(name, defaults[name], usage[name])
	}
}

func outcome(state session.State) error {
	if state == session.StateFailed {
		return errActionFailed
	}
	return nil
}
