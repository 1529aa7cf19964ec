// Package session runs the ingest, recommend and health actions against the result area.
package session

import (
	"context"
	"log/slog"
	"time"

	"github.com/preston-bernstein/nba-coach-client/internal/domain/coach"
	"github.com/preston-bernstein/nba-coach-client/internal/input"
	"github.com/preston-bernstein/nba-coach-client/internal/logging"
	"github.com/preston-bernstein/nba-coach-client/internal/metrics"
	"github.com/preston-bernstein/nba-coach-client/internal/render"
)

// Action names used in logs and metrics.
const (
	ActionIngest    = "ingest"
	ActionRecommend = "recommend"
	ActionHealth    = "health"
)

// State is how an action cycle ended.
type State int

const (
	StateDone State = iota
	StateFailed
	// StateStale means a newer action started first, so this result was dropped.
	StateStale
)

func (s State) String() string {
	switch s {
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	case StateStale:
		return "stale"
	default:
		return "unknown"
	}
}

// Service is the subset of the API client the session drives.
type Service interface {
	Ingest(ctx context.Context, req coach.IngestRequest) (coach.IngestResponse, error)
	Recommend(ctx context.Context, req coach.RecommendRequest) (coach.RecommendResponse, error)
	Health(ctx context.Context) (coach.HealthResponse, error)
}

// Config wires a Session.
type Config struct {
	Reader  *input.Reader
	Service Service
	Screen  *Screen
	Logger  *slog.Logger
	Metrics *metrics.Recorder
	// RecommendLimit is sent as "limit" when positive.
	RecommendLimit int
}

// Session owns no state beyond the Screen; every action reads the form afresh.
type Session struct {
	reader  *input.Reader
	service Service
	screen  *Screen
	logger  *slog.Logger
	metrics *metrics.Recorder
	limit   int
}

// New builds a Session. A nil Screen discards output.
func New(cfg Config) *Session {
	screen := cfg.Screen
	if screen == nil {
		screen = NewScreen(nil)
	}
	return &Session{
		reader:  cfg.Reader,
		service: cfg.Service,
		screen:  screen,
		logger:  cfg.Logger,
		metrics: cfg.Metrics,
		limit:   cfg.RecommendLimit,
	}
}

// Screen returns the result area.
func (s *Session) Screen() *Screen {
	return s.screen
}

// Ingest loads recent games for the form's team/season and shows a summary.
func (s *Session) Ingest(ctx context.Context) State {
	return s.run(ctx, ActionIngest, render.LoadingIngest, func(ctx context.Context) (render.View, error) {
		req := s.reader.Ingest()
		logging.Info(s.logger, "ingest requested",
			logging.FieldTeam, req.Team,
			logging.FieldSeason, req.Season,
			logging.FieldCount, req.Last,
		)
		resp, err := s.service.Ingest(ctx, req)
		if err != nil {
			return render.View{}, err
		}
		return render.Message(render.IngestSummary(resp.DocsAdded)), nil
	})
}

// Recommend requests a rotation for the form's opponent and renders it.
func (s *Session) Recommend(ctx context.Context) State {
	return s.run(ctx, ActionRecommend, render.LoadingRecommend, func(ctx context.Context) (render.View, error) {
		req := s.reader.Recommend()
		if s.limit > 0 {
			req.Limit = s.limit
		}
		logging.Info(s.logger, "recommendation requested",
			logging.FieldTeam, req.Team,
			logging.FieldSeason, req.Season,
			logging.FieldOpponent, req.Opponent,
		)
		resp, err := s.service.Recommend(ctx, req)
		if err != nil {
			return render.View{}, err
		}
		return render.Result(resp), nil
	})
}

// Health checks the service and shows how many documents it holds.
func (s *Session) Health(ctx context.Context) State {
	return s.run(ctx, ActionHealth, render.LoadingHealth, func(ctx context.Context) (render.View, error) {
		resp, err := s.service.Health(ctx)
		if err != nil {
			return render.View{}, err
		}
		return render.Message(render.HealthSummary(resp.Status, resp.LoadedDocs)), nil
	})
}

func (s *Session) run(ctx context.Context, action, loading string, call func(context.Context) (render.View, error)) State {
	start := time.Now()
	token := s.screen.Begin(render.Message(loading))

	view, err := call(ctx)
	state := StateDone
	if err != nil {
		state = StateFailed
		view = render.Message(render.ErrorMessage(err.Error()))
		logging.Error(s.logger, "action failed", err, logging.FieldAction, action, logging.FieldToken, token)
	}

	if !s.screen.Commit(token, view) {
		logging.Debug(s.logger, "discarding stale result",
			logging.FieldAction, action,
			logging.FieldToken, token,
			"outcome", state.String(),
		)
		state = StateStale
	}

	s.metrics.RecordAction(action, state.String(), time.Since(start))
	return state
}
