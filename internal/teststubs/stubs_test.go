package teststubs

import (
	"context"
	"errors"
	"testing"

	"github.com/preston-bernstein/nba-coach-client/internal/domain/coach"
)

func TestStubServiceTracksCalls(t *testing.T) {
	err := errors.New("boom")
	s := &StubService{Err: err}
	if _, got := s.Ingest(context.Background(), coach.IngestRequest{Team: "BOS"}); !errors.Is(got, err) {
		t.Fatalf("expected error passthrough, got %v", got)
	}
	if s.Calls.Load() != 1 {
		t.Fatalf("expected call count 1, got %d", s.Calls.Load())
	}
	if reqs := s.IngestRequests(); len(reqs) != 1 || reqs[0].Team != "BOS" {
		t.Fatalf("expected recorded request, got %+v", reqs)
	}
}

func TestStubServiceGateHonoursContext(t *testing.T) {
	s := &StubService{Gate: make(chan struct{})}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := s.Recommend(ctx, coach.RecommendRequest{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context cancellation, got %v", err)
	}
	if reqs := s.RecommendRequests(); len(reqs) != 1 {
		t.Fatalf("expected request recorded before blocking, got %d", len(reqs))
	}
}

func TestStubServiceHealth(t *testing.T) {
	s := &StubService{HealthResp: coach.HealthResponse{Status: "ok"}}
	resp, err := s.Health(context.Background())
	if err != nil || resp.Status != "ok" {
		t.Fatalf("unexpected health %+v err %v", resp, err)
	}
}
