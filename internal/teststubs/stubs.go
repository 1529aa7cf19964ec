package teststubs

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/preston-bernstein/nba-coach-client/internal/domain/coach"
)

// StubService is a test double for session.Service.
// When Gate is set, every call waits for it to close (or for ctx) before answering.
type StubService struct {
	IngestResp    coach.IngestResponse
	RecommendResp coach.RecommendResponse
	HealthResp    coach.HealthResponse
	Err           error
	Gate          chan struct{}
	Started       chan struct{}
	Calls         atomic.Int32

	mu          sync.Mutex
	ingested    []coach.IngestRequest
	recommended []coach.RecommendRequest
}

// Ingest records req and returns IngestResp and Err.
func (s *StubService) Ingest(ctx context.Context, req coach.IngestRequest) (coach.IngestResponse, error) {
	s.mu.Lock()
	s.ingested = append(s.ingested, req)
	s.mu.Unlock()
	if err := s.wait(ctx); err != nil {
		return coach.IngestResponse{}, err
	}
	return s.IngestResp, s.Err
}

// Recommend records req and returns RecommendResp and Err.
func (s *StubService) Recommend(ctx context.Context, req coach.RecommendRequest) (coach.RecommendResponse, error) {
	s.mu.Lock()
	s.recommended = append(s.recommended, req)
	s.mu.Unlock()
	if err := s.wait(ctx); err != nil {
		return coach.RecommendResponse{}, err
	}
	return s.RecommendResp, s.Err
}

// Health returns HealthResp and Err.
func (s *StubService) Health(ctx context.Context) (coach.HealthResponse, error) {
	if err := s.wait(ctx); err != nil {
		return coach.HealthResponse{}, err
	}
	return s.HealthResp, s.Err
}

// IngestRequests returns the ingest requests seen so far.
func (s *StubService) IngestRequests() []coach.IngestRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]coach.IngestRequest(nil), s.ingested...)
}

// RecommendRequests returns the recommend requests seen so far.
func (s *StubService) RecommendRequests() []coach.RecommendRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]coach.RecommendRequest(nil), s.recommended...)
}

func (s *StubService) wait(ctx context.Context) error {
	s.Calls.Add(1)
	if s.Started != nil {
		s.Started <- struct{}{}
	}
	if s.Gate == nil {
		return nil
	}
	select {
	case <-s.Gate:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
