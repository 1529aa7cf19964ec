package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/preston-bernstein/nba-coach-client/internal/domain/coach"
	"github.com/preston-bernstein/nba-coach-client/internal/metrics"
)

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
	}
}

func newTestClient(rt roundTripperFunc, rec *metrics.Recorder) *Client {
	return NewClient(Config{
		BaseURL:    "http://coach.test/",
		HTTPClient: &http.Client{Transport: rt},
		Metrics:    rec,
	})
}

func TestIngestPostsJSONAndDecodesResponse(t *testing.T) {
	var captured map[string]any
	var contentType, requestID, method, path string

	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		method = req.Method
		path = req.URL.Path
		contentType = req.Header.Get("Content-Type")
		requestID = req.Header.Get(headerRequestID)
		if err := json.NewDecoder(req.Body).Decode(&captured); err != nil {
			t.Fatalf("decode request body: %v", err)
		}
		return jsonResponse(http.StatusOK, `{"status":"ok","docs_added":42}`), nil
	})

	rec := metrics.NewRecorder()
	client := newTestClient(rt, rec)
	client.requestID = func() string { return "req-1" }

	got, err := client.Ingest(context.Background(), coach.IngestRequest{Team: "BOS", Season: "2024-25", Last: 10})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got.DocsAdded != 42 {
		t.Fatalf("expected 42 docs, got %d", got.DocsAdded)
	}
	if method != http.MethodPost || path != PathIngest {
		t.Fatalf("expected POST /ingest, got %s %s", method, path)
	}
	if !strings.HasPrefix(contentType, "application/json") {
		t.Fatalf("expected JSON content type, got %q", contentType)
	}
	if requestID != "req-1" {
		t.Fatalf("expected request id header, got %q", requestID)
	}
	want := map[string]any{"team": "BOS", "season": "2024-25", "last": float64(10)}
	if diff := cmp.Diff(want, captured); diff != "" {
		t.Fatalf("request body mismatch (-want +got):\n%s", diff)
	}
	if rec.Calls(PathIngest) != 1 || rec.CallErrors(PathIngest) != 0 {
		t.Fatalf("expected one successful call recorded, got %+v", rec.Snapshot(PathIngest))
	}
}

func TestCallReturnsFailureStatusWithoutError(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusBadRequest, `{"detail":"bad team"}`), nil
	})
	client := newTestClient(rt, nil)

	resp, err := client.Call(context.Background(), http.MethodPost, PathIngest, coach.IngestRequest{})
	if err != nil {
		t.Fatalf("expected no error for HTTP failure status, got %v", err)
	}
	if resp.OK || resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected failed 400 response, got %+v", resp)
	}
	if string(resp.Payload) != `{"detail":"bad team"}` {
		t.Fatalf("expected payload to be parsed regardless of status, got %s", resp.Payload)
	}
}

func TestIngestFailureUsesDetail(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusNotFound, `{"detail":"bad team"}`), nil
	})
	rec := metrics.NewRecorder()
	client := newTestClient(rt, rec)

	_, err := client.Ingest(context.Background(), coach.IngestRequest{Team: "XXX"})
	apiErr, ok := AsError(err)
	if !ok {
		t.Fatalf("expected *Error, got %T %v", err, err)
	}
	if apiErr.Error() != "bad team" || apiErr.StatusCode != http.StatusNotFound {
		t.Fatalf("unexpected error %+v", apiErr)
	}
	if rec.CallErrors(PathIngest) != 1 {
		t.Fatalf("expected failed call to be recorded")
	}
}

func TestRecommendFailureWithoutBodyFallsBack(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusInternalServerError, ""), nil
	})
	client := newTestClient(rt, nil)

	_, err := client.Recommend(context.Background(), coach.RecommendRequest{Opponent: "NYK"})
	if err == nil || err.Error() != "recommend failed" {
		t.Fatalf("expected fallback message, got %v", err)
	}
}

func TestFailureDetailListRendersAsJSON(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusUnprocessableEntity, `{"detail": [ {"msg": "field required"} ]}`), nil
	})
	client := newTestClient(rt, nil)

	_, err := client.Recommend(context.Background(), coach.RecommendRequest{})
	if err == nil || err.Error() != `[{"msg":"field required"}]` {
		t.Fatalf("expected compact detail, got %v", err)
	}
}

func TestSuccessWithErrorFieldStillDecodes(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{"error":"Missing GOOGLE_API_KEY env var.","suggested_lineup":[{"player":"Jayson Tatum","avg_minutes":36}]}`), nil
	})
	client := newTestClient(rt, nil)

	got, err := client.Recommend(context.Background(), coach.RecommendRequest{})
	if err != nil {
		t.Fatalf("expected 2xx to succeed, got %v", err)
	}
	if len(got.SuggestedLineup) != 1 || got.SuggestedLineup[0].Player != "Jayson Tatum" {
		t.Fatalf("expected lineup to decode, got %+v", got)
	}
}

func TestSuccessWithOnlyErrorFieldIsEmptyResult(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{"error":"Store empty. Run /ingest first."}`), nil
	})
	client := newTestClient(rt, nil)

	got, err := client.Recommend(context.Background(), coach.RecommendRequest{})
	if err != nil {
		t.Fatalf("expected 2xx to succeed, got %v", err)
	}
	if len(got.SuggestedLineup) != 0 || len(got.SupportingGames) != 0 {
		t.Fatalf("expected empty response, got %+v", got)
	}
}

func TestRecommendToleratesMissingArrays(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{}`), nil
	})
	client := newTestClient(rt, nil)

	got, err := client.Recommend(context.Background(), coach.RecommendRequest{})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(got.SuggestedLineup) != 0 || len(got.SupportingGames) != 0 {
		t.Fatalf("expected empty response, got %+v", got)
	}
}

func TestNetworkFailureSurfacesAsNetworkError(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return nil, errors.New("connection refused")
	})
	rec := metrics.NewRecorder()
	client := newTestClient(rt, rec)

	_, err := client.Ingest(context.Background(), coach.IngestRequest{})
	netErr, ok := AsNetworkError(err)
	if !ok {
		t.Fatalf("expected *NetworkError, got %T %v", err, err)
	}
	if netErr.StatusCode != 0 || !strings.Contains(err.Error(), "connection refused") {
		t.Fatalf("expected descriptive network error, got %v", err)
	}
	if rec.Calls(PathIngest) != 1 || rec.CallErrors(PathIngest) != 1 {
		t.Fatalf("expected exactly one failed attempt, got %+v", rec.Snapshot(PathIngest))
	}
}

func TestMalformedJSONSurfacesAsNetworkError(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusBadGateway, `<html>bad gateway</html>`), nil
	})
	client := newTestClient(rt, nil)

	_, err := client.Recommend(context.Background(), coach.RecommendRequest{})
	netErr, ok := AsNetworkError(err)
	if !ok {
		t.Fatalf("expected *NetworkError, got %T %v", err, err)
	}
	if netErr.StatusCode != http.StatusBadGateway || !strings.Contains(err.Error(), "not valid JSON") {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestHealthUsesGetAgainstRealServer(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if r.Method != http.MethodGet || r.URL.Path != PathHealth {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok","loaded_docs":"120"}`))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})
	got, err := client.Health(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got.Status != "ok" || got.LoadedDocs != "120" {
		t.Fatalf("unexpected health %+v", got)
	}
	if calls != 1 {
		t.Fatalf("expected exactly one request, got %d", calls)
	}
}

func TestNormalizeBaseURL(t *testing.T) {
	if got := normalizeBaseURL(""); got != defaultBaseURL {
		t.Fatalf("expected default base url, got %s", got)
	}
	if got := normalizeBaseURL(" http://coach.test/ "); got != "http://coach.test" {
		t.Fatalf("expected trimmed base url, got %s", got)
	}
	if got := NewClient(Config{BaseURL: "http://x/"}).BaseURL(); got != "http://x" {
		t.Fatalf("expected client base url http://x, got %s", got)
	}
}

func TestNewClientLeavesCallerHTTPClientUntouched(t *testing.T) {
	hc := &http.Client{Timeout: 0}
	client := NewClient(Config{HTTPClient: hc, Timeout: 2 * time.Second})

	if hc.Timeout != 0 {
		t.Fatalf("expected caller timeout untouched, got %s", hc.Timeout)
	}
	if got := client.http.GetClient(); got == hc || got.Timeout != 2*time.Second {
		t.Fatalf("expected a private client with 2s timeout, got %p timeout %s", got, got.Timeout)
	}
}
