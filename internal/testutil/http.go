package testutil

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

// Reply is a canned coach service answer.
type Reply struct {
	Status int
	Body   string
}

// CoachServer starts an httptest server answering each path with its Reply.
// Unknown paths get a 404 with a FastAPI-style detail. The server closes with the test.
func CoachServer(t *testing.T, replies map[string]Reply) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reply, ok := replies[r.URL.Path]
		if !ok {
			reply = Reply{Status: http.StatusNotFound, Body: `{"detail":"Not Found"}`}
		}
		w.Header().Set("Content-Type", "application/json")
		status := reply.Status
		if status == 0 {
			status = http.StatusOK
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(reply.Body))
	}))
	t.Cleanup(srv.Close)
	return srv
}
