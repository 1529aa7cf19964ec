package api

import "encoding/json"

// Response is a decoded service reply. OK mirrors a 2xx status; the caller decides what a failure means.
type Response struct {
	OK         bool
	StatusCode int
	RequestID  string
	Payload    json.RawMessage
}

// failureBody is FastAPI's {"detail": ...} error shape.
type failureBody struct {
	Detail json.RawMessage `json:"detail"`
}
