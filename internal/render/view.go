// Package render turns status messages and recommendation payloads into the text shown in the result area.
package render

import "fmt"

// Kind tells a plain status block from a rendered recommendation.
type Kind int

const (
	KindMessage Kind = iota
	KindResult
)

func (k Kind) String() string {
	switch k {
	case KindResult:
		return "result"
	default:
		return "message"
	}
}

// View is the complete content of the result area. Showing a View replaces whatever was there.
type View struct {
	Kind Kind
	Text string
}

// Status lines shown while an action is in flight.
const (
	LoadingIngest    = "Ingesting..."
	LoadingRecommend = "Generating..."
	LoadingHealth    = "Checking..."
)

// Message is the status presenter: msg becomes the whole result area, unescaped.
func Message(msg string) View {
	return View{Kind: KindMessage, Text: msg}
}

// ErrorMessage formats a failure for the result area.
func ErrorMessage(msg string) string {
	return "Error: " + msg
}

// IngestSummary formats a successful ingest.
func IngestSummary(docsAdded int) string {
	return fmt.Sprintf("Done: added %d documents", docsAdded)
}

// HealthSummary formats a successful health check.
func HealthSummary(status, loadedDocs string) string {
	if loadedDocs == "" {
		loadedDocs = "0"
	}
	return fmt.Sprintf("Service %s: %s documents loaded", status, loadedDocs)
}
