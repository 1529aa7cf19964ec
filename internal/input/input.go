// Package input reads the user's form fields and turns them into service requests.
package input

import (
	"strconv"
	"strings"

	"github.com/preston-bernstein/nba-coach-client/internal/domain/coach"
)

// Field names shared by every Source.
const (
	FieldTeam     = "team"
	FieldSeason   = "season"
	FieldLast     = "last"
	FieldOpponent = "opponent"
)

// Fields lists the recognised field names in display order.
var Fields = []string{FieldTeam, FieldSeason, FieldLast, FieldOpponent}

// Source exposes the raw text currently held by a form field.
// Unknown fields read as the empty string.
type Source interface {
	Field(name string) string
}

// Reader builds requests from whatever the Source holds at call time.
type Reader struct {
	src Source
}

// NewReader wraps src. Values are never cached.
func NewReader(src Source) *Reader {
	return &Reader{src: src}
}

// Ingest reads team, season and last.
func (r *Reader) Ingest() coach.IngestRequest {
	return coach.IngestRequest{
		Team:   r.text(FieldTeam),
		Season: r.text(FieldSeason),
		Last:   ParseLast(r.raw(FieldLast)),
	}
}

// Recommend reads team, season and opponent.
func (r *Reader) Recommend() coach.RecommendRequest {
	return coach.RecommendRequest{
		Team:     r.text(FieldTeam),
		Season:   r.text(FieldSeason),
		Opponent: r.text(FieldOpponent),
	}
}

// ParseLast parses a base-10 game count. Anything that is not a positive integer yields coach.DefaultLast.
func ParseLast(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return coach.DefaultLast
	}
	return n
}

func (r *Reader) text(name string) string {
	return strings.TrimSpace(r.raw(name))
}

func (r *Reader) raw(name string) string {
	if r == nil || r.src == nil {
		return ""
	}
	return r.src.Field(name)
}
