package input

import (
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/pflag"

	"github.com/preston-bernstein/nba-coach-client/internal/domain/coach"
)

type mapSource map[string]string

func (m mapSource) Field(name string) string { return m[name] }

func TestParseLastNumericStrings(t *testing.T) {
	for _, n := range []int{1, 5, 10, 12, 82, 1000} {
		raw := strconv.Itoa(n)
		if got := ParseLast(raw); got != n {
			t.Fatalf("expected %d for %q, got %d", n, raw, got)
		}
	}
	if got := ParseLast("  7 "); got != 7 {
		t.Fatalf("expected surrounding whitespace to be ignored, got %d", got)
	}
}

func TestParseLastFallsBackToDefault(t *testing.T) {
	for _, raw := range []string{"", "   ", "abc", "12abc", "3.5", "0", "-4", "NaN"} {
		if got := ParseLast(raw); got != coach.DefaultLast {
			t.Fatalf("expected default for %q, got %d", raw, got)
		}
	}
}

func TestReaderIngestTrimsText(t *testing.T) {
	r := NewReader(mapSource{
		FieldTeam:   "  BOS ",
		FieldSeason: "\t2024-25\n",
		FieldLast:   "15",
	})

	got := r.Ingest()
	want := coach.IngestRequest{Team: "BOS", Season: "2024-25", Last: 15}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ingest request mismatch (-want +got):\n%s", diff)
	}
}

func TestReaderRecommendAllowsEmptyFields(t *testing.T) {
	r := NewReader(mapSource{FieldOpponent: "  NYK  "})

	got := r.Recommend()
	want := coach.RecommendRequest{Opponent: "NYK"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("recommend request mismatch (-want +got):\n%s", diff)
	}
}

func TestReaderReadsAtCallTime(t *testing.T) {
	form := NewForm(map[string]string{FieldTeam: "BOS"})
	r := NewReader(form)

	if got := r.Ingest().Team; got != "BOS" {
		t.Fatalf("expected BOS, got %s", got)
	}
	if err := form.Set(FieldTeam, "LAL"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := r.Ingest().Team; got != "LAL" {
		t.Fatalf("expected reader to see updated value LAL, got %s", got)
	}
}

func TestNilReaderReadsEmpty(t *testing.T) {
	var r *Reader
	if got := r.Ingest(); got.Last != coach.DefaultLast || got.Team != "" {
		t.Fatalf("expected empty request with default last, got %+v", got)
	}
}

func TestFormRejectsUnknownFields(t *testing.T) {
	form := NewForm(map[string]string{"bogus": "x"})
	if err := form.Set("bogus", "y"); err == nil {
		t.Fatalf("expected error for unknown field")
	}
	if _, ok := form.Values()["bogus"]; ok {
		t.Fatalf("expected unknown initial key to be dropped")
	}
}

func TestFlagSourceReadsFlags(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String(FieldTeam, "BOS", "")
	flags.Int(FieldLast, 10, "")
	if err := flags.Parse([]string{"--team", "MIA", "--last", "4"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}

	src := NewFlagSource(flags)
	if got := src.Field(FieldTeam); got != "MIA" {
		t.Fatalf("expected MIA, got %s", got)
	}
	if got := src.Field(FieldLast); got != "4" {
		t.Fatalf("expected 4, got %s", got)
	}
	if got := src.Field(FieldOpponent); got != "" {
		t.Fatalf("expected empty for undefined flag, got %s", got)
	}
}
