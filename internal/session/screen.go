package session

import (
	"fmt"
	"io"
	"sync"

	"github.com/preston-bernstein/nba-coach-client/internal/render"
)

// Screen is the single result area. Every Show replaces its whole content.
//
// Each action claims a token with Begin; Commit only lands when no newer action
// has begun since, so the most recently started action owns the final output.
type Screen struct {
	mu      sync.Mutex
	out     io.Writer
	current render.View
	latest  uint64
}

// NewScreen mirrors every shown view to out. out may be nil.
func NewScreen(out io.Writer) *Screen {
	return &Screen{out: out}
}

// Begin claims a new token and shows the loading view unconditionally.
func (s *Screen) Begin(loading render.View) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latest++
	s.show(loading)
	return s.latest
}

// Commit shows view if token is still the latest. It reports whether the view landed.
func (s *Screen) Commit(token uint64, view render.View) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if token != s.latest {
		return false
	}
	s.show(view)
	return true
}

// Show replaces the content outside of any action.
func (s *Screen) Show(view render.View) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.show(view)
}

// Current returns what the result area holds now.
func (s *Screen) Current() render.View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func (s *Screen) show(view render.View) {
	s.current = view
	if s.out != nil {
		fmt.Fprintln(s.out, view.Text)
	}
}
