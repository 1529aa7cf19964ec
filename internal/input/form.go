package input

import (
	"fmt"
	"sync"
)

// Form is a mutable Source, the terminal stand-in for the page's text inputs.
type Form struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewForm returns a form pre-filled with initial. Unknown keys are ignored.
func NewForm(initial map[string]string) *Form {
	f := &Form{values: make(map[string]string, len(Fields))}
	for _, name := range Fields {
		f.values[name] = initial[name]
	}
	return f
}

// Field returns the current raw text of name.
func (f *Form) Field(name string) string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.values[name]
}

// Set replaces the raw text of a known field.
func (f *Form) Set(name, value string) error {
	if !known(name) {
		return fmt.Errorf("unknown field %q", name)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[name] = value
	return nil
}

// Values returns a copy of the current field values.
func (f *Form) Values() map[string]string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make(map[string]string, len(f.values))
	for k, v := range f.values {
		out[k] = v
	}
	return out
}

func known(name string) bool {
	for _, f := range Fields {
		if f == name {
			return true
		}
	}
	return false
}
