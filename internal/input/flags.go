package input

import "github.com/spf13/pflag"

// FlagSource reads form fields from command-line flags of the same name.
type FlagSource struct {
	flags *pflag.FlagSet
}

// NewFlagSource wraps a flag set such as cobra's cmd.Flags().
func NewFlagSource(flags *pflag.FlagSet) FlagSource {
	return FlagSource{flags: flags}
}

// Field returns the flag's current value, or "" when no such flag is defined.
func (s FlagSource) Field(name string) string {
	if s.flags == nil {
		return ""
	}
	f := s.flags.Lookup(name)
	if f == nil {
		return ""
	}
	return f.Value.String()
}
