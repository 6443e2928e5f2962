package gekko

import (
	"errors"
	"strings"
)

// FormatError renders err and the errors it wraps one per line, outermost
// first, with the text each layer adds on its own. Multi-line driver logs
// are kept intact under the layer that carries them.
func FormatError(err error) string {
	if err == nil {
		return ""
	}

	var layers []string
	for err != nil {
		msg := err.Error()
		next := errors.Unwrap(err)
		if next != nil {
			msg = strings.TrimSuffix(strings.TrimSuffix(msg, next.Error()), ": ")
		}
		if msg != "" {
			layers = append(layers, msg)
		}
		err = next
	}

	var b strings.Builder
	for i, l := range layers {
		if i > 0 {
			b.WriteString("\n")
			b.WriteString(strings.Repeat("  ", i-1))
			b.WriteString("caused by: ")
		}
		b.WriteString(l)
	}
	return b.String()
}
