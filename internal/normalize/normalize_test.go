package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKey(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"hyphenated", "Push-Up", "pushup"},
		{"spaced", "push up", "pushup"},
		{"upper", "PUSHUP", "pushup"},
		{"mixed separators", "Bench - Press", "benchpress"},
		{"tabs and newlines", "sit\tup\n", "situp"},
		{"non-breaking space", "Push\u00a0Up", "pushup"},
		{"ideographic space", "push\u3000up", "pushup"},
		{"empty", "", ""},
		{"only separators", " -- - ", ""},
		{"unicode preserved", "Écarté-Latéral", "écartélatéral"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Key(tt.in))
		})
	}
}

func TestKeyIdempotent(t *testing.T) {
	for _, s := range []string{"Push-Up", "push up", "PUSHUP", "Dead Lift 5x5", "", "a-b c-D"} {
		once := Key(s)
		assert.Equal(t, once, Key(once), "Key must be idempotent for %q", s)
	}
}

func TestKeyEquivalenceClasses(t *testing.T) {
	// Distinct display strings collapse onto one matching key.
	assert.Equal(t, Key("Push-Up"), Key("push up"))
	assert.Equal(t, Key("push up"), Key("PUSHUP"))
}
