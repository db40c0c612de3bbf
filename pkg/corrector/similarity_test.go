package corrector

import (
	"math"
	"testing"
)

func TestSimilarity(t *testing.T) {
	tests := []struct {
		a, b string
		want float64
	}{
		{"casa", "casa", 1},
		{"cosa", "casa", 0.75},
		{"revolución", "revolucon", 16.0 / 19.0},
		{"casa", "perro", 0},
	}
	for _, tt := range tests {
		if got := similarity(tt.a, tt.b); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("similarity(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestClosestWord(t *testing.T) {
	tests := []struct {
		word       string
		candidates []string
		want       string
		ok         bool
	}{
		{"revolucon", []string{"social", "revolución", "región"}, "revolución", true},
		// Equal scores keep the first candidate.
		{"casa", []string{"cosa", "masa"}, "cosa", true},
		{"casa", []string{"masa", "cosa"}, "masa", true},
		{"xyzzy", []string{"casa", "cosa"}, "", false},
		{"casa", nil, "", false},
	}
	for _, tt := range tests {
		got, ok := closestWord(tt.word, tt.candidates, DefaultCutoff)
		if got != tt.want || ok != tt.ok {
			t.Errorf("closestWord(%q, %v) = %q, %v, want %q, %v", tt.word, tt.candidates, got, ok, tt.want, tt.ok)
		}
	}
}

func TestRecase(t *testing.T) {
	tests := []struct {
		original, match, want string
	}{
		{"revolucon", "revolución", "revolución"},
		{"REVOLUCON", "revolución", "REVOLUCIÓN"},
		{"Revolucon", "revolución", "Revolución"},
		{"reVolucon", "revolución", "revolución"},
		{"_ABC", "abeja", "ABEJA"},
		{"123", "tres", "tres"},
	}
	for _, tt := range tests {
		if got := recase(tt.original, tt.match); got != tt.want {
			t.Errorf("recase(%q, %q) = %q, want %q", tt.original, tt.match, got, tt.want)
		}
	}
}
