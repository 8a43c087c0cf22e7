package core

import "testing"

func TestSummarizeTitle(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"short message kept whole", "What is Go", "What is Go"},
		{"exactly six words", "one two three four five six", "one two three four five six"},
		{"long message truncated", "tell me all about the best web frameworks today", "tell me all about the best..."},
		{"collapses extra whitespace", "  spaced   out	message  ", "spaced out message"},
		{"empty input", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SummarizeTitle(tt.in); got != tt.want {
				t.Fatalf("SummarizeTitle(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
