package textutil

import "testing"

func TestCollapse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"runs", "AAA BBB AAA", "A B A"},
		{"noRuns", "ABC", "ABC"},
		{"empty", "", ""},
		{"single", "x", "x"},
		{"allSame", "zzzzzz", "z"},
		{"interleaved", "aabbaabb", "abab"},
		{"multibyte", "ééé日日本", "é日本"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Collapse(tt.in)
			if got != tt.want {
				t.Errorf("Collapse(%q) = %q, want %q", tt.in, got, tt.want)
			}
			// Collapsing is idempotent
			if again := Collapse(got); again != got {
				t.Errorf("Collapse(%q) = %q, not a fixed point", got, again)
			}
		})
	}
}
