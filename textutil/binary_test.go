package textutil

import "testing"

func TestBinary(t *testing.T) {
	tests := []struct {
		name string
		v    int32
		want string
	}{
		{"zero", 0, "0"},
		{"one", 1, "1"},
		{"fiftyEight", 58, "111010"},
		{"negativeFiftyEight", -58, "11111111111111111111111111000110"},
		{"minusOne", -1, "11111111111111111111111111111111"},
		{"maxInt32", 1<<31 - 1, "1111111111111111111111111111111"},
		{"minInt32", -1 << 31, "10000000000000000000000000000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Binary(tt.v); got != tt.want {
				t.Errorf("Binary(%d) = %q, want %q", tt.v, got, tt.want)
			}
		})
	}
}
