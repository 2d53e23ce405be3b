package tokenizer

import (
	"reflect"
	"testing"
)

func TestFields(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty string", "", []string{}},
		{"only whitespace", " \t\n ", []string{}},
		{"single spaces", "1 2 3 4 0.5", []string{"1", "2", "3", "4", "0.5"}},
		{"mixed whitespace", "1  2\t3 4 0.5", []string{"1", "2", "3", "4", "0.5"}},
		{"leading/trailing spaces", "  a b  ", []string{"a", "b"}},
		{"trailing newline", "1 2\r\n", []string{"1", "2"}},
		{"unicode space", "1 2", []string{"1", "2"}},
		{"punctuation kept", "-1 +2 x", []string{"-1", "+2", "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Fields(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Fields(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
