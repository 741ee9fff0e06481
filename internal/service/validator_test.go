package service

import "testing"

func TestValidate(t *testing.T) {
	v := NewAnswerValidator()

	cases := []struct {
		name    string
		user    string
		correct string
		want    bool
	}{
		{"exact match", "42", "42", true},
		{"surrounding whitespace", "  42 ", "42", true},
		{"case insensitive", "Seven", "seven", true},
		{"collapsed inner whitespace", "three   fourths", "three fourths", true},
		{"decimal comma", "0,75", "0.75", true},
		{"fraction equals decimal", "3/4", "0.75", true},
		{"decimal equals fraction", "0.5", "1/2", true},
		{"unreduced fraction", "2/4", "1/2", true},
		{"integer as decimal", "7.0", "7", true},
		{"wrong number", "41", "42", false},
		{"wrong fraction", "2/3", "3/4", false},
		{"wrong text", "eight", "seven", false},
		{"empty answer", "", "42", false},
		{"text against number", "forty two", "42", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := v.Validate(tc.user, tc.correct); got != tc.want {
				t.Fatalf("Validate(%q, %q) = %v, want %v", tc.user, tc.correct, got, tc.want)
			}
		})
	}
}
