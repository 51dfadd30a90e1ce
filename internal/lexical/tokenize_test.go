package lexical

import (
	"slices"
	"strings"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"simple", "Blue wireless mouse", []string{"blue", "wireless", "mouse"}},
		{"punctuation", "Price: $19.99!", []string{"price", "19", "99"}},
		{"hyphen and apostrophe", "courier's e-mail", []string{"courier", "s", "e", "mail"}},
		{"whitespace runs", "  a\t\tb\n c  ", []string{"a", "b", "c"}},
		{"non ascii letters", "café über", []string{"caf", "ber"}},
		{"empty", "", []string{}},
		{"only symbols", "!!! ???", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.in)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("Tokenize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTokenize_Idempotent(t *testing.T) {
	inputs := []string{
		"Product name: Mouse. Description: Blue wireless mouse. Category: electronics. Price: 19.99",
		"Policy title: Returns.\nDetails: 30-day window; no questions asked!",
		"ÀÉÎ õü 123abc",
		"",
	}
	for _, in := range inputs {
		once := Tokenize(in)
		twice := Tokenize(strings.Join(once, " "))
		if !slices.Equal(once, twice) {
			t.Errorf("not idempotent for %q: %q vs %q", in, once, twice)
		}
	}
}
