package textutil

import (
	"bytes"
	"testing"
)

func TestTrim(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"single space", " ", ""},
		{"all whitespace", " \t\r\n\f\v ", ""},
		{"no whitespace", "hello", "hello"},
		{"leading", "   hello", "hello"},
		{"trailing", "hello \t", "hello"},
		{"both", "  leading and trailing  ", "leading and trailing"},
		{"interior kept", "a \t b", "a \t b"},
		{"crlf", "line\r\n", "line"},
		{"single char", "x", "x"},
		{"single char padded", "\tx\n", "x"},
		{"nbsp is content", "\u00a0x\u00a0", "\u00a0x\u00a0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Trim([]byte(tt.input))
			if string(got) != tt.want {
				t.Errorf("Trim(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTrimIdempotent(t *testing.T) {
	inputs := []string{"", "   ", "  a b  ", "\tx\r", "abc", " \v\fq\f\v "}
	for _, in := range inputs {
		once := Trim([]byte(in))
		twice := Trim(once)
		if !bytes.Equal(once, twice) {
			t.Errorf("Trim not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestTrimDoesNotMutate(t *testing.T) {
	in := []byte("  keep  me  ")
	orig := append([]byte(nil), in...)
	got := Trim(in)
	if !bytes.Equal(in, orig) {
		t.Errorf("input mutated: got %q, want %q", in, orig)
	}
	if !bytes.Contains(orig, got) {
		t.Errorf("result %q is not a contiguous part of %q", got, orig)
	}
}

func TestIsBlank(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"\t\r", true},
		{" x ", false},
		{".", false},
	}
	for _, tt := range tests {
		if got := IsBlank([]byte(tt.input)); got != tt.want {
			t.Errorf("IsBlank(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestIsSpace(t *testing.T) {
	for _, c := range []byte(" \t\n\r\f\v") {
		if !IsSpace(c) {
			t.Errorf("IsSpace(%q) = false, want true", c)
		}
	}
	for _, c := range []byte("a0_\x00\x7f") {
		if IsSpace(c) {
			t.Errorf("IsSpace(%q) = true, want false", c)
		}
	}
}
