package mailer

import (
	"testing"
)

func TestEnvelopeAddress(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"no-reply@example.com", "no-reply@example.com"},
		{"Contact Form <no-reply@example.com>", "no-reply@example.com"},
		{"<no-reply@example.com>", "no-reply@example.com"},
		{"Broken <no-reply@example.com", "Broken <no-reply@example.com"},
	}

	for _, tc := range cases {
		if got := envelopeAddress(tc.in); got != tc.want {
			t.Errorf("envelopeAddress(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
