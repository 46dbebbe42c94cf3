package collector

import (
	"reflect"
	"testing"
)

func TestLexicalKeywords(t *testing.T) {
	l := NewLexicalAnalyzer(
		[]string{"secure", "login", "verify", "account"},
		[]string{".tk", ".ml"},
	)

	tests := []struct {
		name   string
		domain string
		want   []string
	}{
		{"no match", "example.com", nil},
		{"single", "login-portal.com", []string{"login"}},
		{"scan order is config order", "verify-secure-login.com", []string{"secure", "login", "verify"}},
		{"duplicate substring counted once", "login-login-login.com", []string{"login"}},
		{"case insensitive", "SECURE-Account.COM", []string{"secure", "account"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _, _ := l.Analyze(tt.domain)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Analyze(%q) keywords = %v, want %v", tt.domain, got, tt.want)
			}
		})
	}
}

func TestLexicalRiskyTLD(t *testing.T) {
	l := NewLexicalAnalyzer([]string{"secure"}, []string{".tk", ".ml", ".xyz"})

	tests := []struct {
		domain string
		want   bool
	}{
		{"example.tk", true},
		{"example.xyz", true},
		{"example.com", false},
		{"tk.example.com", false}, // risky string in a label, not the TLD
		{"sub.domain.ml", true},
	}

	for _, tt := range tests {
		_, risky, _ := l.Analyze(tt.domain)
		if risky != tt.want {
			t.Errorf("Analyze(%q) riskyTLD = %v, want %v", tt.domain, risky, tt.want)
		}
	}
}

func TestLexicalPunycode(t *testing.T) {
	l := NewLexicalAnalyzer([]string{"secure"}, []string{".tk"})

	tests := []struct {
		domain string
		want   bool
	}{
		{"example.com", false},
		{"xn--mnchen-3ya.de", true},
		{"mail.xn--mnchen-3ya.de", true},
		{"xnot-a-prefix.com", false}, // "xn" must be the full label prefix "xn--"
	}

	for _, tt := range tests {
		_, _, puny := l.Analyze(tt.domain)
		if puny != tt.want {
			t.Errorf("Analyze(%q) isPunycode = %v, want %v", tt.domain, puny, tt.want)
		}
	}
}
