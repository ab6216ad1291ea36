package models

import "testing"

func TestNormalizedURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"example.com", "https://example.com"},
		{"www.example.com/page", "https://www.example.com/page"},
		{"http://example.com", "http://example.com"},
		{"https://example.com", "https://example.com"},
		{"ftp://example.com", "https://ftp://example.com"},
	}

	for _, tt := range tests {
		r := AnalyzeRequest{URL: tt.in}
		if got := r.NormalizedURL(); got != tt.want {
			t.Errorf("NormalizedURL(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
