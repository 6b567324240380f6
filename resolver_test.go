package capriblue

import (
	"net/url"
	"testing"
)

func TestResolverReturnsLangParam(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"plain code", "lang=fr", "fr"},
		{"regional code", "lang=pt-BR", "pt-BR"},
		{"kept verbatim, no normalization", "lang=FR", "FR"},
		{"surrounding blanks trimmed", "lang=%20fr%20", "fr"},
		{"malformed pair before", "a%zz=1&lang=fr", "fr"},
		{"malformed pair after", "lang=fr&a%zz=1", "fr"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := &url.URL{Path: "/", RawQuery: tt.query}
			if got := (Resolver{Default: "de"}).Resolve(u); got != tt.want {
				t.Fatalf("Resolve(?%s) = %q, want %q", tt.query, got, tt.want)
			}
		})
	}
}

func TestResolverFallsBackToDefault(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"no query", ""},
		{"other params only", "tag=go"},
		{"blank value", "lang="},
		{"whitespace value", "lang=%20%20"},
		{"undecodable lang pair", "lang=%zz"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := &url.URL{Path: "/", RawQuery: tt.query}
			if got := (Resolver{Default: "de"}).Resolve(u); got != "de" {
				t.Fatalf("Resolve(?%s) = %q, want configured default %q", tt.query, got, "de")
			}
		})
	}
}

func TestResolverDefaultWithoutConfiguration(t *testing.T) {
	if got := (Resolver{}).Resolve(&url.URL{Path: "/"}); got != "en" {
		t.Fatalf("Resolve with empty config = %q, want en", got)
	}
	if got := (Resolver{}).Resolve(nil); got != "en" {
		t.Fatalf("Resolve(nil) = %q, want en", got)
	}
}
