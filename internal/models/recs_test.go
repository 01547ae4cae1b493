package models

import (
	"strings"
	"testing"
)

func TestFormatRecs(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{"single quoted list", `['HubSpot', 'Salesforce']`, "HubSpot, Salesforce"},
		{"double quoted list", `["Nike", "Brooks", "Asics"]`, "Nike, Brooks, Asics"},
		{"json list", `["Casper","Purple"]`, "Casper, Purple"},
		{"single item", `['Lavazza']`, "Lavazza"},
		{"empty list", `[]`, ""},
		{"plain text passes through", "HubSpot, Salesforce", "HubSpot, Salesforce"},
		{"empty string passes through", "", ""},
		{"escaped quote", `['O\'Reilly', 'Wiley']`, "O'Reilly, Wiley"},
		{"item with comma", `['Johnson, Inc', 'Acme']`, "Johnson, Inc, Acme"},
		{"leading whitespace", `  ['A', 'B']`, "A, B"},
		{"malformed interior quote", `['HubSpot, 'Salesforce']`, `['HubSpot, 'Salesforce']`},
		{"malformed missing bracket", `['HubSpot', 'Salesforce'`, `['HubSpot', 'Salesforce'`},
		{"malformed bare items", `[HubSpot, Salesforce]`, `[HubSpot, Salesforce]`},
		{"trailing garbage", `['A'] extra`, `['A'] extra`},
		{"nested list passes through", `[['A'], ['B']]`, `[['A'], ['B']]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatRecs(tt.raw); got != tt.expected {
				t.Errorf("FormatRecs(%q) = %q, want %q", tt.raw, got, tt.expected)
			}
		})
	}
}

func TestFormatRecsSeparatorCount(t *testing.T) {
	// A well-formed list of N items joins with exactly N-1 separators.
	tests := []struct {
		name  string
		raw   string
		items int
	}{
		{"one item", `['A']`, 1},
		{"two items", `['A', 'B']`, 2},
		{"five items", `['A', 'B', 'C', 'D', 'E']`, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatRecs(tt.raw)
			separators := strings.Count(got, ", ")
			if separators != tt.items-1 {
				t.Errorf("FormatRecs(%q) = %q with %d separators, want %d", tt.raw, got, separators, tt.items-1)
			}
		})
	}
}

func TestFormatRecsNeverPanics(t *testing.T) {
	inputs := []string{
		"[", "]", "[[", "[']", `['`, `["`, "[,,,]", "[ ]", "['a',]", `['a' 'b']`,
	}
	for _, raw := range inputs {
		// Must not panic; malformed input passes through or parses safely.
		_ = FormatRecs(raw)
	}
}
