package models

import (
	"encoding/json"
	"strings"
)

// FormatRecs renders an llm_recs value for display. Values that textually
// encode a list (leading "[") are parsed with a restricted parser and the
// items joined with ", ". Anything that fails to parse is returned
// unchanged; this function never treats input as code and never errors.
func FormatRecs(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "[") {
		return raw
	}

	if items, ok := parseJSONList(trimmed); ok {
		return strings.Join(items, ", ")
	}
	if items, ok := parseQuotedList(trimmed); ok {
		return strings.Join(items, ", ")
	}
	return raw
}

// parseJSONList accepts a JSON array of strings.
func parseJSONList(s string) ([]string, bool) {
	var items []string
	if err := json.Unmarshal([]byte(s), &items); err != nil {
		return nil, false
	}
	return items, true
}

// parseQuotedList accepts the bracketed quoted-item form the upstream
// export produces, e.g. ['HubSpot', 'Salesforce']. Only quoted strings,
// commas, and whitespace are allowed between the brackets; everything else
// is a parse failure.
func parseQuotedList(s string) ([]string, bool) {
	runes := []rune(s)
	i := 0

	skipSpace := func() {
		for i < len(runes) && (runes[i] == ' ' || runes[i] == '\t') {
			i++
		}
	}

	if i >= len(runes) || runes[i] != '[' {
		return nil, false
	}
	i++

	var items []string
	for {
		skipSpace()
		if i >= len(runes) {
			return nil, false
		}
		if runes[i] == ']' {
			i++
			break
		}

		quote := runes[i]
		if quote != '\'' && quote != '"' {
			return nil, false
		}
		i++

		var item strings.Builder
		closed := false
		for i < len(runes) {
			if runes[i] == '\\' && i+1 < len(runes) {
				item.WriteRune(runes[i+1])
				i += 2
				continue
			}
			if runes[i] == quote {
				closed = true
				i++
				break
			}
			item.WriteRune(runes[i])
			i++
		}
		if !closed {
			return nil, false
		}
		items = append(items, item.String())

		skipSpace()
		if i >= len(runes) {
			return nil, false
		}
		switch runes[i] {
		case ',':
			i++
		case ']':
		default:
			return nil, false
		}
	}

	skipSpace()
	if i != len(runes) {
		return nil, false
	}
	return items, true
}
