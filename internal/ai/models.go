package ai

import "strings"

// DestinationCandidate is one suggested destination line, e.g.
// "Bali - Ngurah Rai International Airport (DPS)". AirportCode is empty when
// no parenthesized code could be extracted; such candidates stay in the list
// but cannot be used for flight lookup.
type DestinationCandidate struct {
	Raw         string `json:"raw"`
	AirportCode string `json:"airport_code,omitempty"`
}

// FlightEligible reports whether the candidate carries a usable airport code.
func (c DestinationCandidate) FlightEligible() bool {
	return c.AirportCode != ""
}

// ParseDestinations splits generated suggestion text into candidates,
// one per non-blank line, preserving order.
func ParseDestinations(text string) []DestinationCandidate {
	var out []DestinationCandidate
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, DestinationCandidate{
			Raw:         line,
			AirportCode: extractAirportCode(line),
		})
	}
	return out
}

// extractAirportCode returns the first parenthesized group in the line,
// trimmed, or "" when the line has no complete "(...)" pair.
func extractAirportCode(line string) string {
	open := strings.Index(line, "(")
	if open < 0 {
		return ""
	}
	end := strings.Index(line[open+1:], ")")
	if end < 0 {
		return ""
	}
	return strings.TrimSpace(line[open+1 : open+1+end])
}
