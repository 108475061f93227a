package account

import (
	"html"

	"github.com/microcosm-cc/bluemonday"
)

// Strict policy: every element and attribute is stripped, only text
// survives.
var sanitizePolicy = bluemonday.StrictPolicy()

// Sanitize neutralizes markup and script-injection sequences in raw,
// leaving plain text untouched. The pass repeats until the value is
// stable, so Sanitize(Sanitize(x)) == Sanitize(x) holds even for
// nested or pre-escaped payloads. Empty input yields "".
func Sanitize(raw string) string {
	out := html.UnescapeString(sanitizePolicy.Sanitize(raw))
	for out != raw {
		raw = out
		out = html.UnescapeString(sanitizePolicy.Sanitize(raw))
	}
	return out
}
