package translate

import (
	"regexp"
	"strings"

	"github.com/linode/legacy-to-techdocs/internal/models"
)

// legacyURLPattern matches a legacy API docs URL: an optional scheme/host
// prefix, the /docs/api/ marker, an optional tag segment and an optional
// fragment of the form #<summary>[__<anchor>].
//
// The original convention also required the match to be followed by a
// quote, whitespace, ')' or end of input; RE2 has no lookahead, so that
// boundary is verified separately (see boundaryOK).
var legacyURLPattern = regexp.MustCompile(
	`(?:https://www\.)?linode\.com/docs/api/?([\w-]+)?/?#?([A-Za-z0-9-]+)?(?:__([\w-]+))?`,
)

const legacyURLMarker = "/docs/api"

// ParseLegacyURL decomposes a legacy docs URL into its reference components.
// Returns URLFormatError when the input is not legacy-shaped.
func ParseLegacyURL(raw string) (*models.LegacyURLRef, error) {
	if !strings.Contains(raw, legacyURLMarker) {
		return nil, &models.URLFormatError{URL: raw}
	}

	m := legacyURLPattern.FindStringSubmatchIndex(raw)
	if m == nil {
		return nil, &models.URLFormatError{URL: raw}
	}

	return refFromMatch(raw, m), nil
}

// refFromMatch builds a LegacyURLRef from a submatch index slice produced by
// legacyURLPattern.
func refFromMatch(content string, m []int) *models.LegacyURLRef {
	ref := &models.LegacyURLRef{
		Raw:     content[m[0]:m[1]],
		Tag:     group(content, m, 1),
		Summary: group(content, m, 2),
		Anchor:  group(content, m, 3),
	}

	if ref.Summary != "" {
		ref.Resource, ref.Action = splitFragment(ref.Summary)
	}

	return ref
}

func group(content string, m []int, n int) string {
	if m[2*n] < 0 {
		return ""
	}
	return content[m[2*n]:m[2*n+1]]
}

// boundaryOK reports whether the byte following a match at end is a valid
// URL boundary: a quote, whitespace, ')' or end of input.
func boundaryOK(content string, end int) bool {
	if end >= len(content) {
		return true
	}
	switch content[end] {
	case '"', '\'', ' ', '\t', '\n', '\r', ')':
		return true
	}
	return false
}

// matchLocation returns the 1-based line and column of an offset in content.
func matchLocation(content string, offset int) (line, column int) {
	prefix := content[:offset]
	line = strings.Count(prefix, "\n") + 1
	column = offset - strings.LastIndex(prefix, "\n")
	return line, column
}
