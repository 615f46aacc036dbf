package translate

import (
	"strings"

	"github.com/linode/legacy-to-techdocs/internal/models"
	"github.com/linode/legacy-to-techdocs/internal/spec"
)

// Translator converts legacy docs URLs to TechDocs URLs using a pair of
// operation indexes. Safe for concurrent use once constructed.
type Translator struct {
	resolver *Resolver
	builder  URLBuilder
}

// New returns a translator over the legacy and new spec indexes with the
// default TechDocs base URL.
func New(legacy, target *spec.Index) *Translator {
	return NewWithBaseURL(legacy, target, "")
}

// NewWithBaseURL is New with a custom TechDocs base URL.
func NewWithBaseURL(legacy, target *spec.Index, baseURL string) *Translator {
	return &Translator{
		resolver: NewResolver(legacy, target),
		builder:  NewURLBuilder(baseURL),
	}
}

// Translate converts one legacy docs URL to its TechDocs equivalent.
func (t *Translator) Translate(url string) (string, error) {
	ref, err := ParseLegacyURL(url)
	if err != nil {
		return "", err
	}
	return t.translateRef(ref)
}

func (t *Translator) translateRef(ref *models.LegacyURLRef) (string, error) {
	mapping, err := t.resolver.Resolve(ref)
	if err != nil {
		return "", err
	}
	return t.builder.Build(mapping)
}

// ReplaceAll rewrites every legacy docs URL found in content, returning the
// updated text, the replacements applied and the legacy-shaped URLs that
// could not be converted (left untouched in the output). file is carried
// into the reports only.
//
// Converted URLs are not legacy-shaped, so running ReplaceAll over its own
// output is a no-op.
func (t *Translator) ReplaceAll(content, file string) (string, []models.Replacement, []models.Skip) {
	matches := legacyURLPattern.FindAllStringSubmatchIndex(content, -1)
	if len(matches) == 0 {
		return content, nil, nil
	}

	var (
		out          strings.Builder
		replacements []models.Replacement
		skips        []models.Skip
		last         int
	)

	for _, m := range matches {
		start, end := m[0], m[1]
		out.WriteString(content[last:start])
		last = end

		before := content[start:end]
		if !boundaryOK(content, end) {
			out.WriteString(before)
			continue
		}

		line, column := matchLocation(content, start)
		after, err := t.translateRef(refFromMatch(content, m))
		if err != nil {
			skips = append(skips, models.Skip{
				URL:    before,
				File:   file,
				Line:   line,
				Column: column,
				Reason: err.Error(),
			})
			out.WriteString(before)
			continue
		}

		out.WriteString(after)
		replacements = append(replacements, models.Replacement{
			Before: before,
			After:  after,
			File:   file,
			Line:   line,
			Column: column,
		})
	}

	out.WriteString(content[last:])
	return out.String(), replacements, skips
}
