package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linode/legacy-to-techdocs/internal/models"
)

func testTranslator(t *testing.T) *Translator {
	t.Helper()
	legacy, target := testIndexes(t)
	return New(legacy, target)
}

func TestTranslator_Translate(t *testing.T) {
	tr := testTranslator(t)

	got, err := tr.Translate("https://www.linode.com/docs/api/domains/#domain-record-view")
	require.NoError(t, err)
	assert.Equal(t, "https://techdocs.akamai.com/linode-api/reference/get-domain-record", got)
}

func TestTranslator_TranslateSingularizedResource(t *testing.T) {
	tr := testTranslator(t)

	got, err := tr.Translate("https://www.linode.com/docs/api/linode-types/#type-view")
	require.NoError(t, err)
	assert.Equal(t, "https://techdocs.akamai.com/linode-api/reference/get-linode-type", got)
}

func TestTranslator_TranslateNotLegacy(t *testing.T) {
	tr := testTranslator(t)

	_, err := tr.Translate("https://example.com/nothing")
	var formatErr *models.URLFormatError
	assert.ErrorAs(t, err, &formatErr)
}

func TestTranslator_CustomBaseURL(t *testing.T) {
	legacy, target := testIndexes(t)
	tr := NewWithBaseURL(legacy, target, "https://docs.example.com/ref")

	got, err := tr.Translate("https://www.linode.com/docs/api/linode-types/#type-view")
	require.NoError(t, err)
	assert.Equal(t, "https://docs.example.com/ref/get-linode-type", got)
}

func TestTranslator_ReplaceAll(t *testing.T) {
	tr := testTranslator(t)

	content := `Intro text.
See [domain records](https://www.linode.com/docs/api/domains/#domain-record-view) for details.
Also https://www.linode.com/docs/api/linode-types/#type-view here.
Unrelated https://example.com/page stays.
`

	updated, replacements, skips := tr.ReplaceAll(content, "guide.md")
	assert.Empty(t, skips)
	require.Len(t, replacements, 2)

	assert.Contains(t, updated, "https://techdocs.akamai.com/linode-api/reference/get-domain-record)")
	assert.Contains(t, updated, "https://techdocs.akamai.com/linode-api/reference/get-linode-type ")
	assert.Contains(t, updated, "https://example.com/page")
	assert.NotContains(t, updated, "linode.com/docs/api")

	first := replacements[0]
	assert.Equal(t, "guide.md", first.File)
	assert.Equal(t, 2, first.Line)
	assert.Equal(t, "https://www.linode.com/docs/api/domains/#domain-record-view", first.Before)
	assert.Equal(t, "https://techdocs.akamai.com/linode-api/reference/get-domain-record", first.After)
}

func TestTranslator_ReplaceAllReportsSkips(t *testing.T) {
	tr := testTranslator(t)

	content := "bad link https://www.linode.com/docs/api/object-storage/#bucket-view here\n"

	updated, replacements, skips := tr.ReplaceAll(content, "guide.md")
	assert.Empty(t, replacements)
	require.Len(t, skips, 1)

	// The unresolved URL is left untouched.
	assert.Equal(t, content, updated)
	assert.Equal(t, "https://www.linode.com/docs/api/object-storage/#bucket-view", skips[0].URL)
	assert.Equal(t, 1, skips[0].Line)
	assert.Contains(t, skips[0].Reason, "not found in legacy spec")
}

func TestTranslator_ReplaceAllIdempotent(t *testing.T) {
	tr := testTranslator(t)

	content := "See https://www.linode.com/docs/api/domains/#domain-record-view now.\n"

	once, replacements, _ := tr.ReplaceAll(content, "")
	require.Len(t, replacements, 1)

	twice, replacements, skips := tr.ReplaceAll(once, "")
	assert.Equal(t, once, twice)
	assert.Empty(t, replacements)
	assert.Empty(t, skips)
}

func TestTranslator_ReplaceAllNoMatches(t *testing.T) {
	tr := testTranslator(t)

	content := "nothing legacy-shaped here\n"
	updated, replacements, skips := tr.ReplaceAll(content, "")
	assert.Equal(t, content, updated)
	assert.Empty(t, replacements)
	assert.Empty(t, skips)
}

func TestURLBuilder_Build(t *testing.T) {
	b := NewURLBuilder("")

	got, err := b.Build(&models.ResolvedMapping{OperationID: "get-domain-record"})
	require.NoError(t, err)
	assert.Equal(t, "https://techdocs.akamai.com/linode-api/reference/get-domain-record", got)

	// Spec-provided docs links win over the constructed form.
	got, err = b.Build(&models.ResolvedMapping{
		OperationID:     "get-domain-record",
		ExternalDocsURL: "https://techdocs.akamai.com/linode-api/reference/custom-page",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://techdocs.akamai.com/linode-api/reference/custom-page", got)

	// Identifiers are normalized to lowercase hyphenated form.
	got, err = b.Build(&models.ResolvedMapping{OperationID: "Get_Domain_Record"})
	require.NoError(t, err)
	assert.Equal(t, "https://techdocs.akamai.com/linode-api/reference/get-domain-record", got)
}

func TestURLBuilder_IncompleteMapping(t *testing.T) {
	b := NewURLBuilder("")

	_, err := b.Build(&models.ResolvedMapping{Method: "GET", Path: "/domains"})
	var incomplete *models.IncompleteMappingError
	assert.ErrorAs(t, err, &incomplete)
}
