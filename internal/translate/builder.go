package translate

import (
	"strings"

	"github.com/linode/legacy-to-techdocs/internal/models"
)

// DefaultTechDocsBaseURL is the reference page prefix on the TechDocs site.
const DefaultTechDocsBaseURL = "https://techdocs.akamai.com/linode-api/reference/"

// URLBuilder formats resolved mappings as TechDocs reference URLs.
type URLBuilder struct {
	baseURL string
}

// NewURLBuilder returns a builder rooted at baseURL, defaulting to the
// TechDocs reference prefix.
func NewURLBuilder(baseURL string) URLBuilder {
	if baseURL == "" {
		baseURL = DefaultTechDocsBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return URLBuilder{baseURL: baseURL}
}

// Build returns the TechDocs URL for a resolved mapping. An operation that
// carries its own external docs link wins over the constructed form; the
// fragment-free reference page is used otherwise.
func (b URLBuilder) Build(mapping *models.ResolvedMapping) (string, error) {
	if mapping.ExternalDocsURL != "" {
		return mapping.ExternalDocsURL, nil
	}
	if mapping.OperationID == "" {
		return "", &models.IncompleteMappingError{Method: mapping.Method, Path: mapping.Path}
	}

	slug := strings.ToLower(strings.ReplaceAll(mapping.OperationID, "_", "-"))
	return b.baseURL + slug, nil
}
