package models

// Operation is the condensed form of a single OpenAPI operation: just the
// fields needed to key docs URLs and to build TechDocs links. It is built
// once during spec indexing and is immutable afterwards.
type Operation struct {
	Method          string `json:"method"`                    // GET, POST, PUT, PATCH, DELETE
	Path            string `json:"path"`                      // Raw path template, e.g. /domains/{domainId}
	ShapePath       string `json:"shapePath"`                 // Path with parameter names stripped, e.g. /domains/{}
	OperationID     string `json:"operationId,omitempty"`     // From the OpenAPI spec, may be empty in legacy specs
	Summary         string `json:"summary,omitempty"`         // e.g. "Domain Record View"
	Tag             string `json:"tag,omitempty"`             // First tag, e.g. "Domains"
	TagSlug         string `json:"tagSlug,omitempty"`         // URL-flattened tag, e.g. "domains"
	SummarySlug     string `json:"summarySlug,omitempty"`     // URL-flattened summary, e.g. "domain-record-view"
	ExternalDocsURL string `json:"externalDocsUrl,omitempty"` // Per-operation docs link, when the spec carries one
	ParamCount      int    `json:"paramCount"`                // Number of path parameters
}

// Same reports whether two condensed operations describe the same logical
// operation. Index building treats a key collision between non-Same
// operations as a conflict.
func (o *Operation) Same(other *Operation) bool {
	if o == nil || other == nil {
		return o == other
	}
	return o.Method == other.Method &&
		o.ShapePath == other.ShapePath &&
		o.OperationID == other.OperationID
}
