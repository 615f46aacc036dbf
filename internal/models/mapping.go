package models

// ResolvedMapping is the outcome of resolving a legacy URL against the new
// spec: everything the URL builder needs to emit a TechDocs link.
type ResolvedMapping struct {
	OperationID     string `json:"operationId,omitempty"`
	Path            string `json:"path,omitempty"`
	Method          string `json:"method,omitempty"`
	ExternalDocsURL string `json:"externalDocsUrl,omitempty"`
}

// Replacement records one URL rewritten inside a text body.
type Replacement struct {
	Before string `json:"before"`
	After  string `json:"after"`
	File   string `json:"file,omitempty"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

// Skip records a legacy-shaped URL that could not be converted and was left
// untouched in the output.
type Skip struct {
	URL    string `json:"url"`
	File   string `json:"file,omitempty"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
	Reason string `json:"reason"`
}
