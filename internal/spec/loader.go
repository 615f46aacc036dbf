package spec

import (
	"os"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/linode/legacy-to-techdocs/internal/models"
)

// LoadFile loads an OpenAPI document (YAML or JSON) from disk and builds its
// operation index.
func LoadFile(path string) (*Index, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, models.NewSpecParseError(path, err)
	}
	return LoadBytes(data, path)
}

// LoadBytes parses and validates an OpenAPI document and builds its
// operation index. The source string is used only in error messages.
func LoadBytes(data []byte, source string) (*Index, error) {
	loader := openapi3.NewLoader()
	loader.IsExternalRefsAllowed = true

	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, models.NewSpecParseError(source, err)
	}

	if err := doc.Validate(loader.Context); err != nil {
		return nil, models.NewSpecParseError(source, err)
	}

	return FromDocument(doc)
}

// FromDocument condenses a parsed OpenAPI document into an operation index.
func FromDocument(doc *openapi3.T) (*Index, error) {
	rootDocsURL := ""
	if doc.ExternalDocs != nil {
		rootDocsURL = doc.ExternalDocs.URL
	}

	var ops []*models.Operation

	for pathPattern, pathItem := range doc.Paths.Map() {
		if pathItem == nil {
			continue
		}

		methods := map[string]*openapi3.Operation{
			"GET":    pathItem.Get,
			"POST":   pathItem.Post,
			"PUT":    pathItem.Put,
			"PATCH":  pathItem.Patch,
			"DELETE": pathItem.Delete,
		}

		for method, op := range methods {
			if op == nil {
				continue
			}
			ops = append(ops, condenseOperation(pathPattern, method, op))
		}
	}

	return NewIndex(rootDocsURL, ops)
}

func condenseOperation(pathPattern, method string, op *openapi3.Operation) *models.Operation {
	tag := ""
	if len(op.Tags) > 0 {
		tag = op.Tags[0]
	}

	externalDocsURL := ""
	if op.ExternalDocs != nil {
		externalDocsURL = op.ExternalDocs.URL
	}

	shape := PathShape(pathPattern)

	return &models.Operation{
		Method:          method,
		Path:            pathPattern,
		ShapePath:       shape,
		OperationID:     op.OperationID,
		Summary:         op.Summary,
		Tag:             tag,
		TagSlug:         Slugify(tag),
		SummarySlug:     Slugify(op.Summary),
		ExternalDocsURL: externalDocsURL,
		ParamCount:      strings.Count(shape, "{}"),
	}
}
