package spec

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/linode/legacy-to-techdocs/internal/models"
)

var (
	nonSlugChars = regexp.MustCompile(`[^a-z0-9- ]`)
	pathParams   = regexp.MustCompile(`\{[^}]+\}`)
)

// Slugify flattens an arbitrary tag or summary into its legacy docs URL
// form: lowercase, punctuation stripped, spaces hyphenated.
// "Domain Record View" -> "domain-record-view".
func Slugify(s string) string {
	flat := nonSlugChars.ReplaceAllString(strings.ToLower(s), "")
	return strings.ReplaceAll(flat, " ", "-")
}

// PathShape strips parameter names from a path template so that templates
// differing only in parameter naming compare equal.
// "/domains/{domainId}" -> "/domains/{}".
func PathShape(path string) string {
	path = strings.TrimSuffix(path, "/")
	return pathParams.ReplaceAllString(path, "{}")
}

type docsKey struct {
	Tag     string
	Summary string
}

type shapeKey struct {
	Path   string
	Method string
}

// Index is the queryable form of one OpenAPI document. It is built once per
// spec and read-only afterwards, so concurrent readers need no locking.
//
// The exported fields are the serialized form used by the baked cache; the
// lookup maps are rebuilt from them via Reindex.
type Index struct {
	RootDocsURL string              `json:"rootDocsUrl,omitempty"`
	Operations  []*models.Operation `json:"operations"`

	byDocs  map[docsKey]*models.Operation
	byShape map[shapeKey]*models.Operation
	byID    map[string]*models.Operation
	byTag   map[string][]*models.Operation
}

// NewIndex builds an index over the given condensed operations, rejecting
// key collisions between distinct operations.
func NewIndex(rootDocsURL string, ops []*models.Operation) (*Index, error) {
	idx := &Index{RootDocsURL: rootDocsURL, Operations: ops}
	if err := idx.Reindex(); err != nil {
		return nil, err
	}
	return idx, nil
}

// Reindex rebuilds the lookup maps from Operations. Called by NewIndex and
// after deserializing a baked cache.
func (idx *Index) Reindex() error {
	// Deterministic insertion order makes conflict reports reproducible.
	sort.Slice(idx.Operations, func(i, j int) bool {
		a, b := idx.Operations[i], idx.Operations[j]
		if a.ShapePath != b.ShapePath {
			return a.ShapePath < b.ShapePath
		}
		return a.Method < b.Method
	})

	idx.byDocs = make(map[docsKey]*models.Operation)
	idx.byShape = make(map[shapeKey]*models.Operation)
	idx.byID = make(map[string]*models.Operation)
	idx.byTag = make(map[string][]*models.Operation)

	for _, op := range idx.Operations {
		sk := shapeKey{Path: op.ShapePath, Method: op.Method}
		if existing, ok := idx.byShape[sk]; ok && !existing.Same(op) {
			return &models.SpecIndexConflictError{
				Key:         fmt.Sprintf("%s %s", sk.Method, sk.Path),
				Existing:    operationLabel(existing),
				Conflicting: operationLabel(op),
			}
		}
		idx.byShape[sk] = op

		if op.OperationID != "" {
			if existing, ok := idx.byID[op.OperationID]; ok && !existing.Same(op) {
				return &models.SpecIndexConflictError{
					Key:         op.OperationID,
					Existing:    operationLabel(existing),
					Conflicting: operationLabel(op),
				}
			}
			idx.byID[op.OperationID] = op
		}

		if op.TagSlug != "" {
			idx.byTag[op.TagSlug] = append(idx.byTag[op.TagSlug], op)

			if op.SummarySlug != "" {
				dk := docsKey{Tag: op.TagSlug, Summary: op.SummarySlug}
				if existing, ok := idx.byDocs[dk]; ok && !existing.Same(op) {
					return &models.SpecIndexConflictError{
						Key:         fmt.Sprintf("(%s, %s)", dk.Tag, dk.Summary),
						Existing:    operationLabel(existing),
						Conflicting: operationLabel(op),
					}
				}
				idx.byDocs[dk] = op
			}
		}
	}

	return nil
}

// ByDocsKey looks up an operation by its legacy docs URL components.
func (idx *Index) ByDocsKey(tagSlug, summarySlug string) (*models.Operation, bool) {
	op, ok := idx.byDocs[docsKey{Tag: tagSlug, Summary: summarySlug}]
	return op, ok
}

// ByShape looks up an operation by stripped path template and HTTP method.
func (idx *Index) ByShape(shapePath, method string) (*models.Operation, bool) {
	op, ok := idx.byShape[shapeKey{Path: shapePath, Method: method}]
	return op, ok
}

// ByOperationID looks up an operation by its spec-defined identifier.
func (idx *Index) ByOperationID(id string) (*models.Operation, bool) {
	op, ok := idx.byID[id]
	return op, ok
}

// ByTag returns all operations carrying the given tag slug, in the index's
// deterministic order.
func (idx *Index) ByTag(tagSlug string) []*models.Operation {
	return idx.byTag[tagSlug]
}

// Len returns the number of indexed operations.
func (idx *Index) Len() int { return len(idx.Operations) }

func operationLabel(op *models.Operation) string {
	if op.OperationID != "" {
		return op.OperationID
	}
	return fmt.Sprintf("%s %s", op.Method, op.Path)
}
