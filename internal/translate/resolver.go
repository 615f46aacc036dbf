package translate

import (
	"strings"

	"github.com/linode/legacy-to-techdocs/internal/models"
	"github.com/linode/legacy-to-techdocs/internal/spec"
)

// matchStrategy is one tier of the new-spec matching order. Tiers are tried
// in sequence; the first one returning candidates wins.
type matchStrategy interface {
	name() string
	match(legacy *models.Operation, idx *spec.Index) []*models.Operation
}

// Resolver finds the new-spec counterpart of a legacy docs URL reference.
// Both indexes are read-only, so a Resolver is safe for concurrent use.
type Resolver struct {
	legacy     *spec.Index
	target     *spec.Index
	strategies []matchStrategy
}

// NewResolver builds a resolver over a legacy and a new spec index.
func NewResolver(legacy, target *spec.Index) *Resolver {
	return &Resolver{
		legacy: legacy,
		target: target,
		strategies: []matchStrategy{
			operationIDStrategy{},
			pathShapeStrategy{},
			tagResourceStrategy{},
		},
	}
}

// Resolve maps a parsed legacy URL to a new-spec operation.
//
// The legacy operation is located first (docs key, then fragment
// resource/action search, then a deterministic collection pick when the URL
// has no fragment). Its counterpart is then searched tier by tier.
func (r *Resolver) Resolve(ref *models.LegacyURLRef) (*models.ResolvedMapping, error) {
	if ref.Tag == "" {
		// URL pointed at the API docs root.
		if r.target.RootDocsURL == "" {
			return nil, &models.IncompleteMappingError{}
		}
		return &models.ResolvedMapping{ExternalDocsURL: r.target.RootDocsURL}, nil
	}

	legacyOp, err := r.lookupLegacy(ref)
	if err != nil {
		return nil, err
	}

	for _, strategy := range r.strategies {
		candidates := strategy.match(legacyOp, r.target)
		if len(candidates) == 0 {
			continue
		}
		best := pickCandidate(candidates, legacyOp)
		return &models.ResolvedMapping{
			OperationID:     best.OperationID,
			Path:            best.Path,
			Method:          best.Method,
			ExternalDocsURL: best.ExternalDocsURL,
		}, nil
	}

	return nil, &models.NoEquivalentOperationError{Method: legacyOp.Method, Path: legacyOp.Path}
}

func (r *Resolver) lookupLegacy(ref *models.LegacyURLRef) (*models.Operation, error) {
	if ref.Summary != "" {
		if op, ok := r.legacy.ByDocsKey(ref.Tag, ref.Summary); ok {
			return op, nil
		}

		// The summary slug may use a different pluralization or action
		// synonym than the spec; retry on the split (resource, action) form.
		if ref.Action != "" {
			method := actionMethod(ref.Action)
			want := normalizeResource(ref.Resource)
			for _, op := range r.legacy.ByTag(ref.Tag) {
				if op.Method != method {
					continue
				}
				resource, action := splitFragment(op.SummarySlug)
				if action == ref.Action && normalizeResource(resource) == want {
					return op, nil
				}
			}
		}

		return nil, &models.OperationNotFoundError{Tag: ref.Tag, Summary: ref.Summary}
	}

	// No fragment: default to the tag's collection listing.
	var best *models.Operation
	for _, op := range r.legacy.ByTag(ref.Tag) {
		if op.Method != "GET" {
			continue
		}
		if best == nil || moreCollectionLike(op, best) {
			best = op
		}
	}
	if best == nil {
		return nil, &models.OperationNotFoundError{Tag: ref.Tag}
	}
	return best, nil
}

// moreCollectionLike orders GET operations so that the tag's listing
// endpoint sorts first: fewest path parameters, then shortest path, then
// lexical operation ID for reproducibility.
func moreCollectionLike(a, b *models.Operation) bool {
	if a.ParamCount != b.ParamCount {
		return a.ParamCount < b.ParamCount
	}
	if len(a.ShapePath) != len(b.ShapePath) {
		return len(a.ShapePath) < len(b.ShapePath)
	}
	if a.OperationID != b.OperationID {
		return a.OperationID < b.OperationID
	}
	return a.ShapePath < b.ShapePath
}

// pickCandidate applies the tie-break policy: prefer candidates whose tag
// matches the legacy operation's tag, then the lexicographically smallest
// operation ID.
func pickCandidate(candidates []*models.Operation, legacy *models.Operation) *models.Operation {
	var tagged []*models.Operation
	for _, c := range candidates {
		if c.TagSlug == legacy.TagSlug {
			tagged = append(tagged, c)
		}
	}
	if len(tagged) > 0 {
		candidates = tagged
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.OperationID < best.OperationID ||
			(c.OperationID == best.OperationID && c.ShapePath < best.ShapePath) {
			best = c
		}
	}
	return best
}

// operationIDStrategy matches when both specs share an operation naming
// convention: same operation ID, same method.
type operationIDStrategy struct{}

func (operationIDStrategy) name() string { return "operationID" }

func (operationIDStrategy) match(legacy *models.Operation, idx *spec.Index) []*models.Operation {
	if legacy.OperationID == "" {
		return nil
	}
	candidate, ok := idx.ByOperationID(legacy.OperationID)
	if !ok || candidate.Method != legacy.Method {
		return nil
	}
	return []*models.Operation{candidate}
}

// pathShapeStrategy matches on stripped path template and method. The new
// spec nests every path under a /{apiVersion} segment, so the legacy shape
// is also tried with a leading parameter segment prepended.
type pathShapeStrategy struct{}

func (pathShapeStrategy) name() string { return "pathShape" }

func (pathShapeStrategy) match(legacy *models.Operation, idx *spec.Index) []*models.Operation {
	if candidate, ok := idx.ByShape(legacy.ShapePath, legacy.Method); ok {
		return []*models.Operation{candidate}
	}
	if candidate, ok := idx.ByShape("/{}"+legacy.ShapePath, legacy.Method); ok {
		return []*models.Operation{candidate}
	}
	return nil
}

// tagResourceStrategy is the fuzzy tier: same method, same parameter arity,
// and the same trailing resource name after normalizing hyphenation and
// pluralization. Anything below this bar is a hard failure.
type tagResourceStrategy struct{}

func (tagResourceStrategy) name() string { return "tagResource" }

func (tagResourceStrategy) match(legacy *models.Operation, idx *spec.Index) []*models.Operation {
	want := normalizeResource(lastLiteralSegment(legacy.ShapePath))
	if want == "" {
		return nil
	}

	arity := effectiveParams(legacy)

	var candidates []*models.Operation
	for _, op := range idx.Operations {
		if op.Method != legacy.Method || effectiveParams(op) != arity {
			continue
		}
		if normalizeResource(lastLiteralSegment(op.ShapePath)) == want {
			candidates = append(candidates, op)
		}
	}
	return candidates
}

// effectiveParams is the parameter arity with the new spec's leading
// /{apiVersion} segment discounted, so arities compare across spec
// generations.
func effectiveParams(op *models.Operation) int {
	if strings.HasPrefix(op.ShapePath, "/{}/") {
		return op.ParamCount - 1
	}
	return op.ParamCount
}

// lastLiteralSegment returns the last non-parameter segment of a stripped
// path template, e.g. "/domains/{}/records/{}" -> "records".
func lastLiteralSegment(shapePath string) string {
	segments := strings.Split(shapePath, "/")
	for i := len(segments) - 1; i >= 0; i-- {
		if segments[i] != "" && segments[i] != "{}" {
			return segments[i]
		}
	}
	return ""
}

// normalizeResource folds a resource name to a comparable form: lowercase,
// hyphens dropped, trailing plural suffix singularized.
func normalizeResource(resource string) string {
	s := strings.ReplaceAll(strings.ToLower(resource), "-", "")
	switch {
	case strings.HasSuffix(s, "ies"):
		return s[:len(s)-3] + "y"
	case strings.HasSuffix(s, "ses"):
		return s[:len(s)-2]
	case strings.HasSuffix(s, "s") && !strings.HasSuffix(s, "ss"):
		return s[:len(s)-1]
	}
	return s
}
