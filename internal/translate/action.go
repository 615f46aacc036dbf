package translate

import "strings"

// Canonical fragment actions. The legacy docs convention ends an operation
// fragment with an action token, e.g. "domain-record-view".
const (
	actionView   = "view"
	actionList   = "list"
	actionCreate = "create"
	actionUpdate = "update"
	actionDelete = "delete"
)

// actionSynonyms maps every known fragment action token to its canonical
// action. Tokens outside this vocabulary are treated as part of the
// resource name, never guessed at.
var actionSynonyms = map[string]string{
	"view":   actionView,
	"get":    actionView,
	"list":   actionList,
	"index":  actionList,
	"create": actionCreate,
	"add":    actionCreate,
	"post":   actionCreate,
	"update": actionUpdate,
	"edit":   actionUpdate,
	"modify": actionUpdate,
	"put":    actionUpdate,
	"delete": actionDelete,
	"remove": actionDelete,
}

// normalizeAction canonicalizes a fragment action token.
func normalizeAction(token string) (string, bool) {
	action, ok := actionSynonyms[strings.ToLower(token)]
	return action, ok
}

// actionMethod returns the HTTP method implied by a canonical action.
// Both view (singular) and list (collection) map to GET; the resolver
// distinguishes them by path shape.
func actionMethod(action string) string {
	switch action {
	case actionCreate:
		return "POST"
	case actionUpdate:
		return "PUT"
	case actionDelete:
		return "DELETE"
	default:
		return "GET"
	}
}

// splitFragment splits a fragment summary slug into its resource name and
// canonical action, e.g. "domain-record-view" -> ("domain-record", "view").
// When the trailing token is not in the action vocabulary the whole slug is
// the resource and the action is empty.
func splitFragment(summary string) (resource, action string) {
	tokens := strings.Split(summary, "-")
	last := tokens[len(tokens)-1]
	if canon, ok := normalizeAction(last); ok {
		return strings.Join(tokens[:len(tokens)-1], "-"), canon
	}
	return summary, ""
}
