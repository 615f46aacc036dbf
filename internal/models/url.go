package models

// LegacyURLRef is the parsed form of a legacy linode.com/docs/api URL.
//
// The legacy convention encodes the operation's tag in the path and its
// summary in the fragment, e.g.
//
//	https://www.linode.com/docs/api/domains/#domain-record-view
//
// has Tag "domains" and Summary "domain-record-view". When the trailing
// fragment token is a recognized action ("view" above), Resource and Action
// hold the split form ("domain-record", "view").
type LegacyURLRef struct {
	Raw     string // The matched URL text
	Tag     string // Resource path segment, empty for the docs root
	Summary string // Fragment before any "__" anchor, empty when absent
	Anchor  string // Trailing "__anchor" portion, informational only

	Resource string // Summary minus the action token, when one was found
	Action   string // Canonical action name ("view", "list", ...), empty when none
}
