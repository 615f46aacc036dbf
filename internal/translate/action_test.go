package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAction(t *testing.T) {
	tests := []struct {
		token string
		want  string
		ok    bool
	}{
		{"view", actionView, true},
		{"get", actionView, true},
		{"list", actionList, true},
		{"create", actionCreate, true},
		{"add", actionCreate, true},
		{"update", actionUpdate, true},
		{"modify", actionUpdate, true},
		{"delete", actionDelete, true},
		{"remove", actionDelete, true},
		{"VIEW", actionView, true},
		{"boot", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := normalizeAction(tt.token)
		assert.Equal(t, tt.ok, ok, "token %q", tt.token)
		assert.Equal(t, tt.want, got, "token %q", tt.token)
	}
}

func TestActionMethod(t *testing.T) {
	assert.Equal(t, "GET", actionMethod(actionView))
	assert.Equal(t, "GET", actionMethod(actionList))
	assert.Equal(t, "POST", actionMethod(actionCreate))
	assert.Equal(t, "PUT", actionMethod(actionUpdate))
	assert.Equal(t, "DELETE", actionMethod(actionDelete))
}

func TestSplitFragment(t *testing.T) {
	tests := []struct {
		summary  string
		resource string
		action   string
	}{
		{"domain-record-view", "domain-record", actionView},
		{"domains-list", "domains", actionList},
		{"type-view", "type", actionView},
		{"linode-boot", "linode-boot", ""},
		{"list", "", actionList},
	}

	for _, tt := range tests {
		resource, action := splitFragment(tt.summary)
		assert.Equal(t, tt.resource, resource, "summary %q", tt.summary)
		assert.Equal(t, tt.action, action, "summary %q", tt.summary)
	}
}

func TestNormalizeResource(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"domains", "domain"},
		{"domain", "domain"},
		{"policies", "policy"},
		{"addresses", "address"},
		{"access", "access"},
		{"domain-records", "domainrecord"},
		{"Types", "type"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizeResource(tt.in), "resource %q", tt.in)
	}
}
