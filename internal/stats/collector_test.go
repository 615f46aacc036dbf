package stats

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linode/legacy-to-techdocs/internal/models"
)

func TestCollector_Counters(t *testing.T) {
	c := NewCollector()

	c.RecordSuccess()
	c.RecordSuccess()
	c.RecordFailure("https://www.linode.com/docs/api/x/", &models.OperationNotFoundError{Tag: "x"})
	c.RecordFailure("https://example.com/", &models.URLFormatError{URL: "https://example.com/"})

	snap := c.Snapshot()
	assert.Equal(t, int64(2), snap.Converted)
	assert.Equal(t, int64(2), snap.Failed)
	assert.Equal(t, int64(1), snap.FailuresByKind["operation_not_found"])
	assert.Equal(t, int64(1), snap.FailuresByKind["url_format"])

	require.Len(t, snap.RecentFailures, 2)
	assert.Equal(t, "https://www.linode.com/docs/api/x/", snap.RecentFailures[0].URL)
	assert.Equal(t, "operation_not_found", snap.RecentFailures[0].Kind)
}

func TestCollector_RecentFailuresBounded(t *testing.T) {
	c := NewCollector()

	for i := 0; i < maxRecentFailures+10; i++ {
		c.RecordFailure("url", &models.URLFormatError{URL: "url"})
	}

	snap := c.Snapshot()
	assert.Len(t, snap.RecentFailures, maxRecentFailures)
	assert.Equal(t, int64(maxRecentFailures+10), snap.Failed)
}

func TestCollector_Reset(t *testing.T) {
	c := NewCollector()
	c.RecordSuccess()
	c.RecordFailure("url", &models.URLFormatError{URL: "url"})

	c.Reset()

	snap := c.Snapshot()
	assert.Zero(t, snap.Converted)
	assert.Zero(t, snap.Failed)
	assert.Empty(t, snap.FailuresByKind)
	assert.Empty(t, snap.RecentFailures)
}

func TestErrorKind(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{&models.SpecParseError{Source: "x"}, "spec_parse"},
		{&models.SpecIndexConflictError{Key: "x"}, "spec_index_conflict"},
		{&models.URLFormatError{URL: "x"}, "url_format"},
		{&models.OperationNotFoundError{Tag: "x"}, "operation_not_found"},
		{&models.NoEquivalentOperationError{Path: "x"}, "no_equivalent_operation"},
		{&models.IncompleteMappingError{}, "incomplete_mapping"},
		{errors.New("other"), "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ErrorKind(tt.err))
	}
}
