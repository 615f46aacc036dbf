// Package stats aggregates conversion counters for serve mode.
package stats

import (
	"errors"
	"sync"
	"time"

	"github.com/linode/legacy-to-techdocs/internal/models"
)

const maxRecentFailures = 100

// Collector counts conversions handled by the HTTP API. Safe for concurrent
// use.
type Collector struct {
	mu             sync.RWMutex
	startTime      time.Time
	converted      int64
	failed         int64
	failuresByKind map[string]int64
	recentFailures []Failure
}

// Failure records one URL that could not be converted.
type Failure struct {
	Timestamp time.Time `json:"timestamp"`
	URL       string    `json:"url"`
	Kind      string    `json:"kind"`
	Reason    string    `json:"reason"`
}

// Snapshot is a point-in-time copy of the collector's counters.
type Snapshot struct {
	StartTime      time.Time        `json:"startTime"`
	UptimeSeconds  int64            `json:"uptimeSeconds"`
	Converted      int64            `json:"converted"`
	Failed         int64            `json:"failed"`
	FailuresByKind map[string]int64 `json:"failuresByKind"`
	RecentFailures []Failure        `json:"recentFailures"`
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{
		startTime:      time.Now(),
		failuresByKind: make(map[string]int64),
	}
}

// RecordSuccess counts one converted URL.
func (c *Collector) RecordSuccess() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.converted++
}

// RecordFailure counts one failed conversion, keyed by the error kind.
func (c *Collector) RecordFailure(url string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.failed++
	kind := ErrorKind(err)
	c.failuresByKind[kind]++

	c.recentFailures = append(c.recentFailures, Failure{
		Timestamp: time.Now(),
		URL:       url,
		Kind:      kind,
		Reason:    err.Error(),
	})
	if len(c.recentFailures) > maxRecentFailures {
		c.recentFailures = c.recentFailures[1:]
	}
}

// Snapshot returns a copy of the current counters.
func (c *Collector) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	byKind := make(map[string]int64, len(c.failuresByKind))
	for k, v := range c.failuresByKind {
		byKind[k] = v
	}

	recent := make([]Failure, len(c.recentFailures))
	copy(recent, c.recentFailures)

	return Snapshot{
		StartTime:      c.startTime,
		UptimeSeconds:  int64(time.Since(c.startTime).Seconds()),
		Converted:      c.converted,
		Failed:         c.failed,
		FailuresByKind: byKind,
		RecentFailures: recent,
	}
}

// Reset clears all counters.
func (c *Collector) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.startTime = time.Now()
	c.converted = 0
	c.failed = 0
	c.failuresByKind = make(map[string]int64)
	c.recentFailures = nil
}

// ErrorKind maps a translation error to its taxonomy name.
func ErrorKind(err error) string {
	var (
		specParse     *models.SpecParseError
		indexConflict *models.SpecIndexConflictError
		urlFormat     *models.URLFormatError
		opNotFound    *models.OperationNotFoundError
		noEquivalent  *models.NoEquivalentOperationError
		incomplete    *models.IncompleteMappingError
	)

	switch {
	case errors.As(err, &specParse):
		return "spec_parse"
	case errors.As(err, &indexConflict):
		return "spec_index_conflict"
	case errors.As(err, &urlFormat):
		return "url_format"
	case errors.As(err, &opNotFound):
		return "operation_not_found"
	case errors.As(err, &noEquivalent):
		return "no_equivalent_operation"
	case errors.As(err, &incomplete):
		return "incomplete_mapping"
	default:
		return "unknown"
	}
}
