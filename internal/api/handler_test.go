package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linode/legacy-to-techdocs/internal/models"
	"github.com/linode/legacy-to-techdocs/internal/spec"
	"github.com/linode/legacy-to-techdocs/internal/stats"
	"github.com/linode/legacy-to-techdocs/internal/translate"
)

const (
	legacyURL    = "https://www.linode.com/docs/api/domains/#domain-record-view"
	convertedURL = "https://techdocs.akamai.com/linode-api/reference/get-domain-record"
)

func testRouter(t *testing.T) (*Router, *stats.Collector) {
	t.Helper()

	legacy, err := spec.NewIndex("", []*models.Operation{
		{
			Method:      "GET",
			Path:        "/domains/{domainId}/records/{recordId}",
			ShapePath:   "/domains/{}/records/{}",
			Summary:     "Domain Record View",
			Tag:         "Domains",
			TagSlug:     "domains",
			SummarySlug: "domain-record-view",
			ParamCount:  2,
		},
	})
	require.NoError(t, err)

	target, err := spec.NewIndex("", []*models.Operation{
		{
			Method:      "GET",
			Path:        "/{apiVersion}/domains/{domainId}/records/{recordId}",
			ShapePath:   "/{}/domains/{}/records/{}",
			OperationID: "get-domain-record",
			Tag:         "Domains",
			TagSlug:     "domains",
			ParamCount:  3,
		},
	})
	require.NoError(t, err)

	collector := stats.NewCollector()
	return NewRouter(translate.New(legacy, target), collector, NewHub()), collector
}

func doRequest(t *testing.T, router *Router, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.Handler().ServeHTTP(w, req)
	return w
}

func TestConvert(t *testing.T) {
	router, _ := testRouter(t)

	w := doRequest(t, router, http.MethodGet, "/v1/convert?url="+url.QueryEscape(legacyURL), "")
	assert.Equal(t, http.StatusOK, w.Code)

	var result ConvertResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, legacyURL, result.URL)
	assert.Equal(t, convertedURL, result.Converted)
	assert.Empty(t, result.Error)
}

func TestConvert_MissingParam(t *testing.T) {
	router, _ := testRouter(t)

	w := doRequest(t, router, http.MethodGet, "/v1/convert", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestConvert_UnresolvableURL(t *testing.T) {
	router, _ := testRouter(t)

	w := doRequest(t, router, http.MethodGet, "/v1/convert?url=https://www.linode.com/docs/api/volumes/%23volume-view", "")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var result ConvertResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Empty(t, result.Converted)
	assert.Contains(t, result.Error, "not found in legacy spec")
	assert.Equal(t, "operation_not_found", result.ErrorKind)
}

func TestConvert_NotLegacyURL(t *testing.T) {
	router, _ := testRouter(t)

	w := doRequest(t, router, http.MethodGet, "/v1/convert?url=https://example.com/page", "")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var result ConvertResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, "url_format", result.ErrorKind)
}

func TestConvertBatch(t *testing.T) {
	router, _ := testRouter(t)

	body := `{"urls": ["` + legacyURL + `", "https://example.com/page"]}`
	w := doRequest(t, router, http.MethodPost, "/v1/convert", body)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Results []ConvertResult `json:"results"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Results, 2)

	assert.Equal(t, convertedURL, resp.Results[0].Converted)
	assert.Empty(t, resp.Results[0].Error)

	assert.Empty(t, resp.Results[1].Converted)
	assert.NotEmpty(t, resp.Results[1].Error)
}

func TestConvertBatch_BadBody(t *testing.T) {
	router, _ := testRouter(t)

	w := doRequest(t, router, http.MethodPost, "/v1/convert", `{"nope": true}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRedirect(t *testing.T) {
	router, _ := testRouter(t)

	w := doRequest(t, router, http.MethodGet, "/v1/redirect?url="+url.QueryEscape(legacyURL), "")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, convertedURL, w.Header().Get("Location"))
}

func TestRedirect_NotFound(t *testing.T) {
	router, _ := testRouter(t)

	w := doRequest(t, router, http.MethodGet, "/v1/redirect?url=https://www.linode.com/docs/api/volumes/%23volume-view", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetStats(t *testing.T) {
	router, collector := testRouter(t)

	doRequest(t, router, http.MethodGet, "/v1/convert?url="+url.QueryEscape(legacyURL), "")
	doRequest(t, router, http.MethodGet, "/v1/convert?url=https://example.com/page", "")

	w := doRequest(t, router, http.MethodGet, "/v1/stats", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var snap stats.Snapshot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
	assert.Equal(t, int64(1), snap.Converted)
	assert.Equal(t, int64(1), snap.Failed)

	w = doRequest(t, router, http.MethodPost, "/v1/stats/reset", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Zero(t, collector.Snapshot().Converted)
}

func TestHealthCheck(t *testing.T) {
	router, _ := testRouter(t)

	w := doRequest(t, router, http.MethodGet, "/v1/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}

func TestCORSPreflight(t *testing.T) {
	router, _ := testRouter(t)

	w := doRequest(t, router, http.MethodOptions, "/v1/convert", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestHub_PublishSubscribe(t *testing.T) {
	hub := NewHub()
	id, events := hub.Subscribe()
	defer hub.Unsubscribe(id)

	hub.Publish(Event{Before: legacyURL, After: convertedURL})

	select {
	case event := <-events:
		assert.Equal(t, legacyURL, event.Before)
		assert.Equal(t, convertedURL, event.After)
	default:
		t.Fatal("expected a buffered event")
	}
}

func TestHub_UnsubscribedReceivesNothing(t *testing.T) {
	hub := NewHub()
	id, events := hub.Subscribe()
	hub.Unsubscribe(id)

	// Publishing after unsubscribe must not panic or block.
	hub.Publish(Event{Before: legacyURL})

	_, ok := <-events
	assert.False(t, ok)
}
