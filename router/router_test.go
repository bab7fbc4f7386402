// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/proposal-browser/handlers"
	"github.com/danielhkuo/proposal-browser/metrics"
	"github.com/danielhkuo/proposal-browser/testutil"
)

func newTestRouter(t *testing.T) *http.ServeMux {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { db.Close() })

	src := handlers.Source{Catalog: testutil.SampleCatalog(t)}
	mux, err := NewRouter(db, testutil.GetTestConfig(), src, metrics.New())
	if err != nil {
		t.Fatalf("Failed to create router: %v", err)
	}
	return mux
}

func TestHealthEndpoint(t *testing.T) {
	mux := newTestRouter(t)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestRootEndpoint(t *testing.T) {
	mux := newTestRouter(t)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "17 proposals") {
		t.Error("Expected the proposal page")
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("Expected X-Request-ID header")
	}
}

func TestRouteExistence(t *testing.T) {
	mux := newTestRouter(t)

	// Test that routes respond (handler is invoked)
	// Note: Some routes return 404 when data doesn't exist, which is valid handler behavior
	testCases := []struct {
		method string
		path   string
	}{
		// Health, metrics and page
		{"GET", "/health"},
		{"GET", "/metrics"},
		{"GET", "/"},

		// JSON API
		{"GET", "/api/proposals"},
		{"GET", "/api/proposals/SE-0001"},
		{"GET", "/api/fragment"},

		// Saved views
		{"POST", "/api/views"},
		{"GET", "/api/views/abc"},
		{"GET", "/v/abc"},

		// Preflight
		{"OPTIONS", "/api/views"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			// Route should be matched (not 405 Method Not Allowed for these specific routes)
			// 400 and 404 are valid responses depending on handler logic
			if w.Code == http.StatusMethodNotAllowed {
				t.Errorf("Route %s %s returned 405, expected route handler to exist", tc.method, tc.path)
			}
		})
	}
}

func TestUnknownPath(t *testing.T) {
	mux := newTestRouter(t)

	req := httptest.NewRequest("GET", "/does-not-exist", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", w.Code)
	}
}

func TestSpecificMethodRouting(t *testing.T) {
	mux := newTestRouter(t)

	// Test that method-specific routes are enforced
	testCases := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		// POST /health doesn't exist, should return 405
		{"POST to health endpoint", "POST", "/health", http.StatusMethodNotAllowed},
		// The proposal API is read-only
		{"PUT to proposals endpoint", "PUT", "/api/proposals", http.StatusMethodNotAllowed},
		{"DELETE saved view", "DELETE", "/api/views/abc", http.StatusMethodNotAllowed},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != tc.expectedStatus {
				t.Errorf("Expected %d for %s %s, got %d", tc.expectedStatus, tc.method, tc.path, w.Code)
			}
		})
	}
}

func TestPathParameterExtraction(t *testing.T) {
	mux := newTestRouter(t)

	req := httptest.NewRequest("GET", "/api/proposals/SE-0400", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d. Body: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "Init Accessors") {
		t.Error("Expected SE-0400 in the response")
	}
}

func TestCORSOnAPI(t *testing.T) {
	mux := newTestRouter(t)

	req := httptest.NewRequest("OPTIONS", "/api/proposals", nil)
	req.Header.Set("Origin", "https://example.com")
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected preflight 200, got %d", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "https://example.com" {
		t.Error("Expected Access-Control-Allow-Origin to reflect request origin")
	}

	req = httptest.NewRequest("GET", "/api/proposals", nil)
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	if w.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("Expected CORS headers on API responses")
	}
}

func TestMetricsEndpoint(t *testing.T) {
	mux := newTestRouter(t)

	mux.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/api/proposals?status=rejected", nil))

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))

	body := w.Body.String()
	want := []string{
		`proposal_browser_http_requests_total{code="200",route="GET /api/proposals"} 1`,
		`proposal_browser_filter_passes_total 1`,
	}
	for _, s := range want {
		if !strings.Contains(body, s) {
			t.Errorf("Expected metrics to contain %q", s)
		}
	}
}
