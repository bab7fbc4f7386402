// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/danielhkuo/proposal-browser/models"
	"github.com/danielhkuo/proposal-browser/testutil"
)

// TestSavedViewFlow walks a shared view from save to page render
func TestSavedViewFlow(t *testing.T) {
	mux := newTestRouter(t)

	// Save the current view
	req := testutil.MakeRequest("POST", "/api/views", models.SaveViewRequest{Fragment: "#?status=rejected&search=deprecate"}, nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusCreated)

	var saved models.SaveViewResponse
	testutil.AssertJSON(t, w, &saved)

	// Look it up through the API
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/api/views/"+saved.Slug, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var view models.SavedView
	testutil.AssertJSON(t, w, &view)
	if view.Fragment != saved.Fragment {
		t.Errorf("Expected fragment %q, got %q", saved.Fragment, view.Fragment)
	}

	// Open the short link
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", saved.URL, nil))
	testutil.AssertStatus(t, w, http.StatusFound)

	location := w.Header().Get("Location")
	if location != "/?status=rejected&search=deprecate" {
		t.Fatalf("Unexpected redirect %q", location)
	}

	// Follow the redirect
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", location, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	body := w.Body.String()
	if !strings.Contains(body, "1 proposal<") {
		t.Error("Expected exactly one visible proposal")
	}
	if !strings.Contains(body, "Deprecate the default keyword") {
		t.Error("Expected SE-0097 on the page")
	}

	// The same selection from the API
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/api/proposals?"+strings.TrimPrefix(location, "/?"), nil))

	var list models.ProposalListResponse
	if err := json.NewDecoder(w.Body).Decode(&list); err != nil {
		t.Fatalf("Failed to decode list: %v", err)
	}
	if list.Count != 1 || list.Proposals[0].ID != "SE-0097" {
		t.Errorf("Expected only SE-0097, got %v", testutil.IDs(list.Proposals))
	}
	if list.Fragment != saved.Fragment {
		t.Errorf("Expected fragment %q, got %q", saved.Fragment, list.Fragment)
	}
}

// TestConcurrentRequests checks that page renders share the catalog safely
// and that racing saves of one view store a single row
func TestConcurrentRequests(t *testing.T) {
	mux := newTestRouter(t)

	const workers = 10
	var created, existing atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(2)

		go func() {
			defer wg.Done()
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest("GET", "/?status=implemented&version=5", nil))
			if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "2 proposals") {
				t.Errorf("Unexpected page response %d", w.Code)
			}
		}()

		go func() {
			defer wg.Done()
			req := testutil.MakeRequest("POST", "/api/views", models.SaveViewRequest{Fragment: "#?status=deferred"}, nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)
			switch w.Code {
			case http.StatusCreated:
				created.Add(1)
			case http.StatusOK:
				existing.Add(1)
			default:
				t.Errorf("Unexpected save status %d: %s", w.Code, w.Body.String())
			}
		}()
	}

	wg.Wait()

	if created.Load() != 1 {
		t.Errorf("Expected exactly one created view, got %d", created.Load())
	}
	if existing.Load() != workers-1 {
		t.Errorf("Expected %d existing views, got %d", workers-1, existing.Load())
	}
}
