// Package testutil holds helpers shared by HTTP handler tests.
package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"paperapi/internal/paper"
)

// NLPPaper is catalog entry 4, used throughout the search examples.
var NLPPaper = paper.Paper{
	ID:        "4",
	Title:     "Natural Language Processing Advances",
	Authors:   "Emily Davis, Frank Moore",
	Year:      2022,
	Citations: 67,
}

// NewRequest creates a new HTTP request for testing, JSON-encoding body when
// it is not nil.
func NewRequest(t testing.TB, method, path string, body any) *http.Request {
	t.Helper()
	if body == nil {
		return httptest.NewRequest(method, path, nil)
	}
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request body: %v", err)
	}
	r := httptest.NewRequest(method, path, bytes.NewReader(data))
	r.Header.Set("Content-Type", "application/json")
	return r
}

// Serve runs r through h and returns the recorded response.
func Serve(h http.Handler, r *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w
}

// DecodePapers decodes a JSON array of papers from the response body.
func DecodePapers(t testing.TB, w *httptest.ResponseRecorder) []paper.Paper {
	t.Helper()
	var papers []paper.Paper
	if err := json.NewDecoder(w.Body).Decode(&papers); err != nil {
		t.Fatalf("decode papers: %v (body %q)", err, w.Body.String())
	}
	return papers
}

// PaperIDs returns the ids of papers in order. It never returns nil.
func PaperIDs(papers []paper.Paper) []string {
	ids := make([]string, 0, len(papers))
	for _, p := range papers {
		ids = append(ids, p.ID)
	}
	return ids
}
