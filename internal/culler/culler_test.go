package culler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/nikbrunner/ql/internal/model"
)

func TestCheckURLs_Statuses(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok":
			w.WriteHeader(http.StatusOK)
		case "/gone":
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer srv.Close()

	shortcuts := []model.Shortcut{
		{ID: "a", Name: "OK", URL: srv.URL + "/ok"},
		{ID: "b", Name: "Gone", URL: srv.URL + "/gone"},
		{ID: "c", Name: "Broken", URL: srv.URL + "/error"},
	}

	var progressCalls int
	results := CheckURLs(shortcuts, 2, 5*time.Second, nil, func(completed, total int) {
		progressCalls++
	})

	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if progressCalls != 3 {
		t.Errorf("expected 3 progress calls, got %d", progressCalls)
	}

	byID := map[string]Result{}
	for _, r := range results {
		byID[r.Shortcut.ID] = r
	}

	if byID["a"].Status != Healthy {
		t.Errorf("expected /ok to be Healthy, got %v", byID["a"].Status)
	}
	if byID["b"].Status != Dead {
		t.Errorf("expected /gone to be Dead, got %v", byID["b"].Status)
	}
	if byID["c"].Status != Unreachable {
		t.Errorf("expected /error to be Unreachable, got %v", byID["c"].Status)
	}
}

func TestCheckURLs_ExcludedDomain404(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	host := srv.Listener.Addr().String()
	shortcuts := []model.Shortcut{
		{ID: "a", Name: "Private", URL: srv.URL + "/repo"},
	}

	results := CheckURLs(shortcuts, 1, 5*time.Second, []string{host}, nil)

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Status != Unreachable {
		t.Errorf("excluded domain 404 should be Unreachable, got %v", results[0].Status)
	}
}

func TestCheckURLs_Empty(t *testing.T) {
	if results := CheckURLs(nil, 4, time.Second, nil, nil); results != nil {
		t.Errorf("expected nil results for no shortcuts, got %v", results)
	}
}
