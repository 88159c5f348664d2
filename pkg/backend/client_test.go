package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSearchConceptsSendsQueryAndBearerToken(t *testing.T) {
	var gotAuth, gotQuery, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotQuery = r.URL.Query().Get("query")
		gotPath = r.URL.Path
		json.NewEncoder(w).Encode(SearchResults{Total: 1, Concepts: []ConceptSummary{{ID: "c1", Label: "thing"}}})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	c.SetBearerToken("abc123")

	res, err := c.SearchConcepts(context.Background(), "gravity", map[string]interface{}{"limit": 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "Bearer abc123" {
		t.Errorf("expected bearer token header, got %q", gotAuth)
	}
	if gotQuery != "gravity" {
		t.Errorf("expected query=gravity, got %q", gotQuery)
	}
	if gotPath != "/search/concepts" {
		t.Errorf("expected path /search/concepts, got %q", gotPath)
	}
	if res.Total != 1 || len(res.Concepts) != 1 || res.Concepts[0].ID != "c1" {
		t.Errorf("unexpected result: %+v", res)
	}
}

func TestDoJSONWrapsNonSuccessAsHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"no such concept"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.GetConceptDetails(context.Background(), "missing", nil)
	if err == nil {
		t.Fatal("expected error for 404 response")
	}
	if !IsHTTPError(err, http.StatusNotFound) {
		t.Fatalf("expected *HTTPError with status 404, got %v (%T)", err, err)
	}
	he, ok := err.(*HTTPError)
	if !ok {
		t.Fatalf("expected *HTTPError, got %T", err)
	}
	if he.Body != `{"error":"no such concept"}` {
		t.Errorf("expected raw body preserved, got %q", he.Body)
	}
}

func TestGraphCreatePostsFieldsAsJSONBody(t *testing.T) {
	var gotBody map[string]interface{}
	var gotMethod string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		json.NewDecoder(r.Body).Decode(&gotBody)
		json.NewEncoder(w).Encode(GraphEntity{Entity: "concept", ID: "new-1"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	out, err := c.GraphCreate(context.Background(), "concept", map[string]interface{}{"label": "widget"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotMethod != http.MethodPost {
		t.Errorf("expected POST, got %s", gotMethod)
	}
	if gotBody["label"] != "widget" {
		t.Errorf("expected label field in request body, got %v", gotBody)
	}
	if out.ID != "new-1" {
		t.Errorf("expected echoed id new-1, got %q", out.ID)
	}
}

func TestGraphDeleteNoBodyNoOut(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		if r.Method != http.MethodDelete {
			t.Errorf("expected DELETE, got %s", r.Method)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	if err := c.GraphDelete(context.Background(), "concept", "id-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !called {
		t.Error("expected server to be called")
	}
}

func TestBearerTokenOmittedWhenEmpty(t *testing.T) {
	var gotAuth string
	hadHeader := true
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		hadHeader = r.Header.Get("Authorization") != ""
		json.NewEncoder(w).Encode(HealthStatus{Healthy: true})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	if _, err := c.GetAPIHealth(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hadHeader {
		t.Errorf("expected no Authorization header before a token is set, got %q", gotAuth)
	}
}
