package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/layerforge/layerforge/pkg/layer"
	"github.com/layerforge/layerforge/pkg/pipeline"
	"github.com/layerforge/layerforge/pkg/store"
	"github.com/layerforge/layerforge/pkg/tasks"
)

func testServer(t *testing.T) (*Server, *store.MemoryStore) {
	t.Helper()
	st := store.NewMemoryStore()
	runner := pipeline.NewRunner(nil, nil, st, log.NewWithOptions(io.Discard, log.Options{}))
	return New(runner, log.NewWithOptions(io.Discard, log.Options{})), st
}

func testTree() *layer.Node {
	return &layer.Node{
		ElementID: "page",
		TagName:   "body",
		Bounds:    layer.Bounds{Width: 1200, Height: 800},
		Children: []layer.Node{
			{
				ElementID:  "hero",
				TagName:    "div",
				Bounds:     layer.Bounds{X: 100, Y: 50, Width: 400, Height: 200},
				Attributes: map[string]string{"id": "hero"},
			},
		},
	}
}

func postJSON(t *testing.T, s *Server, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	s, _ := testServer(t)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "ok") {
		t.Errorf("body = %q, want ok", rec.Body.String())
	}
}

func TestGenerateEndpoint(t *testing.T) {
	s, st := testServer(t)

	rec := postJSON(t, s, "/v1/generate", generateRequest{
		Tree: testTree(),
		Options: pipeline.Options{
			Selector: "hero",
			Targets:  []string{"react", "html"},
		},
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp generateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ComponentID != "hero" {
		t.Errorf("ComponentID = %q, want hero", resp.ComponentID)
	}
	if len(resp.Artifacts) != 2 {
		t.Errorf("Artifacts = %d, want 2", len(resp.Artifacts))
	}
	if resp.Artifacts["react"].Code == "" {
		t.Error("react artifact code is empty")
	}
	if st.MappingCount() != 2 {
		t.Errorf("MappingCount() = %d, want 2", st.MappingCount())
	}
}

func TestGenerateMissingElement(t *testing.T) {
	s, _ := testServer(t)

	rec := postJSON(t, s, "/v1/generate", generateRequest{
		Tree:    testTree(),
		Options: pipeline.Options{Selector: "#missing"},
	})

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404; body = %s", rec.Code, rec.Body.String())
	}
	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if resp.Code != "NOT_FOUND_ELEMENT" {
		t.Errorf("Code = %q, want NOT_FOUND_ELEMENT", resp.Code)
	}
}

func TestGenerateRejectsBadBody(t *testing.T) {
	s, _ := testServer(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/generate", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestGenerateRejectsMissingTree(t *testing.T) {
	s, _ := testServer(t)

	rec := postJSON(t, s, "/v1/generate", generateRequest{
		Options: pipeline.Options{Selector: "hero"},
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestDecomposeEndpoint(t *testing.T) {
	s, st := testServer(t)

	rec := postJSON(t, s, "/v1/decompose", decomposeRequest{
		ComponentID: "cmp-1",
		Tree:        testTree(),
		Target:      "react",
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp decomposeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Tasks) != tasks.PipelineLength {
		t.Errorf("tasks = %d, want %d", len(resp.Tasks), tasks.PipelineLength)
	}
	if len(st.Tasks()) != tasks.PipelineLength {
		t.Errorf("stored tasks = %d, want %d", len(st.Tasks()), tasks.PipelineLength)
	}
}

func TestDecomposeRejectsUnknownTarget(t *testing.T) {
	s, _ := testServer(t)

	rec := postJSON(t, s, "/v1/decompose", decomposeRequest{
		ComponentID: "cmp-1",
		Target:      "flutter",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400; body = %s", rec.Code, rec.Body.String())
	}
}
