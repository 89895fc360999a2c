package server

import (
	"encoding/json"
	"net/http"

	"github.com/layerforge/layerforge/pkg/codegen"
	"github.com/layerforge/layerforge/pkg/errors"
	"github.com/layerforge/layerforge/pkg/layer"
	"github.com/layerforge/layerforge/pkg/pipeline"
	"github.com/layerforge/layerforge/pkg/tasks"
)

// generateRequest is the body of POST /v1/generate.
type generateRequest struct {
	Tree    *layer.Node      `json:"tree"`
	Options pipeline.Options `json:"options"`
}

// generateResponse is the body of a successful generate call.
type generateResponse struct {
	ComponentID   string                      `json:"component_id"`
	ComponentHash string                      `json:"component_hash"`
	Artifacts     map[string]codegen.Artifact `json:"artifacts"`
	Props         []codegen.Prop              `json:"props"`
	Nodes         int                         `json:"nodes"`
	CacheInfo     pipeline.CacheInfo          `json:"cache_info"`
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.New(errors.ErrCodeInvalidInput, "malformed request body"))
		return
	}
	if req.Tree == nil {
		writeError(w, errors.New(errors.ErrCodeInvalidTree, "tree is required"))
		return
	}

	result, err := s.runner.Execute(r.Context(), req.Tree, req.Options)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, generateResponse{
		ComponentID:   result.Component.ElementID,
		ComponentHash: result.ComponentHash,
		Artifacts:     result.Artifacts,
		Props:         result.Props,
		Nodes:         result.Stats.NodeCount,
		CacheInfo:     result.CacheInfo,
	})
}

// decomposeRequest is the body of POST /v1/decompose.
type decomposeRequest struct {
	ComponentID string      `json:"component_id"`
	Tree        *layer.Node `json:"tree,omitempty"`
	Target      string      `json:"target"`
}

// decomposeResponse is the body of a successful decompose call.
type decomposeResponse struct {
	ComponentID string       `json:"component_id"`
	Tasks       []tasks.Task `json:"tasks"`
}

func (s *Server) handleDecompose(w http.ResponseWriter, r *http.Request) {
	var req decomposeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.New(errors.ErrCodeInvalidInput, "malformed request body"))
		return
	}
	if req.ComponentID == "" {
		writeError(w, errors.New(errors.ErrCodeInvalidInput, "component_id is required"))
		return
	}
	if err := codegen.ValidateTarget(req.Target); err != nil {
		writeError(w, err)
		return
	}

	batch, err := s.runner.DecomposeAndSave(r.Context(), req.ComponentID, req.Tree, req.Target)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, decomposeResponse{
		ComponentID: req.ComponentID,
		Tasks:       batch,
	})
}

// errorResponse is the JSON body for every failed call.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeError maps an error code to an HTTP status and writes the body.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidTarget,
		errors.ErrCodeInvalidSelector, errors.ErrCodeInvalidTree,
		errors.ErrCodeInvalidConfig:
		status = http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeElementNotFound:
		status = http.StatusNotFound
	case errors.ErrCodeTimeout:
		status = http.StatusGatewayTimeout
	case errors.ErrCodePersistence:
		status = http.StatusBadGateway
	}

	writeJSON(w, status, errorResponse{
		Code:    string(errors.GetCode(err)),
		Message: errors.UserMessage(err),
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
