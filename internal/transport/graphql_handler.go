package transport

import (
	"encoding/json"
	"io"
	"mime"
	"net/http"

	"catalogql/internal/graph"
	"catalogql/internal/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// GraphQLRequest is the request envelope: one JSON object carrying the
// operation text in either field. Query and mutation strings go
// through the same engine entry point.
type GraphQLRequest struct {
	Query    *string `json:"query"`
	Mutation *string `json:"mutation"`
}

// Fetch returns the operation text. A present query wins over a
// present mutation; neither yields the empty operation, which the
// engine rejects as invalid.
func (r GraphQLRequest) Fetch() string {
	switch {
	case r.Query != nil:
		return *r.Query
	case r.Mutation != nil:
		return *r.Mutation
	default:
		return ""
	}
}

// GraphQLHandler serves the GraphQL endpoint over HTTP
type GraphQLHandler struct {
	engine *graph.Engine
	logger *zap.Logger
}

// NewGraphQLHandler creates a new GraphQLHandler
func NewGraphQLHandler(engine *graph.Engine, logger *zap.Logger) *GraphQLHandler {
	return &GraphQLHandler{
		engine: engine,
		logger: logger,
	}
}

// RegisterRoutes mounts the endpoint at the given path with the
// per-request database connection guard
func (h *GraphQLHandler) RegisterRoutes(r chi.Router, path string, dbConn func(http.Handler) http.Handler) {
	r.Route(path, func(r chi.Router) {
		r.Use(dbConn)
		r.Post("/", h.Execute)
	})
}

// Execute handles one GraphQL POST request. Transport-level failures
// get distinct status codes; any successfully evaluated operation is
// 200 even when the payload carries field-level errors.
func (h *GraphQLHandler) Execute(w http.ResponseWriter, r *http.Request) {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != "application/json" {
		h.logger.Debug("Rejected content type", zap.String("content_type", r.Header.Get("Content-Type")))
		middleware.RespondWithError(w, http.StatusUnsupportedMediaType, "content type must be application/json")
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.logger.Error("Failed to read request body", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to read request body")
		return
	}

	var req GraphQLRequest
	if err := json.Unmarshal(body, &req); err != nil {
		h.logger.Debug("Malformed request body", zap.Error(err))
		middleware.RespondWithError(w, http.StatusBadRequest, "malformed JSON body")
		return
	}

	store := middleware.StoreFrom(r.Context())
	if store == nil {
		h.logger.Error("No database connection bound to request")
		middleware.RespondWithError(w, http.StatusInternalServerError, "no database connection")
		return
	}

	resp := h.engine.Execute(r.Context(), req.Fetch(), store)

	// Execution errors take precedence over the value when shaping the
	// response body
	if len(resp.Errors) > 0 {
		h.logger.Debug("Operation evaluated with errors", zap.Int("errors", len(resp.Errors)))
		middleware.RespondWithJSON(w, http.StatusOK, resp.Errors)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(resp.Data)
}
