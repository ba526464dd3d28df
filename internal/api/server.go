package api

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/pagesmith/pagesmith/pkg/block"
	"github.com/pagesmith/pagesmith/pkg/errors"
	"github.com/pagesmith/pagesmith/pkg/store"
)

// Server serves documents from a store over HTTP.
type Server struct {
	store  *store.Store
	logger *log.Logger
	router chi.Router
}

// NewServer builds a server around the given store. The logger receives one
// line per request.
func NewServer(st *store.Store, logger *log.Logger) *Server {
	s := &Server{store: st, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1/documents/{owner}/{kind}", func(r chi.Router) {
		r.Get("/", s.handleGet)
		r.Put("/", s.handlePut)
		r.Delete("/", s.handleDelete)
		r.Post("/commands", s.handleCommand)
	})

	s.router = r
	return s
}

// Handler returns the server's HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start).Round(time.Millisecond),
		)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	key, ok := s.keyFrom(w, r)
	if !ok {
		return
	}
	tree, err := s.store.Load(r.Context(), key)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeDocument(w, tree)
}

func (s *Server) handlePut(w http.ResponseWriter, r *http.Request) {
	key, ok := s.keyFrom(w, r)
	if !ok {
		return
	}
	tree, err := decodeDocument(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if err := s.store.Save(r.Context(), key, tree); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeDocument(w, tree)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	key, ok := s.keyFrom(w, r)
	if !ok {
		return
	}
	if err := s.store.Delete(r.Context(), key); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleCommand loads the document, applies one editing command, validates
// the result, and saves it back. The updated document is returned so clients
// can refresh without a second round trip.
func (s *Server) handleCommand(w http.ResponseWriter, r *http.Request) {
	key, ok := s.keyFrom(w, r)
	if !ok {
		return
	}

	var cmd Command
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cmd); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidCommand, err, "decode command"))
		return
	}

	tree, err := s.store.Load(r.Context(), key)
	if err != nil {
		s.writeError(w, err)
		return
	}

	next, err := cmd.Apply(tree)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if err := block.Validate(next); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidDocument, err, "apply %s", cmd.Op))
		return
	}

	if err := s.store.Save(r.Context(), key, next); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeDocument(w, next)
}

// keyFrom extracts and validates the document key from the URL. On failure a
// response has already been written.
func (s *Server) keyFrom(w http.ResponseWriter, r *http.Request) (store.Key, bool) {
	key := store.Key{
		Owner: chi.URLParam(r, "owner"),
		Kind:  chi.URLParam(r, "kind"),
	}
	if err := key.Validate(); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "document key"))
		return store.Key{}, false
	}
	return key, true
}

func (s *Server) writeDocument(w http.ResponseWriter, tree []*block.Node) {
	data, err := block.Marshal(tree)
	if err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInternal, err, "encode document"))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Error struct {
		Code    errors.Code `json:"code"`
		Message string      `json:"message"`
	} `json:"error"`
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	if stderrors.Is(err, store.ErrNotFound) {
		err = errors.Wrap(errors.ErrCodeDocumentNotFound, err, "document")
	} else if stderrors.Is(err, store.ErrInvalidKey) {
		err = errors.Wrap(errors.ErrCodeInvalidInput, err, "document key")
	}

	code := errors.CodeOf(err)
	status := statusFor(code)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "code", code, "err", err)
	}

	var body errorBody
	body.Error.Code = code
	body.Error.Message = err.Error()
	writeJSON(w, status, body)
}

// statusFor maps error codes to HTTP status codes.
func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidDocument,
		errors.ErrCodeInvalidKind, errors.ErrCodeInvalidTemplate,
		errors.ErrCodeInvalidCommand:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeDocumentNotFound, errors.ErrCodeFileNotFound:
		return http.StatusNotFound
	case errors.ErrCodeUnsupported:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// decodeDocument reads a document body, applies legacy migration, and
// validates the result.
func decodeDocument(r *http.Request) ([]*block.Node, error) {
	var doc block.Document
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "decode document")
	}
	tree := block.Migrate(doc.Blocks)
	if err := block.Validate(tree); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "validate document")
	}
	return tree, nil
}
