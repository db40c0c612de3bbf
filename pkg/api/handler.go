package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/hazyhaar/corrector-es/pkg/kit"
)

// MaxBodyBytes caps request bodies.
const MaxBodyBytes = 64 * 1024

// NewRouter returns an http.Handler with all corrector API routes.
func NewRouter(svc *Service, eps Endpoints) http.Handler {
	mux := http.NewServeMux()
	h := &handler{eps: eps, svc: svc}

	mux.HandleFunc("GET /v1/correct", methodNotAllowed)
	mux.HandleFunc("GET /v1/correct/batch", methodNotAllowed)
	mux.HandleFunc("POST /v1/correct", h.handleCorrect)
	mux.HandleFunc("POST /v1/correct/batch", h.handleCorrectBatch)
	mux.HandleFunc("GET /v1/lexicon", h.handleLexicon)
	mux.HandleFunc("GET /v1/health", h.handleHealth)

	return cors(mux)
}

type handler struct {
	eps Endpoints
	svc *Service
}

// --- correct ---

type httpCorrectRequest struct {
	Text *string `json:"text"`
}

func (h *handler) handleCorrect(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	var req httpCorrectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDecodeError(w, err)
		return
	}
	if req.Text == nil {
		writeError(w, http.StatusBadRequest, "missing text")
		return
	}

	resp, err := h.eps.Correct(httpContext(r), &correctReq{Text: *req.Text})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// --- correct batch ---

type httpBatchRequest struct {
	Texts []string `json:"texts"`
}

func (h *handler) handleCorrectBatch(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	var req httpBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDecodeError(w, err)
		return
	}

	resp, err := h.eps.CorrectBatch(httpContext(r), &correctBatchReq{Texts: req.Texts})
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// --- lexicon ---

func (h *handler) handleLexicon(w http.ResponseWriter, r *http.Request) {
	resp, err := h.eps.Lexicon(httpContext(r), nil)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// --- health ---

type healthResponse struct {
	Status  string `json:"status"`
	Lexicon string `json:"lexicon"`
	Words   int    `json:"words"`
}

func (h *handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	lex := h.svc.Corrector().Lexicon()
	writeJSON(w, http.StatusOK, healthResponse{
		Status:  "ok",
		Lexicon: lex.ID,
		Words:   lex.Dictionary().Len(),
	})
}

// --- helpers ---

// httpContext tags the request context with the transport and the
// caller-supplied X-Request-ID, if any.
func httpContext(r *http.Request) context.Context {
	ctx := kit.WithTransport(r.Context(), "http")
	if id := r.Header.Get("X-Request-ID"); id != "" {
		ctx = kit.WithRequestID(ctx, id)
	}
	return ctx
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}

func writeDecodeError(w http.ResponseWriter, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
		return
	}
	writeError(w, http.StatusBadRequest, "invalid JSON body")
}

func methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, "method not allowed")
}

// cors is a simple CORS middleware for browser-based clients.
func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
