// Package api hosts the triage assistant over HTTP. Each session gets its
// own isolated conversation state; a per-session mutex keeps the core
// strictly turn-based even under concurrent requests.
package api

// #region imports
import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/danielpatrickdp/symptom-triage/internal/knowledge"
	"github.com/danielpatrickdp/symptom-triage/internal/session"
	"github.com/danielpatrickdp/symptom-triage/internal/triage"
)

// Advisor serves disease descriptions and guidance.
type Advisor interface {
	Describe(disease string) (string, bool)
	Recommendations(ctx context.Context, disease string) knowledge.Guidance
}

// #endregion

// #region registry

type sessionEntry struct {
	mu    sync.Mutex
	state *session.State
}

// Handler serves the session API.
type Handler struct {
	assistant *triage.Assistant
	advisor   Advisor

	mu       sync.RWMutex
	sessions map[uuid.UUID]*sessionEntry
}

// NewHandler creates a handler around one shared assistant and knowledge base.
func NewHandler(a *triage.Assistant, advisor Advisor) *Handler {
	return &Handler{
		assistant: a,
		advisor:   advisor,
		sessions:  make(map[uuid.UUID]*sessionEntry),
	}
}

func (h *Handler) lookup(id uuid.UUID) (*sessionEntry, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	entry, ok := h.sessions[id]
	return entry, ok
}

// #endregion registry

// #region routes

// Routes builds the chi router for the session API.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Route("/api/sessions", func(r chi.Router) {
		r.Post("/", h.createSession)
		r.Route("/{sessionID}", func(r chi.Router) {
			r.Post("/messages", h.postMessage)
			r.Get("/history", h.getHistory)
			r.Post("/reset", h.resetSession)
			r.Delete("/", h.deleteSession)
		})
	})
	r.Get("/api/diseases/{disease}/guidance", h.getGuidance)
	return r
}

// #endregion routes

// #region create

func (h *Handler) createSession(w http.ResponseWriter, r *http.Request) {
	id := uuid.New()
	h.mu.Lock()
	h.sessions[id] = &sessionEntry{state: session.New()}
	h.mu.Unlock()

	log.Printf("[API] session %s created", id)
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(map[string]string{"session_id": id.String()}); err != nil {
		log.Printf("[API] encode create response: %v", err)
	}
}

// #endregion create

// #region message

type messageRequest struct {
	Text string `json:"text"`
}

type messageResponse struct {
	Replies          []session.Turn `json:"replies"`
	Stage            session.Stage  `json:"stage"`
	DetectedSymptoms []string       `json:"detected_symptoms"`
	DiagnosisMade    bool           `json:"diagnosis_made"`
}

func (h *Handler) postMessage(w http.ResponseWriter, r *http.Request) {
	entry, ok := h.sessionFromURL(w, r)
	if !ok {
		return
	}

	var req messageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	entry.mu.Lock()
	before := len(entry.state.History)
	h.assistant.ProcessUserInput(entry.state, req.Text)
	resp := messageResponse{
		Stage:            entry.state.Stage,
		DetectedSymptoms: entry.state.Symptoms(),
		DiagnosisMade:    entry.state.DiagnosisMade,
	}
	for _, turn := range entry.state.History[before:] {
		if turn.Role == session.RoleAssistant {
			resp.Replies = append(resp.Replies, turn)
		}
	}
	entry.mu.Unlock()

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("[API] encode message response: %v", err)
	}
}

// #endregion message

// #region history

func (h *Handler) getHistory(w http.ResponseWriter, r *http.Request) {
	entry, ok := h.sessionFromURL(w, r)
	if !ok {
		return
	}

	entry.mu.Lock()
	history := make([]session.Turn, len(entry.state.History))
	copy(history, entry.state.History)
	entry.mu.Unlock()

	if err := json.NewEncoder(w).Encode(map[string][]session.Turn{"history": history}); err != nil {
		log.Printf("[API] encode history response: %v", err)
	}
}

// #endregion history

// #region reset-delete

func (h *Handler) resetSession(w http.ResponseWriter, r *http.Request) {
	entry, ok := h.sessionFromURL(w, r)
	if !ok {
		return
	}

	entry.mu.Lock()
	h.assistant.ResetSession(entry.state)
	entry.mu.Unlock()

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteSession(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "sessionID"))
	if err != nil {
		http.Error(w, "invalid session ID", http.StatusBadRequest)
		return
	}

	h.mu.Lock()
	delete(h.sessions, id)
	h.mu.Unlock()

	log.Printf("[API] session %s deleted", id)
	w.WriteHeader(http.StatusNoContent)
}

// #endregion reset-delete

// #region guidance

type guidanceResponse struct {
	Disease       string   `json:"disease"`
	Overview      string   `json:"overview,omitempty"`
	Lifestyle     []string `json:"lifestyle,omitempty"`
	Diet          []string `json:"diet,omitempty"`
	Medical       []string `json:"medical,omitempty"`
	Prevention    []string `json:"prevention,omitempty"`
	GeneratedText string   `json:"generated_text,omitempty"`
}

func (h *Handler) getGuidance(w http.ResponseWriter, r *http.Request) {
	// chi leaves the param escaped when the request path carried escapes.
	disease := chi.URLParam(r, "disease")
	if unescaped, err := url.PathUnescape(disease); err == nil {
		disease = unescaped
	}

	overview, known := h.advisor.Describe(disease)
	g := h.advisor.Recommendations(r.Context(), disease)
	if !known && g.Empty() {
		http.Error(w, "unknown disease", http.StatusNotFound)
		return
	}

	resp := guidanceResponse{
		Disease:       disease,
		Overview:      overview,
		Lifestyle:     g.Lifestyle,
		Diet:          g.Diet,
		Medical:       g.Medical,
		Prevention:    g.Prevention,
		GeneratedText: g.GeneratedText,
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("[API] encode guidance response: %v", err)
	}
}

// #endregion guidance

// #region helpers

func (h *Handler) sessionFromURL(w http.ResponseWriter, r *http.Request) (*sessionEntry, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "sessionID"))
	if err != nil {
		http.Error(w, "invalid session ID", http.StatusBadRequest)
		return nil, false
	}
	entry, ok := h.lookup(id)
	if !ok {
		http.Error(w, "session not found", http.StatusNotFound)
		return nil, false
	}
	return entry, true
}

// #endregion helpers
