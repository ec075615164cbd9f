package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/blisterdriver/ai-chat-v1/internal/config"
	"github.com/blisterdriver/ai-chat-v1/internal/gemini"
	"github.com/blisterdriver/ai-chat-v1/internal/preset"
	"github.com/blisterdriver/ai-chat-v1/internal/types"
)

const fallbackTextFormat = "Error: The AI could not provide a response, it may have been blocked by safety filters. (Reason: %s)"

type Server struct {
	router   *chi.Mux
	registry *preset.Registry
	gen      gemini.Generator
	cfg      config.Config
}

func NewServer(cfg config.Config) (*Server, error) {
	reg, err := preset.LoadRegistry(cfg.PresetFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load mode presets: %w", err)
	}
	return newServer(cfg, reg, gemini.NewClient(cfg.GeminiAPIKey)), nil
}

func newServer(cfg config.Config, reg *preset.Registry, gen gemini.Generator) *Server {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.AllowedOrigin},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	s := &Server{
		router:   r,
		registry: reg,
		gen:      gen,
		cfg:      cfg,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.Get("/", s.handleIndex)
	s.router.Get("/api/health", s.handleHealth)
	s.router.Post("/api/generate", s.handleGenerate)
}

func (s *Server) Router() http.Handler { return s.router }

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleIndex serves the frontend page verbatim.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, s.cfg.IndexFile)
}

// handleGenerate relays one conversation to the provider: validate mode,
// check the credential, issue a single call, normalize the outcome. Each
// request is independent; no state survives it.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req types.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	mode := resolveMode(req)
	log.Printf("[generate] request in %q mode", mode)

	p, ok := s.registry.Lookup(mode)
	if !ok {
		s.writeError(w, http.StatusBadRequest, "Invalid mode specified.")
		return
	}

	// Checked per request, not at startup: a keyless process still serves
	// health and the static page and fails only here.
	if s.cfg.GeminiAPIKey == "" {
		log.Println("[generate] GEMINI_API_KEY is not configured")
		s.writeError(w, http.StatusInternalServerError, "API key not configured on the server.")
		return
	}

	res, err := s.gen.Generate(r.Context(), gemini.Request{
		Model:             p.Model,
		SystemInstruction: p.SystemInstruction,
		History:           req.History,
		Temperature:       p.Generation.Temperature,
		TopP:              p.Generation.TopP,
		TopK:              p.Generation.TopK,
		MaxOutputTokens:   p.Generation.MaxOutputTokens,
	})
	if err != nil {
		log.Printf("[generate] provider call failed: %v", err)
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	text, ok := res.FirstText()
	if !ok {
		// Blocked or empty responses are reported as ordinary text, not as
		// protocol errors.
		reason := res.FeedbackReason
		if reason == "" {
			reason = "Unknown"
		}
		log.Printf("[generate] response was blocked or empty, reason: %s", reason)
		text = fmt.Sprintf(fallbackTextFormat, reason)
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(types.GenerateResponse{Text: text})
}

// resolveMode picks the mode key from the request, honoring the legacy
// boolean shape when no string mode is given.
func resolveMode(req types.GenerateRequest) string {
	if req.Mode != "" {
		return req.Mode
	}
	if req.TutorMode != nil {
		if *req.TutorMode {
			return preset.ModeTutor
		}
		return preset.ModeAssistant
	}
	return ""
}

func (s *Server) writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(types.ErrorResponse{Error: msg})
}
