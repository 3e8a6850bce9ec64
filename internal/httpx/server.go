// path: internal/httpx/server.go
package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jonklee99/PKHeX-Gengar/internal/evolution"
	"github.com/jonklee99/PKHeX-Gengar/internal/logging"
	"github.com/jonklee99/PKHeX-Gengar/internal/metrics"
	"github.com/jonklee99/PKHeX-Gengar/internal/shared"
)

// Server wires the HTTP layer to the evolution validator.
type Server struct {
	validator   *evolution.Validator
	logger      *slog.Logger
	metrics     *metrics.Recorder
	maxBody     int64
	readTimeout time.Duration

	srvMu sync.Mutex
	srv   *http.Server
}

// Options tunes a Server. Zero values select defaults.
type Options struct {
	Logger       *slog.Logger
	Metrics      *metrics.Recorder
	MaxBodyBytes int64
	ReadTimeout  time.Duration
}

const (
	defaultMaxBodyBytes int64 = 1 << 20
	defaultReadTimeout        = 10 * time.Second
	apiCSP                    = "default-src 'none'; frame-ancestors 'none'; base-uri 'none'"
	requestIDHeader           = "X-Request-Id"
)

var ErrNilValidator = errors.New("httpx: nil validator")

// NewServer builds a Server around v.
func NewServer(v *evolution.Validator, opts Options) (*Server, error) {
	if v == nil {
		return nil, ErrNilValidator
	}
	s := &Server{
		validator:   v,
		logger:      opts.Logger,
		metrics:     opts.Metrics,
		maxBody:     opts.MaxBodyBytes,
		readTimeout: opts.ReadTimeout,
	}
	if s.logger == nil {
		s.logger = logging.Discard()
	}
	if s.metrics == nil {
		s.metrics = metrics.New()
	}
	if s.maxBody <= 0 {
		s.maxBody = defaultMaxBodyBytes
	}
	if s.readTimeout <= 0 {
		s.readTimeout = defaultReadTimeout
	}
	return s, nil
}

// Listen starts the HTTP server and blocks until it stops.
func (s *Server) Listen(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       s.readTimeout,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 16,
	}

	s.srvMu.Lock()
	s.srv = srv
	s.srvMu.Unlock()
	defer func() {
		s.srvMu.Lock()
		s.srv = nil
		s.srvMu.Unlock()
	}()

	s.logger.Info("http listening", "addr", addr)
	err := srv.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Close attempts a graceful shutdown of the HTTP server.
func (s *Server) Close(ctx context.Context) error {
	s.srvMu.Lock()
	srv := s.srv
	s.srvMu.Unlock()
	if srv == nil {
		return nil
	}
	return srv.Shutdown(ctx)
}

// Handler returns the routed handler with request IDs and access logging.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	s.handle(mux, "/api/evolution/validate", s.withJSON(s.handleValidate))
	s.handle(mux, "/api/evolution/requirement", s.withJSON(s.handleRequirement))
	s.handle(mux, "/api/evolution/branch", s.withJSON(s.handleBranch))
	s.handle(mux, "/api/evolution/rules", s.withJSON(s.handleRules))

	s.handle(mux, "/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.Handle("/metrics", s.metrics.Handler())

	return s.withRequestID(mux)
}

// handle registers h and records its responses under the route label.
func (s *Server) handle(mux *http.ServeMux, route string, h http.HandlerFunc) {
	mux.HandleFunc(route, func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		h(rec, r)
		s.metrics.Request(route, rec.status)
		s.logger.Debug("request",
			"request_id", w.Header().Get(requestIDHeader),
			"method", r.Method,
			"route", route,
			"status", rec.status,
			"elapsed", time.Since(start),
		)
	})
}

func (s *Server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.New().String()
		}
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// ---- JSON helpers ----

func (s *Server) withJSON(h func(http.ResponseWriter, *http.Request)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		applyAPISecurityHeaders(w.Header())
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		if r.Body != nil && r.Body != http.NoBody {
			r.Body = http.MaxBytesReader(w, r.Body, s.maxBody)
		}
		h(w, r)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	writeJSON(w, map[string]string{"error": msg})
}

func applyAPISecurityHeaders(h http.Header) {
	h.Set("Content-Security-Policy", apiCSP)
	h.Set("Cross-Origin-Opener-Policy", "same-origin")
	h.Set("Cross-Origin-Embedder-Policy", "require-corp")
	h.Set("X-Content-Type-Options", "nosniff")
}

func isBodyTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}

// decodeBody reports false after writing the error response.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	defer r.Body.Close()
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if isBodyTooLarge(err) {
			writeError(w, http.StatusRequestEntityTooLarge, "request too large")
			return false
		}
		writeError(w, http.StatusBadRequest, "invalid json")
		return false
	}
	return true
}

// ---- API: validate ----

type validateBody struct {
	Creature  evolution.Creature  `json:"creature"`
	Encounter evolution.Encounter `json:"encounter"`
	History   evolution.History   `json:"history"`
	Moves     []shared.MoveResult `json:"moves"`
}

type validateResponse struct {
	Verdict         evolution.Verdict `json:"verdict"`
	MoveName        string            `json:"move_name,omitempty"`
	BranchFormValid bool              `json:"branch_form_valid"`
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var body validateBody
	if !decodeBody(w, r, &body) {
		return
	}
	if err := evolution.CheckInput(body.Creature, body.Encounter); err != nil {
		s.metrics.ContractViolation("validate")
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	start := time.Now()
	verdict := s.validator.Evaluate(body.Creature, body.Encounter, body.History, body.Moves)
	s.metrics.ObserveVerdict(verdict, time.Since(start))

	branchOK, err := evolution.IsValidBranchForm(body.Creature, body.Encounter)
	if err != nil {
		s.logger.Error("branch form check", "request_id", w.Header().Get(requestIDHeader), "error", err)
		writeError(w, http.StatusInternalServerError, "branch form check failed")
		return
	}

	resp := validateResponse{Verdict: verdict, BranchFormValid: branchOK}
	if verdict.Move != shared.MoveNone {
		resp.MoveName = verdict.Move.String()
	}
	s.logger.Info("evolution checked",
		"request_id", w.Header().Get(requestIDHeader),
		"species", body.Creature.Species.String(),
		"valid", verdict.Valid,
		"reason", verdict.Reason.String(),
	)
	writeJSON(w, resp)
}

// ---- API: requirement ----

type requirementResponse struct {
	Species          shared.Species        `json:"species"`
	Name             string                `json:"name"`
	Requirement      evolution.Requirement `json:"requirement"`
	PreEvolution     shared.SpeciesForm    `json:"pre_evolution"`
	PreEvolutionName string                `json:"pre_evolution_name,omitempty"`
	FormArgEvolution bool                  `json:"form_arg_evolution"`
}

func (s *Server) handleRequirement(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	species, ok := shared.ParseSpecies(r.URL.Query().Get("species"))
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid species")
		return
	}
	writeJSON(w, s.requirementOf(species))
}

func (s *Server) requirementOf(species shared.Species) requirementResponse {
	reg := s.validator.Registry()
	resp := requirementResponse{
		Species:          species,
		Name:             species.String(),
		Requirement:      reg.RequiredMove(species),
		PreEvolution:     reg.PreEvolution(species),
		FormArgEvolution: evolution.IsFormArgEvolution(species),
	}
	if !resp.PreEvolution.IsEmpty() {
		resp.PreEvolutionName = resp.PreEvolution.String()
	}
	return resp
}

// ---- API: branch ----

type branchBody struct {
	Species            shared.Species `json:"species"`
	Form               *shared.Form   `json:"form,omitempty"`
	EncryptionConstant uint32         `json:"encryption_constant"`
}

type branchResponse struct {
	Rare     bool                `json:"rare"`
	Evolved  *shared.SpeciesForm `json:"evolved,omitempty"`
	Expected *bool               `json:"expected,omitempty"`
}

func (s *Server) handleBranch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var body branchBody
	if !decodeBody(w, r, &body) {
		return
	}

	rare := evolution.IsEvolvedSpeciesFormRare(body.EncryptionConstant)
	resp := branchResponse{Rare: rare}

	if body.Form != nil {
		ok, err := evolution.IsExpectedForm(body.Species, *body.Form, rare)
		if err != nil {
			s.metrics.ContractViolation("branch")
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		resp.Expected = &ok
		writeJSON(w, resp)
		return
	}

	evolved, err := evolution.ResolveEvolvedForm(body.Species, rare)
	if err != nil {
		s.metrics.ContractViolation("branch")
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	resp.Evolved = &evolved
	writeJSON(w, resp)
}

// ---- API: rules ----

func (s *Server) handleRules(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	rules := s.validator.Registry().Rules()
	out := make([]requirementResponse, 0, len(rules))
	for _, rule := range rules {
		out = append(out, s.requirementOf(rule.Evolved))
	}
	writeJSON(w, map[string]any{"count": len(out), "rules": out})
}
