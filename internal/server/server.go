package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"

	"github.com/alexiusacademia/gowib/internal/beam"
	"github.com/alexiusacademia/gowib/internal/config"
	"github.com/alexiusacademia/gowib/internal/failure"
	"github.com/alexiusacademia/gowib/internal/material"
	"github.com/alexiusacademia/gowib/internal/report"
	"github.com/alexiusacademia/gowib/internal/version"
)

// AnalyzeRequest is a beam plus optional search settings.
type AnalyzeRequest struct {
	beam.Spec
	LoadMax int            `json:"load_max,omitempty"`
	Method  failure.Method `json:"method,omitempty"`
}

// Handler serves the beam calculation API.
type Handler struct {
	cfg config.Config
}

// NewRouter builds the API routes behind a per-client rate limiter.
func NewRouter(cfg config.Config) http.Handler {
	h := &Handler{cfg: cfg}
	limiter := NewIPRateLimiter(rate.Limit(cfg.Rate), cfg.Burst)

	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", h.Health).Methods("GET")
	api.HandleFunc("/materials", h.Materials).Methods("GET")

	calc := api.PathPrefix("/beam").Subrouter()
	calc.Use(limiter.LimitMiddleware)
	calc.HandleFunc("/check", h.Check).Methods("POST")
	calc.HandleFunc("/analyze", h.Analyze).Methods("POST")
	calc.HandleFunc("/report", h.Report).Methods("POST")

	return r
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "version": version.Version})
}

func (h *Handler) Materials(w http.ResponseWriter, r *http.Request) {
	type entry struct {
		ID int `json:"id"`
		material.Properties
		GlueShear float64 `json:"glue_shear_strength"`
	}
	var out []entry
	for _, id := range material.All() {
		p, _ := material.Lookup(id)
		glue, _ := material.GlueShearStrength(id, id)
		out = append(out, entry{ID: int(id), Properties: p, GlueShear: glue})
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) Check(w http.ResponseWriter, r *http.Request) {
	var spec beam.Spec
	if err := json.NewDecoder(r.Body).Decode(&spec); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}
	if err := spec.CheckMaterials(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	v := spec.Validate()
	writeJSON(w, http.StatusOK, struct {
		Passed     bool                  `json:"passed"`
		Validation *beam.ValidationError `json:"validation,omitempty"`
	}{v == nil, v})
}

func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	res, ok := h.run(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) Report(w http.ResponseWriter, r *http.Request) {
	res, ok := h.run(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"beam-report.pdf\"")
	if err := report.WritePDF(w, res, ""); err != nil {
		log.Printf("pdf report: %v", err)
	}
}

func (h *Handler) run(w http.ResponseWriter, r *http.Request) (*report.Result, bool) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return nil, false
	}

	opts := h.cfg.SearchOptions()
	if req.LoadMax > 0 {
		if req.LoadMax > h.cfg.LoadMax {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("load_max may not exceed %d", h.cfg.LoadMax))
			return nil, false
		}
		opts.LoadMax = req.LoadMax
	}
	if req.Method != "" {
		m, err := failure.ParseMethod(string(req.Method))
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return nil, false
		}
		opts.Method = m
	}

	res, err := report.Run(req.Spec, opts)
	if err != nil {
		var invalid *material.InvalidMaterialError
		if errors.As(err, &invalid) {
			writeError(w, http.StatusBadRequest, err.Error())
		} else {
			log.Printf("analyze: %v", err)
			writeError(w, http.StatusInternalServerError, "calculation error")
		}
		return nil, false
	}
	return res, true
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// ListenAndServe runs the API until ctx is cancelled, then shuts down
// gracefully.
func ListenAndServe(ctx context.Context, cfg config.Config) error {
	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           NewRouter(cfg),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.Printf("gowib API listening on %s", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	log.Println("Shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Println("Server stopped")
	return nil
}
