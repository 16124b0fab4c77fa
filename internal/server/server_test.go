package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alexiusacademia/gowib/internal/config"
	"github.com/alexiusacademia/gowib/internal/failure"
	"github.com/alexiusacademia/gowib/internal/report"
)

const exampleJSON = `{"web_height":1.375,"web_thickness":0.25,"flange_width":1.0625,"flange_thickness":0.3125,"web_material":0,"flange_material":"pine"}`

func newTestRouter() http.Handler {
	cfg := config.Default()
	cfg.Rate = 1000
	cfg.Burst = 1000
	return NewRouter(cfg)
}

func post(t *testing.T, h http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestAnalyze(t *testing.T) {
	rec := post(t, newTestRouter(), "/api/beam/analyze", exampleJSON)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}
	var res report.Result
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !res.Passed() || res.Report == nil {
		t.Fatalf("expected a report, got %+v", res)
	}
	if res.Report.DominantMode != failure.WebShear {
		t.Errorf("dominant mode: got %v", res.Report.DominantMode)
	}
	if !res.Report.DeltaWarning {
		t.Error("expected delta warning")
	}
}

func TestAnalyze_Rejected(t *testing.T) {
	body := strings.Replace(exampleJSON, `"web_thickness":0.25`, `"web_thickness":0.1`, 1)
	rec := post(t, newTestRouter(), "/api/beam/analyze", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}
	var res report.Result
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.Passed() || res.Report != nil {
		t.Fatalf("expected rejection, got %+v", res)
	}
}

func TestAnalyze_BadRequests(t *testing.T) {
	h := newTestRouter()
	tests := []struct {
		name string
		body string
	}{
		{"malformed", `{"web_height":`},
		{"unknown material", strings.Replace(exampleJSON, `"flange_material":"pine"`, `"flange_material":3`, 1)},
		{"unknown method", strings.Replace(exampleJSON, `}`, `,"method":"newton"}`, 1)},
		{"load max too large", strings.Replace(exampleJSON, `}`, `,"load_max":999999999}`, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := post(t, h, "/api/beam/analyze", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d: %s", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestAnalyze_LoadMax(t *testing.T) {
	body := strings.Replace(exampleJSON, `}`, `,"load_max":100,"method":"sweep"}`, 1)
	rec := post(t, newTestRouter(), "/api/beam/analyze", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}
	var res report.Result
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !res.Report.NoFailure || res.Report.Failures.LoadMax != 100 {
		t.Errorf("expected no failure below 100 lbf, got %+v", res.Report)
	}
}

func TestCheck(t *testing.T) {
	rec := post(t, newTestRouter(), "/api/beam/check", exampleJSON)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	var out struct {
		Passed bool `json:"passed"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil || !out.Passed {
		t.Errorf("expected pass, got %s", rec.Body.String())
	}
}

func TestReport(t *testing.T) {
	rec := post(t, newTestRouter(), "/api/beam/report", exampleJSON)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("content type: got %q", ct)
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")) {
		t.Error("body is not a PDF")
	}
}

func TestMaterialsAndHealth(t *testing.T) {
	h := newTestRouter()
	for _, path := range []string{"/api/health", "/api/materials"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("%s: status %d", path, rec.Code)
		}
	}
}

func TestRateLimit(t *testing.T) {
	cfg := config.Default()
	cfg.Rate = 0.001
	cfg.Burst = 2
	h := NewRouter(cfg)

	codes := make([]int, 3)
	for i := range codes {
		codes[i] = post(t, h, "/api/beam/check", exampleJSON).Code
	}
	if codes[0] != http.StatusOK || codes[1] != http.StatusOK || codes[2] != http.StatusTooManyRequests {
		t.Errorf("unexpected status sequence %v", codes)
	}
}

func TestRateLimit_EvictsIdleClients(t *testing.T) {
	l := NewIPRateLimiter(1, 1)
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return clock }
	l.lastSweep = clock

	l.getLimiter("10.0.0.1")
	l.getLimiter("10.0.0.2")
	if l.Len() != 2 {
		t.Fatalf("expected 2 tracked clients, got %d", l.Len())
	}

	clock = clock.Add(IdleTimeout / 2)
	l.getLimiter("10.0.0.2")

	clock = clock.Add(IdleTimeout / 2)
	l.getLimiter("10.0.0.3")
	if l.Len() != 2 {
		t.Errorf("expected idle client dropped, tracking %d", l.Len())
	}
	if _, ok := l.ips["10.0.0.1"]; ok {
		t.Error("10.0.0.1 should have been evicted")
	}
	if _, ok := l.ips["10.0.0.2"]; !ok {
		t.Error("10.0.0.2 was active and should be kept")
	}
}

func TestListenAndServe_Shutdown(t *testing.T) {
	cfg := config.Default()
	cfg.Addr = "127.0.0.1:0"
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- ListenAndServe(ctx, cfg) }()

	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
