package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/daimoniac/echotool/internal/observability"
)

func postEcho(t *testing.T, server *APIServer, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	server.Handler().ServeHTTP(w, req)
	return w
}

func TestEcho(t *testing.T) {
	server := newTestServer()

	tests := []struct {
		name  string
		input string
	}{
		{"simple", "Hello FastAPI"},
		{"empty string", ""},
		{"whitespace", "  \t "},
		{"unicode", "héllo wörld ☺ 日本語"},
		{"json-looking input", `{"nested": true}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload, err := json.Marshal(map[string]string{"input": tt.input})
			if err != nil {
				t.Fatal(err)
			}

			w := postEcho(t, server, string(payload))
			if w.Code != http.StatusOK {
				t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
			}

			var resp EchoResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("Response is not valid JSON: %v", err)
			}

			if resp.Output != "Echo: "+tt.input {
				t.Errorf("Expected %q, got %q", "Echo: "+tt.input, resp.Output)
			}
		})
	}
}

func TestEcho_Idempotent(t *testing.T) {
	server := newTestServer()

	first := postEcho(t, server, `{"input": "same"}`)
	second := postEcho(t, server, `{"input": "same"}`)

	if first.Code != second.Code || first.Body.String() != second.Body.String() {
		t.Errorf("Expected identical responses, got %q and %q",
			first.Body.String(), second.Body.String())
	}
}

func TestEcho_MissingInput(t *testing.T) {
	server := newTestServer()

	tests := []struct {
		name       string
		body       string
		wantDetail string
	}{
		{"empty object", `{}`, "required"},
		{"wrong field", `{"text": "hello"}`, "required"},
		{"null input", `{"input": null}`, "required"},
		{"wrong type", `{"input": 42}`, "malformed"},
		{"malformed json", `{not json`, "malformed"},
		{"empty body", ``, "malformed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postEcho(t, server, tt.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("Expected status 400, got %d: %s", w.Code, w.Body.String())
			}

			body := w.Body.String()
			if !strings.Contains(body, "invalid input") {
				t.Errorf("Expected error body to carry the classification, got %s", body)
			}
			if !strings.Contains(body, tt.wantDetail) {
				t.Errorf("Expected error body to mention %q, got %s", tt.wantDetail, body)
			}
		})
	}
}

func TestEcho_MethodNotAllowed(t *testing.T) {
	server := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/echo", nil)
	w := httptest.NewRecorder()
	server.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected status 405, got %d", w.Code)
	}
}

func TestHealthCheck_Get(t *testing.T) {
	server := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	server.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	if body := strings.TrimSpace(w.Body.String()); body != `{"status":"ok"}` {
		t.Errorf("Expected health body {\"status\":\"ok\"}, got %s", body)
	}
}

func TestHealthCheck_Head(t *testing.T) {
	server := newTestServer()

	req := httptest.NewRequest(http.MethodHead, "/health", nil)
	w := httptest.NewRecorder()
	server.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	if w.Body.Len() != 0 {
		t.Errorf("Expected empty HEAD body, got %s", w.Body.String())
	}
}

func TestReadyCheck(t *testing.T) {
	server := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/ready", nil)
	w := httptest.NewRecorder()
	server.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	if body := strings.TrimSpace(w.Body.String()); body != `{"status":"ok"}` {
		t.Errorf("Expected ready body {\"status\":\"ok\"}, got %s", body)
	}
}

func TestEcho_ConcurrentRequestsAllCounted(t *testing.T) {
	server := newTestServer()
	metrics := observability.GetMetrics()

	const n = 50
	before := testutil.ToFloat64(metrics.EchoRequestsTotal)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{"input": "concurrent"}`))
			w := httptest.NewRecorder()
			server.Handler().ServeHTTP(w, req)
			if w.Code != http.StatusOK {
				t.Errorf("Expected status 200, got %d", w.Code)
			}
		}()
	}
	wg.Wait()

	after := testutil.ToFloat64(metrics.EchoRequestsTotal)
	if after != before+n {
		t.Errorf("Expected echo counter to grow by %d, got %f -> %f", n, before, after)
	}
}
