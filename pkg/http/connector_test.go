package http

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestDoBinaryRequest(t *testing.T) {
	var (
		gotAccept string
		gotAuth   string
		gotBody   []byte
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAccept = r.Header.Get("Accept")
		gotAuth = r.Header.Get("Authorization")
		gotBody, _ = io.ReadAll(r.Body)
		w.Write([]byte{0x89, 'P', 'N', 'G'})
	}))
	defer srv.Close()

	conn := NewConnector(
		&ConnectorConfig{BaseURL: srv.URL, Logger: zap.NewNop()},
		WithAuthToken("secret-token"),
	)

	got, err := conn.DoBinaryRequest(context.Background(), http.MethodPost, "/v1/generate", map[string]string{"prompt": "a diagram"})
	if err != nil {
		t.Fatalf("DoBinaryRequest() error = %v", err)
	}

	if want := []byte{0x89, 'P', 'N', 'G'}; string(got) != string(want) {
		t.Errorf("body = %v, want %v", got, want)
	}
	if gotAccept != "application/octet-stream" {
		t.Errorf("Accept = %q, want application/octet-stream", gotAccept)
	}
	if gotAuth != "Bearer secret-token" {
		t.Errorf("Authorization = %q, want bearer token", gotAuth)
	}
	if want := `{"prompt":"a diagram"}`; string(gotBody) != want {
		t.Errorf("request body = %s, want %s", gotBody, want)
	}
}

func TestDoBinaryRequestHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream exploded", http.StatusBadGateway)
	}))
	defer srv.Close()

	conn := NewConnector(&ConnectorConfig{BaseURL: srv.URL, Logger: zap.NewNop()})

	_, err := conn.DoBinaryRequest(context.Background(), http.MethodPost, "/v1/generate", nil)
	var httpErr *HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("error = %v, want *HTTPError", err)
	}
	if httpErr.StatusCode != http.StatusBadGateway {
		t.Errorf("StatusCode = %d, want %d", httpErr.StatusCode, http.StatusBadGateway)
	}
}

func TestDoBinaryRequestNetworkError(t *testing.T) {
	conn := NewConnector(
		&ConnectorConfig{BaseURL: "http://127.0.0.1:1", Logger: zap.NewNop()},
		WithRequestTimeout(200*time.Millisecond),
	)

	_, err := conn.DoBinaryRequest(context.Background(), http.MethodPost, "/v1/generate", nil)
	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("error = %v, want *NetworkError", err)
	}
}

func TestDoBinaryRequestOptions(t *testing.T) {
	var (
		gotPath   string
		gotCustom string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotCustom = r.Header.Get("X-Trace-ID")
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	conn := NewConnector(&ConnectorConfig{BaseURL: "http://unused.invalid", Logger: zap.NewNop()})

	_, err := conn.DoBinaryRequest(context.Background(), http.MethodPost, "/ignored", nil,
		WithURL(srv.URL+"/override"),
		WithHeader("X-Trace-ID", "trace-42"),
	)
	if err != nil {
		t.Fatalf("DoBinaryRequest() error = %v", err)
	}

	if gotPath != "/override" {
		t.Errorf("path = %q, want /override (WithURL must win over the base URL)", gotPath)
	}
	if gotCustom != "trace-42" {
		t.Errorf("X-Trace-ID = %q, want trace-42", gotCustom)
	}
}
