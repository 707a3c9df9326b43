package reputation

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestClient(url string) *Client {
	return NewClient(ClientConfig{
		BaseURL: url,
		APIKey:  "test-key",
		Timeout: 5 * time.Second,
	})
}

func TestClientLookup(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantVerdict Verdict
		wantCount   int
		wantErr     bool
	}{
		{
			name:        "malicious",
			status:      http.StatusOK,
			body:        `{"data":{"attributes":{"last_analysis_stats":{"malicious":7,"harmless":60}}}}`,
			wantVerdict: VerdictMalicious,
			wantCount:   7,
		},
		{
			name:        "clean",
			status:      http.StatusOK,
			body:        `{"data":{"attributes":{"last_analysis_stats":{"malicious":0,"harmless":70}}}}`,
			wantVerdict: VerdictClean,
		},
		{
			name:    "hash not found",
			status:  http.StatusNotFound,
			body:    `{"error":{"code":"NotFoundError"}}`,
			wantErr: true,
		},
		{
			name:    "auth failure",
			status:  http.StatusUnauthorized,
			body:    `{"error":{"code":"WrongCredentialsError"}}`,
			wantErr: true,
		},
		{
			name:    "rate limited",
			status:  http.StatusTooManyRequests,
			body:    `{"error":{"code":"QuotaExceededError"}}`,
			wantErr: true,
		},
		{
			name:    "malformed body",
			status:  http.StatusOK,
			body:    `{not json`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Header.Get("x-apikey") != "test-key" {
					t.Errorf("missing x-apikey header")
				}
				w.WriteHeader(tt.status)
				fmt.Fprint(w, tt.body)
			}))
			defer srv.Close()

			client := newTestClient(srv.URL)
			result, err := client.Lookup(context.Background(), "abc123")

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.Verdict != tt.wantVerdict {
				t.Errorf("expected verdict %v, got %v", tt.wantVerdict, result.Verdict)
			}
			if result.MaliciousCount != tt.wantCount {
				t.Errorf("expected malicious count %d, got %d",
					tt.wantCount, result.MaliciousCount)
			}
		})
	}
}

func TestClientLookupNotFoundError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Lookup(context.Background(), "abc123")
	if err != ErrHashNotFound {
		t.Errorf("expected ErrHashNotFound, got %v", err)
	}
}

// failingLookuper always fails, standing in for an unreachable endpoint.
type failingLookuper struct {
	err error
}

func (f *failingLookuper) Lookup(ctx context.Context, hash string) (Result, error) {
	return Result{}, f.err
}

// fixedLookuper returns a fixed result.
type fixedLookuper struct {
	result Result
}

func (f *fixedLookuper) Lookup(ctx context.Context, hash string) (Result, error) {
	return f.result, nil
}

func TestResolverFailSoft(t *testing.T) {
	tests := []struct {
		name     string
		lookuper Lookuper
		want     Verdict
	}{
		{
			name:     "transport failure resolves to unknown",
			lookuper: &failingLookuper{err: fmt.Errorf("connection refused")},
			want:     VerdictUnknown,
		},
		{
			name:     "hash not found resolves to unknown",
			lookuper: &failingLookuper{err: ErrHashNotFound},
			want:     VerdictUnknown,
		},
		{
			name:     "clean passes through",
			lookuper: &fixedLookuper{result: Result{Verdict: VerdictClean}},
			want:     VerdictClean,
		},
		{
			name:     "malicious passes through",
			lookuper: &fixedLookuper{result: Result{Verdict: VerdictMalicious, MaliciousCount: 3}},
			want:     VerdictMalicious,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResolver(tt.lookuper, nil)
			got := r.Resolve(context.Background(), "abc123")
			if got.Verdict != tt.want {
				t.Errorf("expected verdict %v, got %v", tt.want, got.Verdict)
			}
		})
	}
}

func TestClientUnreachableEndpoint(t *testing.T) {
	// Port 1 is essentially guaranteed closed.
	client := NewClient(ClientConfig{
		BaseURL: "http://127.0.0.1:1",
		APIKey:  "test-key",
		Timeout: time.Second,
	})

	r := NewResolver(client, nil)
	got := r.Resolve(context.Background(), "abc123")
	if got.Verdict != VerdictUnknown {
		t.Errorf("expected unknown verdict for unreachable endpoint, got %v", got.Verdict)
	}
}
