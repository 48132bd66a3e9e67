package main

import (
	"context"
	"encoding/base64"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestFetcher(mirrors ...string) *Fetcher {
	return &Fetcher{
		client:  &http.Client{Timeout: 5 * time.Second},
		limiter: NewRateLimiter(1000),
		mirrors: mirrors,
		logger:  log.New(io.Discard, "", 0),
	}
}

func TestFetchFirstMirrorWins(t *testing.T) {
	first := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "first")
	}))
	defer first.Close()
	second := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "second")
	}))
	defer second.Close()

	data, err := newTestFetcher(first.URL, second.URL).Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if string(data) != "first" {
		t.Errorf("Fetch() = %q, want %q", data, "first")
	}
}

func TestFetchFailover(t *testing.T) {
	broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer broken.Close()
	empty := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer empty.Close()
	good := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "payload")
	}))
	defer good.Close()

	data, err := newTestFetcher(broken.URL, empty.URL, good.URL).Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if string(data) != "payload" {
		t.Errorf("Fetch() = %q, want %q", data, "payload")
	}
}

func TestFetchAllMirrorsExhausted(t *testing.T) {
	broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer broken.Close()

	if _, err := newTestFetcher(broken.URL, broken.URL).Fetch(context.Background()); err == nil {
		t.Error("Fetch() succeeded with only broken mirrors")
	}
}

func TestFetchSetsUserAgent(t *testing.T) {
	var gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		io.WriteString(w, "ok")
	}))
	defer server.Close()

	if _, err := newTestFetcher(server.URL).Fetch(context.Background()); err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if gotUA != fetchUserAgent {
		t.Errorf("User-Agent = %q, want %q", gotUA, fetchUserAgent)
	}
}

func TestNewFetcherMirrors(t *testing.T) {
	tests := []struct {
		name    string
		mirrors string
		want    []string
	}{
		{
			name:    "default mirror list",
			mirrors: "",
			want:    GetDefaultMirrors(),
		},
		{
			name:    "override with whitespace and empty entries",
			mirrors: "https://a.example.com/list.txt, https://b.example.com/list.txt,,",
			want:    []string{"https://a.example.com/list.txt", "https://b.example.com/list.txt"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFetcher(&Config{Mirrors: tt.mirrors, Timeout: 5}, log.New(io.Discard, "", 0))
			if len(f.mirrors) != len(tt.want) {
				t.Fatalf("got %d mirrors, want %d", len(f.mirrors), len(tt.want))
			}
			for i, url := range tt.want {
				if f.mirrors[i] != url {
					t.Errorf("mirror %d = %q, want %q", i, f.mirrors[i], url)
				}
			}
		})
	}
}

func TestDecodeList(t *testing.T) {
	plain := "[AutoProxy 0.2.9]\n||example.com\n"
	encoded := base64.StdEncoding.EncodeToString([]byte(plain))
	// Mirrors wrap the blob, so split it across lines.
	wrapped := encoded[:10] + "\n" + encoded[10:20] + "\r\n" + encoded[20:]

	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "plain blob", raw: encoded, want: plain},
		{name: "wrapped blob", raw: wrapped, want: plain},
		{name: "not base64", raw: "!!! definitely not base64 !!!", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeList([]byte(tt.raw))
			if (err != nil) != tt.wantErr {
				t.Errorf("DecodeList() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("DecodeList() = %q, want %q", got, tt.want)
			}
		})
	}
}
