package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGenerate_SendsExpectedEnvelope(t *testing.T) {
	var gotPath, gotKey string
	var gotBody generateRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("key")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(generateResponse{
			Candidates: []candidate{{Content: content{Parts: []part{{Text: "hello back"}}}}},
		})
	}))
	defer srv.Close()

	client := NewClient("test-key", "gemini-2.0-flash").WithBaseURL(srv.URL)
	text, err := client.Generate(context.Background(), "hello")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if text != "hello back" {
		t.Errorf("want %q, got %q", "hello back", text)
	}
	if gotPath != "/models/gemini-2.0-flash:generateContent" {
		t.Errorf("unexpected path %q", gotPath)
	}
	if gotKey != "test-key" {
		t.Errorf("unexpected key %q", gotKey)
	}
	if len(gotBody.Contents) != 1 || len(gotBody.Contents[0].Parts) != 1 ||
		gotBody.Contents[0].Parts[0].Text != "hello" {
		t.Errorf("unexpected request envelope: %+v", gotBody)
	}
}

func TestGenerate_ReturnsFirstCandidateVerbatim(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(generateResponse{
			Candidates: []candidate{
				{Content: content{Parts: []part{{Text: "  first part  "}, {Text: "second part"}}}},
				{Content: content{Parts: []part{{Text: "other candidate"}}}},
			},
		})
	}))
	defer srv.Close()

	client := NewClient("k", "m").WithBaseURL(srv.URL)
	text, err := client.Generate(context.Background(), "p")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if text != "  first part  " {
		t.Errorf("want first candidate's first part verbatim, got %q", text)
	}
}

func TestGenerate_NoAPIKey(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}))
	defer srv.Close()

	client := NewClient("", "m").WithBaseURL(srv.URL)
	_, err := client.Generate(context.Background(), "p")
	if !errors.Is(err, ErrNoAPIKey) {
		t.Fatalf("want ErrNoAPIKey, got %v", err)
	}
	if hits != 0 {
		t.Errorf("provider must not be called without an API key")
	}
}

func TestGenerate_UpstreamStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewClient("k", "m").WithBaseURL(srv.URL)
	_, err := client.Generate(context.Background(), "p")
	if !errors.Is(err, ErrUpstream) {
		t.Fatalf("want ErrUpstream, got %v", err)
	}
}

func TestGenerate_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	client := NewClient("k", "m").WithBaseURL(srv.URL)
	_, err := client.Generate(context.Background(), "p")
	if !errors.Is(err, ErrUpstream) {
		t.Fatalf("want ErrUpstream, got %v", err)
	}
}

func TestGenerate_MalformedResponses(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"zero candidates", `{"candidates":[]}`},
		{"no candidates field", `{}`},
		{"candidate without parts", `{"candidates":[{"content":{"parts":[]}}]}`},
		{"not json", `<html>oops</html>`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			client := NewClient("k", "m").WithBaseURL(srv.URL)
			_, err := client.Generate(context.Background(), "p")
			if !errors.Is(err, ErrMalformedResponse) {
				t.Fatalf("want ErrMalformedResponse, got %v", err)
			}
		})
	}
}
