package providers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestOpenAI_Generate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Error("Missing Authorization header")
		}
		if r.Header.Get("Content-Type") != "application/json" {
			t.Error("Missing Content-Type header")
		}

		var req openaiRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decoding request: %v", err)
		}
		if req.Model != "gpt-3.5-turbo" {
			t.Errorf("Model = %q, want %q", req.Model, "gpt-3.5-turbo")
		}
		if len(req.Messages) != 1 || req.Messages[0].Role != "user" {
			t.Errorf("Messages = %+v, want one user message", req.Messages)
		}
		if req.MaxTokens != 500 {
			t.Errorf("MaxTokens = %d, want 500", req.MaxTokens)
		}

		resp := openaiResponse{
			Choices: []openaiChoice{
				{Message: openaiMessage{Role: "assistant", Content: "generated text"}},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	o := NewOpenAI(Options{APIKey: "test-key", Model: "gpt-3.5-turbo", BaseURL: server.URL})

	text, err := o.Generate(context.Background(), "hello")
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if text != "generated text" {
		t.Errorf("text = %q, want %q", text, "generated text")
	}
}

func TestOpenAI_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(401)
		w.Write([]byte(`{"error":"invalid key"}`))
	}))
	defer server.Close()

	o := NewOpenAI(Options{APIKey: "bad-key", Model: "gpt-3.5-turbo", BaseURL: server.URL})

	_, err := o.Generate(context.Background(), "hello")
	if err == nil {
		t.Fatal("Expected error for 401 status")
	}
	if !IsProviderError(err) {
		t.Fatalf("Expected ProviderError, got %T: %v", err, err)
	}
	pe := err.(*ProviderError)
	if pe.StatusCode != 401 {
		t.Errorf("StatusCode = %d, want 401", pe.StatusCode)
	}
	if !strings.Contains(err.Error(), "status: 401") {
		t.Errorf("error %q should contain status code", err.Error())
	}
	if !strings.Contains(pe.Body, "invalid key") {
		t.Errorf("Body = %q, want response body", pe.Body)
	}
}

func TestOpenAI_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse connections

	o := NewOpenAI(Options{APIKey: "test-key", Model: "gpt-3.5-turbo", BaseURL: server.URL})

	_, err := o.Generate(context.Background(), "hello")
	if err == nil {
		t.Fatal("Expected transport error")
	}
	if !IsProviderError(err) {
		t.Fatalf("Transport failures must surface as ProviderError, got %T", err)
	}
	if pe := err.(*ProviderError); pe.StatusCode != 0 {
		t.Errorf("StatusCode = %d, want 0 for transport failure", pe.StatusCode)
	}
}

func TestOpenAI_EmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	o := NewOpenAI(Options{APIKey: "test-key", Model: "gpt-3.5-turbo", BaseURL: server.URL})

	_, err := o.Generate(context.Background(), "hello")
	if err == nil {
		t.Fatal("Expected error for empty choices")
	}
	if !IsProviderError(err) {
		t.Errorf("Expected ProviderError, got %T", err)
	}
}
