package genapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestClientGenerate(t *testing.T) {
	log := zerolog.Nop()

	t.Run("Success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				t.Errorf("method = %s, want POST", r.Method)
			}
			if ct := r.Header.Get("Content-Type"); ct != "application/json" {
				t.Errorf("Content-Type = %q", ct)
			}
			if r.ContentLength <= 0 {
				t.Error("Content-Length not declared")
			}

			var req GenerationRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				t.Errorf("decode request: %v", err)
			}
			if req.QuestionType != "multiple_choice, essay" {
				t.Errorf("question_type = %q", req.QuestionType)
			}
			if req.NumberOfQuestion != "3" {
				t.Errorf("number_of_question = %q", req.NumberOfQuestion)
			}

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"parsed": [{"type": "Essay", "title": "q"}]}`))
		}))
		defer srv.Close()

		c := NewClient(srv.URL, 5*time.Second, log)
		genReq := NewGenerationRequest(7, 2, 0.3, 5, "photosynthesis", []string{"multiple_choice", "essay"}, 3)

		resp, err := c.Generate(context.Background(), genReq)
		if err != nil {
			t.Fatalf("Generate() error: %v", err)
		}
		if _, ok := resp["parsed"]; !ok {
			t.Error("response envelope missing parsed field")
		}
	})

	t.Run("Non200Status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "model overloaded", http.StatusInternalServerError)
		}))
		defer srv.Close()

		c := NewClient(srv.URL, 5*time.Second, log)
		_, err := c.Generate(context.Background(), GenerationRequest{Query: "q"})

		var te *TransportError
		if !errors.As(err, &te) {
			t.Fatalf("error = %v, want *TransportError", err)
		}
		if te.StatusCode != http.StatusInternalServerError {
			t.Errorf("status = %d, want 500", te.StatusCode)
		}
		if te.Body == "" {
			t.Error("raw body not carried on the error")
		}
	})

	t.Run("UndecodableBody", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not json"))
		}))
		defer srv.Close()

		c := NewClient(srv.URL, 5*time.Second, log)
		_, err := c.Generate(context.Background(), GenerationRequest{Query: "q"})

		var te *TransportError
		if !errors.As(err, &te) {
			t.Fatalf("error = %v, want *TransportError", err)
		}
		if te.Err == nil {
			t.Error("decode diagnostic not carried on the error")
		}
	})

	t.Run("Timeout", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer srv.Close()

		c := NewClient(srv.URL, 20*time.Millisecond, log)
		_, err := c.Generate(context.Background(), GenerationRequest{Query: "q"})

		var te *TransportError
		if !errors.As(err, &te) {
			t.Fatalf("error = %v, want *TransportError", err)
		}
	})

	t.Run("ConnectionRefused", func(t *testing.T) {
		c := NewClient("http://127.0.0.1:1", time.Second, log)
		_, err := c.Generate(context.Background(), GenerationRequest{Query: "q"})

		var te *TransportError
		if !errors.As(err, &te) {
			t.Fatalf("error = %v, want *TransportError", err)
		}
	})
}

func TestNewGenerationRequestDefaults(t *testing.T) {
	req := NewGenerationRequest(1, 1, 0.3, 5, "q", nil, 0)
	if req.QuestionType != "multiple_choice" {
		t.Errorf("default question_type = %q", req.QuestionType)
	}
	if req.NumberOfQuestion != "5" {
		t.Errorf("default number_of_question = %q", req.NumberOfQuestion)
	}
}
