// Package genapi talks to the external quiz-generation service and maps its
// loosely-specified JSON payload into strict question drafts.
package genapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// GenerationRequest is the wire payload of the generation service. The field
// names and loose typing (count as a string, comma-joined type hints) are the
// service's contract, not ours.
type GenerationRequest struct {
	CourseID         int64   `json:"course_id"`
	ModuleID         int64   `json:"module_id"`
	Threshold        float64 `json:"threshold"`
	Limit            int     `json:"limit"`
	Query            string  `json:"query"`
	QuestionType     string  `json:"question_type"`
	NumberOfQuestion string  `json:"number_of_question"`
}

// NewGenerationRequest builds a wire payload from operator input. Type hints
// are comma-joined and the requested count is stringified, matching what the
// service expects.
func NewGenerationRequest(courseID, moduleID int64, threshold float64, limit int, query string, types []string, count int) GenerationRequest {
	if len(types) == 0 {
		types = []string{"multiple_choice"}
	}
	if count <= 0 {
		count = 5
	}
	return GenerationRequest{
		CourseID:         courseID,
		ModuleID:         moduleID,
		Threshold:        threshold,
		Limit:            limit,
		Query:            query,
		QuestionType:     strings.Join(types, ", "),
		NumberOfQuestion: strconv.Itoa(count),
	}
}

// GenerationResponse is the decoded success envelope. It stays an opaque
// map on purpose: the service's schema drifts, and only the normalizer
// decides which parts it trusts.
type GenerationResponse map[string]any

// TransportError is any failure talking to the generation service: non-200
// status, network/timeout failure, or an undecodable body. The raw body (or
// decode diagnostic) rides along for operator-facing error messages.
type TransportError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("generation service: %v", e.Err)
	}
	return fmt.Sprintf("generation service: status %d: %s", e.StatusCode, e.Body)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Client issues synchronous generation calls. One POST per call, bounded by
// the http.Client timeout, no retries — the service is generative, and a
// retry would just produce a different batch.
type Client struct {
	url  string
	http *http.Client
	log  zerolog.Logger
}

// NewClient creates a generation client for the given endpoint.
func NewClient(url string, timeout time.Duration, log zerolog.Logger) *Client {
	return &Client{
		url:  url,
		http: &http.Client{Timeout: timeout},
		log:  log,
	}
}

// Generate posts one request to the generation service and decodes the
// response envelope. Every failure mode comes back as a *TransportError.
func (c *Client) Generate(ctx context.Context, genReq GenerationRequest) (GenerationResponse, error) {
	payload, err := json.Marshal(genReq)
	if err != nil {
		return nil, &TransportError{Err: fmt.Errorf("encode request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return nil, &TransportError{Err: fmt.Errorf("build request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.ContentLength = int64(len(payload))

	c.log.Debug().
		Str("url", c.url).
		Str("question_type", genReq.QuestionType).
		Str("count", genReq.NumberOfQuestion).
		Msg("Calling generation service")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{StatusCode: resp.StatusCode, Err: fmt.Errorf("read body: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		// Non-200 bodies are diagnostic text, not structured data.
		return nil, &TransportError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var envelope GenerationResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, &TransportError{StatusCode: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}

	return envelope, nil
}
