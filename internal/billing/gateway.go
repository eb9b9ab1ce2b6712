// Package billing adapts the external generative model into a typed bill
// extractor: it attaches the PDF payload and a schema-constrained
// instruction set, then decodes and verifies the structured JSON result.
package billing

import (
	"context"
	"fmt"
	"log/slog"

	"google.golang.org/genai"

	"github.com/kaipengyu/ppl-small-win/internal/config"
	"github.com/kaipengyu/ppl-small-win/internal/core"
	"github.com/kaipengyu/ppl-small-win/internal/logger"
)

// DefaultModel is the default Gemini model for bill extraction.
const DefaultModel = "gemini-2.5-flash"

// ExtractionError reports that the model returned no usable payload for
// an uploaded bill. Callers surface it as a single generic retry prompt.
type ExtractionError struct {
	Reason string
	Err    error
}

func (e *ExtractionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("bill extraction failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("bill extraction failed: %s", e.Reason)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// generator is the slice of the genai client the gateway needs; tests
// substitute a stub.
type generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Gateway extracts BillData from PDF bills via the Gemini API.
type Gateway struct {
	models generator
	model  string
	log    *slog.Logger
}

// NewGateway creates an extraction gateway. The API key and model come
// from configuration, injected once at construction.
func NewGateway(ctx context.Context, cfg config.Gemini) (*Gateway, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required. Set GEMINI_API_KEY or ai.gemini.api_key in the config file")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	return &Gateway{
		models: client.Models,
		model:  model,
		log:    logger.Get(),
	}, nil
}

// Extract sends the PDF bytes plus the schema-constrained instruction set
// to the model and decodes the JSON result into a verified BillData.
// Any failure is an *ExtractionError; no partial result is returned.
func (g *Gateway) Extract(ctx context.Context, pdfBytes []byte) (core.BillData, error) {
	if len(pdfBytes) == 0 {
		return core.BillData{}, &ExtractionError{Reason: "empty PDF payload"}
	}

	contents := []*genai.Content{{
		Parts: []*genai.Part{
			{InlineData: &genai.Blob{MIMEType: "application/pdf", Data: pdfBytes}},
			{Text: extractionInstructions},
		},
		Role: "user",
	}}

	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   billSchema(),
	}

	resp, err := g.models.GenerateContent(ctx, g.model, contents, cfg)
	if err != nil {
		return core.BillData{}, &ExtractionError{Reason: "model request failed", Err: err}
	}

	text := resp.Text()
	if text == "" {
		return core.BillData{}, &ExtractionError{Reason: "no data extracted"}
	}

	bill, err := DecodeBill([]byte(text))
	if err != nil {
		return core.BillData{}, &ExtractionError{Reason: "invalid extraction payload", Err: err}
	}

	g.log.Info("bill extracted",
		"account", bill.AccountNumber,
		"month", bill.BillMonth,
		"rank", bill.EnergySaverRank)
	return bill, nil
}
