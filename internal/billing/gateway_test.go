package billing

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"google.golang.org/genai"

	"github.com/kaipengyu/ppl-small-win/internal/config"
)

type stubGenerator struct {
	resp *genai.GenerateContentResponse
	err  error

	gotModel    string
	gotContents []*genai.Content
	gotConfig   *genai.GenerateContentConfig
}

func (s *stubGenerator) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	s.gotModel = model
	s.gotContents = contents
	s.gotConfig = config
	return s.resp, s.err
}

func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []*genai.Part{{Text: text}}}},
		},
	}
}

func sampleBillJSON(t *testing.T) string {
	t.Helper()
	payload := map[string]any{
		"customerName":   "Jordan Smith",
		"serviceAddress": "123 Main St, Allentown, PA 18104",
		"amountDue":      182.45,
		"billMonth":      "July",
		"monthlyComparison": map[string]any{
			"month":          "July",
			"usagePrevious":  1000.0,
			"usageCurrent":   880.0,
			"tempCurrent":    78.0,
			"dailyCostPrevious": 5.2,
			"dailyCostCurrent":  4.6,
		},
		"energySaverRank":    "All-Star",
		"percentToNextLevel": 8.0,
		"nextRank":           "G.O.A.T.",
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		t.Fatal(err)
	}
	return string(raw)
}

func testGateway(gen generator) *Gateway {
	return &Gateway{models: gen, model: DefaultModel, log: slog.Default()}
}

func TestExtract(t *testing.T) {
	stub := &stubGenerator{resp: textResponse(sampleBillJSON(t))}
	gw := testGateway(stub)

	bill, err := gw.Extract(context.Background(), []byte("%PDF-1.4 fake"))
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	if bill.CustomerName != "Jordan Smith" {
		t.Errorf("CustomerName = %q, want Jordan Smith", bill.CustomerName)
	}
	if bill.EnergySaverRank != "All-Star" {
		t.Errorf("EnergySaverRank = %q, want All-Star", bill.EnergySaverRank)
	}

	if stub.gotModel != DefaultModel {
		t.Errorf("model = %q, want %q", stub.gotModel, DefaultModel)
	}
	if stub.gotConfig == nil || stub.gotConfig.ResponseMIMEType != "application/json" {
		t.Error("expected structured JSON response config")
	}
	if stub.gotConfig.ResponseSchema == nil {
		t.Error("expected a response schema to be set")
	}
	if len(stub.gotContents) != 1 {
		t.Fatalf("contents length = %d, want 1", len(stub.gotContents))
	}
	parts := stub.gotContents[0].Parts
	if len(parts) != 2 {
		t.Fatalf("parts length = %d, want 2", len(parts))
	}
	if parts[0].InlineData == nil || parts[0].InlineData.MIMEType != "application/pdf" {
		t.Error("first part should carry the PDF as inline data")
	}
}

func TestExtractEmptyPayload(t *testing.T) {
	gw := testGateway(&stubGenerator{})
	_, err := gw.Extract(context.Background(), nil)
	var extractionErr *ExtractionError
	if !errors.As(err, &extractionErr) {
		t.Fatalf("want ExtractionError, got %v", err)
	}
}

func TestExtractGenerateFailure(t *testing.T) {
	gw := testGateway(&stubGenerator{err: errors.New("quota exceeded")})
	_, err := gw.Extract(context.Background(), []byte("%PDF"))
	var extractionErr *ExtractionError
	if !errors.As(err, &extractionErr) {
		t.Fatalf("want ExtractionError, got %v", err)
	}
	if !errors.Is(err, extractionErr.Err) {
		t.Error("ExtractionError should wrap the underlying error")
	}
}

func TestExtractEmptyModelText(t *testing.T) {
	gw := testGateway(&stubGenerator{resp: &genai.GenerateContentResponse{}})
	_, err := gw.Extract(context.Background(), []byte("%PDF"))
	var extractionErr *ExtractionError
	if !errors.As(err, &extractionErr) {
		t.Fatalf("want ExtractionError, got %v", err)
	}
}

func TestExtractMalformedJSON(t *testing.T) {
	gw := testGateway(&stubGenerator{resp: textResponse("{not json")})
	_, err := gw.Extract(context.Background(), []byte("%PDF"))
	var extractionErr *ExtractionError
	if !errors.As(err, &extractionErr) {
		t.Fatalf("want ExtractionError, got %v", err)
	}
}

func TestNewGatewayRequiresKey(t *testing.T) {
	_, err := NewGateway(context.Background(), config.Gemini{})
	if err == nil {
		t.Fatal("expected an error when the API key is missing")
	}
}
